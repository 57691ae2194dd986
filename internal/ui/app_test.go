package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kaede/talent-match-go/internal/domain"
)

func applyMsg(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func TestInitialViewIsList(t *testing.T) {
	m := newTestModel(&fakeAuth{}, &fakeStore{})
	if m.CurrentView() != ViewList {
		t.Errorf("initial view = %s, want list", m.CurrentView())
	}
}

func TestNavigateWithSelection(t *testing.T) {
	m := newTestModel(&fakeAuth{}, &fakeStore{})
	talent := sampleProfile("t1", "Aoi Kisaragi", 5000)

	m = applyMsg(t, m, navigateMsg{target: ViewDetail, selected: talent})

	if m.CurrentView() != ViewDetail {
		t.Fatalf("view = %s, want detail", m.CurrentView())
	}
	if m.Selected() != talent {
		t.Error("selection was not recorded")
	}
	if !strings.Contains(m.View(), "Aoi Kisaragi") {
		t.Error("detail view should render the selected talent's name")
	}
	if !strings.Contains(m.View(), "¥5,000") {
		t.Error("detail view should render the formatted price")
	}
}

func TestSelectionGuardRedirectsToList(t *testing.T) {
	for _, target := range []View{ViewDetail, ViewChat, ViewPurchase} {
		m := newTestModel(&fakeAuth{}, &fakeStore{})
		m = applyMsg(t, m, navigateMsg{target: target})

		if m.CurrentView() != ViewList {
			t.Errorf("navigating to %s without a selection should land on list, got %s",
				target, m.CurrentView())
		}
	}
}

func TestSelectionGuardAllowsUnguardedViews(t *testing.T) {
	for _, target := range []View{ViewDashboard, ViewAuth, ViewProfileEdit, ViewComplete} {
		m := newTestModel(&fakeAuth{}, &fakeStore{})
		m = applyMsg(t, m, navigateMsg{target: target})

		if m.CurrentView() != target {
			t.Errorf("view = %s, want %s", m.CurrentView(), target)
		}
	}
}

func TestSelectionSurvivesFunnel(t *testing.T) {
	m := newTestModel(&fakeAuth{}, &fakeStore{})
	talent := sampleProfile("t1", "Aoi Kisaragi", 5000)

	m = applyMsg(t, m, navigateMsg{target: ViewDetail, selected: talent})
	m = applyMsg(t, m, navigateMsg{target: ViewChat})
	if m.CurrentView() != ViewChat {
		t.Fatalf("view = %s, want chat", m.CurrentView())
	}

	m = applyMsg(t, m, navigateMsg{target: ViewPurchase})
	if m.CurrentView() != ViewPurchase {
		t.Fatalf("view = %s, want purchase", m.CurrentView())
	}
	if m.Selected() != talent {
		t.Error("selection should persist across the funnel")
	}
}

func TestPurchaseConfirmReachesComplete(t *testing.T) {
	m := newTestModel(&fakeAuth{}, &fakeStore{})
	talent := sampleProfile("t1", "Aoi Kisaragi", 5000)

	m = applyMsg(t, m, navigateMsg{target: ViewPurchase, selected: talent})
	ref := m.purchase.EscrowRef()
	if ref == "" {
		t.Fatal("entering purchase should mint an escrow reference")
	}

	m = applyMsg(t, m, navigateMsg{target: ViewComplete})
	if m.CurrentView() != ViewComplete {
		t.Fatalf("view = %s, want complete", m.CurrentView())
	}
	if !strings.Contains(m.View(), ref) {
		t.Error("complete view should show the escrow reference")
	}

	// Any key resolves into a navigation back to the listing.
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("keypress on complete view should produce a navigation command")
	}
	nav, ok := cmd().(navigateMsg)
	if !ok || nav.target != ViewList {
		t.Errorf("keypress should navigate to list, got %v", nav)
	}
}

func TestCacheRefreshedPushesSnapshot(t *testing.T) {
	store := &fakeStore{listing: []*domain.Profile{sampleProfile("t1", "Aoi Kisaragi", 5000)}}
	m := newTestModel(&fakeAuth{}, store)

	// Run the refresh the Init command would perform, then feed the message
	// back in.
	m.deps.Cache.Refresh(context.Background(), nil)
	m = applyMsg(t, m, cacheRefreshedMsg{})

	if !strings.Contains(m.View(), "Aoi Kisaragi") {
		t.Error("list view should render the refreshed listing")
	}
	if !strings.Contains(m.View(), "¥5,000") {
		t.Error("list view should render the formatted price")
	}
}

func TestViewNames(t *testing.T) {
	names := map[View]string{
		ViewList:        "list",
		ViewDetail:      "detail",
		ViewDashboard:   "dashboard",
		ViewAuth:        "auth",
		ViewProfileEdit: "profile_edit",
		ViewChat:        "chat",
		ViewPurchase:    "purchase",
		ViewComplete:    "complete",
	}
	for view, want := range names {
		if got := view.String(); got != want {
			t.Errorf("View(%d).String() = %q, want %q", view, got, want)
		}
	}
}
