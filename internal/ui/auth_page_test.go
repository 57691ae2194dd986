package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kaede/talent-match-go/internal/domain"
	"github.com/kaede/talent-match-go/pkg/errors"
)

func typeInto(m AuthPageModel, text string) AuthPageModel {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestAuthSubmitRequiresBothFields(t *testing.T) {
	m := NewAuthPageModel(&fakeAuth{}, DefaultStyles())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("empty form should not submit")
	}
	if !strings.Contains(m.View(), "Email and password are required.") {
		t.Error("validation message should be shown")
	}
}

func TestAuthErrorShownVerbatim(t *testing.T) {
	m := NewAuthPageModel(&fakeAuth{}, DefaultStyles())
	m = typeInto(m, "a@b.jp")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "secret")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("filled form should submit")
	}

	gatewayErr := errors.NewAuthError("Email already registered", 400, nil)
	m, cmd = m.Update(authResultMsg{err: gatewayErr})

	if cmd != nil {
		t.Error("a failed attempt must stay on the auth view")
	}
	if !strings.Contains(m.View(), "Email already registered") {
		t.Error("the gateway's message should be rendered verbatim")
	}
	if m.loading {
		t.Error("loading must clear so the form can be resubmitted")
	}
}

func TestAuthSuccessNavigatesToList(t *testing.T) {
	m := NewAuthPageModel(&fakeAuth{}, DefaultStyles())

	m, cmd := m.Update(authResultMsg{session: &domain.Session{UserID: "u1", Email: "a@b.jp"}})
	if cmd == nil {
		t.Fatal("success should navigate")
	}
	nav, ok := cmd().(navigateMsg)
	if !ok || nav.target != ViewList {
		t.Errorf("success should navigate to list, got %v", nav)
	}
	if !strings.Contains(m.View(), "Signed in!") {
		t.Error("success message should be shown")
	}
}

func TestSignUpPendingConfirmation(t *testing.T) {
	m := NewAuthPageModel(&fakeAuth{}, DefaultStyles())

	// Sign-up with no session: registration accepted, e-mail confirmation
	// outstanding.
	m, cmd := m.Update(authResultMsg{signUp: true})
	if cmd == nil {
		t.Fatal("pending sign-up still returns to the list")
	}
	if !strings.Contains(m.View(), "Registration e-mail sent") {
		t.Error("pending confirmation message should be shown")
	}
}

func TestAuthIgnoresKeysWhileLoading(t *testing.T) {
	m := NewAuthPageModel(&fakeAuth{}, DefaultStyles())
	m = typeInto(m, "a@b.jp")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "secret")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("keys must be ignored while a request is in flight")
	}
	if !strings.Contains(m.View(), "Contacting gateway...") {
		t.Error("loading indicator should be shown")
	}
}
