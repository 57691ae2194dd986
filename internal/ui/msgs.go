package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kaede/talent-match-go/internal/domain"
)

// Messages flowing through the root Update loop. UI input events and
// gateway responses are the only suspension points; each async operation
// resolves into exactly one of these.

// SessionChangedMsg is pushed by the session container whenever the
// authenticated identity changes.
type SessionChangedMsg struct {
	Session *domain.Session
}

// cacheRefreshedMsg signals that a ProfileCache.Refresh pass finished and
// views should re-read the snapshot. Overlapping refreshes resolve
// last-write-wins, so redundant messages are harmless.
type cacheRefreshedMsg struct{}

// navigateMsg is a page's request to move the current-view pointer.
type navigateMsg struct {
	target   View
	selected *domain.Profile // nil keeps the current selection
}

// authResultMsg resolves a sign-in or sign-up attempt.
type authResultMsg struct {
	signUp  bool
	session *domain.Session
	err     error
}

// saveResultMsg resolves a profile upsert.
type saveResultMsg struct {
	err error
}

// signOutResultMsg resolves the dashboard's sign-out action.
type signOutResultMsg struct {
	err error
}

func navigateTo(target View) tea.Cmd {
	return func() tea.Msg { return navigateMsg{target: target} }
}

func navigateWithSelection(target View, selected *domain.Profile) tea.Cmd {
	return func() tea.Msg { return navigateMsg{target: target, selected: selected} }
}
