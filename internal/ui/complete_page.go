package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kaede/talent-match-go/internal/domain"
)

// CompletePageModel closes the request funnel. Any key returns to the
// listing.
type CompletePageModel struct {
	styles    Styles
	profile   *domain.Profile
	escrowRef string
}

func NewCompletePageModel(styles Styles) CompletePageModel {
	return CompletePageModel{styles: styles}
}

func (m *CompletePageModel) SetResult(profile *domain.Profile, escrowRef string) {
	m.profile = profile
	m.escrowRef = escrowRef
}

func (m CompletePageModel) Init() tea.Cmd {
	return nil
}

func (m CompletePageModel) Update(msg tea.Msg) (CompletePageModel, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, navigateTo(ViewList)
	}
	return m, nil
}

func (m CompletePageModel) View() string {
	name := "the talent"
	if m.profile != nil {
		name = m.profile.DisplayName()
	}

	card := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Success.Render("✔ Request sent"),
		"",
		m.styles.Body.Render("Your request has been sent to "+name+"."),
		m.styles.Body.Render("You will be notified when they respond."),
		"",
		m.styles.Label.Render("Escrow ref  ")+m.styles.Muted.Render(m.escrowRef),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Card.Render(card),
		"",
		m.styles.Hint.Render("press any key to return to the listing"),
	)
}
