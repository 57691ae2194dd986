package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kaede/talent-match-go/internal/domain"
)

// ChatPageModel renders the negotiation view as a static transcript. There
// is no send capability and no message transport behind it.
type ChatPageModel struct {
	styles  Styles
	profile *domain.Profile
}

func NewChatPageModel(styles Styles) ChatPageModel {
	return ChatPageModel{styles: styles}
}

func (m *ChatPageModel) SetProfile(profile *domain.Profile) {
	m.profile = profile
}

func (m ChatPageModel) Init() tea.Cmd {
	return nil
}

func (m ChatPageModel) Update(msg tea.Msg) (ChatPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "b":
			return m, navigateTo(ViewDetail)
		case "r", "enter":
			return m, navigateTo(ViewPurchase)
		}
	}
	return m, nil
}

func (m ChatPageModel) View() string {
	if m.profile == nil {
		return m.styles.Muted.Render("No talent selected.")
	}

	lines := []string{
		m.styles.Title.Render("Consultation with " + m.profile.DisplayName()),
		m.styles.Muted.Render("(sample conversation — messaging is not wired up yet)"),
		"",
	}

	for _, line := range domain.MockTranscript {
		speaker := m.styles.Label.Render("You    ")
		if line.FromTalent {
			speaker = m.styles.Header.Render("Talent ")
		}
		lines = append(lines, speaker+m.styles.Body.Render(line.Body))
	}

	lines = append(lines, "",
		m.styles.Hint.Render("r: proceed to escrow request • esc: back"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
