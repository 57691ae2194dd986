package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kaede/talent-match-go/internal/domain"
	"github.com/kaede/talent-match-go/internal/util"
)

// Placeholder tags shown on every detail page until the profiles table
// grows a tags column.
var detailDummyTags = []string{"宅録可", "即日納品", "都内限定"}

// DetailPageModel shows the selected talent. The root router guarantees the
// profile is non-nil before this view is entered.
type DetailPageModel struct {
	styles        Styles
	defaultAvatar string
	profile       *domain.Profile
}

func NewDetailPageModel(defaultAvatar string, styles Styles) DetailPageModel {
	return DetailPageModel{
		styles:        styles,
		defaultAvatar: defaultAvatar,
	}
}

func (m *DetailPageModel) SetProfile(profile *domain.Profile) {
	m.profile = profile
}

func (m DetailPageModel) Init() tea.Cmd {
	return nil
}

func (m DetailPageModel) Update(msg tea.Msg) (DetailPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "b":
			return m, navigateTo(ViewList)
		case "c":
			return m, navigateTo(ViewChat)
		case "r", "enter":
			return m, navigateTo(ViewPurchase)
		}
	}
	return m, nil
}

func (m DetailPageModel) View() string {
	if m.profile == nil {
		return m.styles.Muted.Render("No talent selected.")
	}

	tags := ""
	for i, tag := range detailDummyTags {
		if i > 0 {
			tags += " "
		}
		tags += m.styles.Muted.Render("#" + tag)
	}

	card := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(m.profile.DisplayName()),
		m.styles.Subtitle.Render(string(m.profile.Category)),
		"",
		tags,
		"",
		m.styles.Label.Render("Bio"),
		m.styles.Body.Render(util.TruncateString(m.profile.Bio, 400)),
		"",
		m.styles.Hint.Render(AvatarOrDefault(m.profile.AvatarURL, m.defaultAvatar)),
		"",
		m.styles.Muted.Render("▶ Sample voice  0:45"),
	)

	priceBar := m.styles.Label.Render("Fee ") +
		m.styles.Price.Render(FormatPriceJPY(m.profile.PricePerProject)) +
		m.styles.Muted.Render(" ~")

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Card.Render(card),
		"",
		priceBar,
		"",
		m.styles.Hint.Render("c: consult • r: request work • esc: back"),
	)
}
