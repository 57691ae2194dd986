package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kaede/talent-match-go/internal/domain"
	"github.com/kaede/talent-match-go/internal/gateway"
)

// DashboardPageModel is the seller's "my page": cached profile fields plus
// the fixed placeholder metrics. None of the numbers are computed.
type DashboardPageModel struct {
	styles        Styles
	auth          gateway.Authenticator
	defaultAvatar string

	profile    *domain.Profile
	signingOut bool
}

func NewDashboardPageModel(auth gateway.Authenticator, defaultAvatar string, styles Styles) DashboardPageModel {
	return DashboardPageModel{
		styles:        styles,
		auth:          auth,
		defaultAvatar: defaultAvatar,
	}
}

func (m *DashboardPageModel) UpdateContent(profile *domain.Profile) {
	m.profile = profile
}

func (m DashboardPageModel) Init() tea.Cmd {
	return nil
}

func (m DashboardPageModel) Update(msg tea.Msg) (DashboardPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case signOutResultMsg:
		m.signingOut = false
		// Sign-out lands on the listing either way; the session event has
		// already cleared the identity.
		return m, navigateTo(ViewList)

	case tea.KeyMsg:
		if m.signingOut {
			return m, nil
		}
		switch msg.String() {
		case "esc", "b":
			return m, navigateTo(ViewList)
		case "e":
			return m, navigateTo(ViewProfileEdit)
		case "o":
			m.signingOut = true
			auth := m.auth
			return m, func() tea.Msg {
				return signOutResultMsg{err: auth.SignOut(context.Background())}
			}
		}
	}
	return m, nil
}

func (m DashboardPageModel) View() string {
	if m.profile == nil {
		return m.styles.Muted.Render("Loading profile...")
	}

	verified := ""
	if m.profile.IsVerified {
		verified = m.styles.Success.Render("✔ identity verified")
	}

	metrics := domain.PlaceholderMetrics

	card := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(m.profile.DisplayName()),
		m.styles.Subtitle.Render(string(m.profile.Category)),
		verified,
		m.styles.Hint.Render(AvatarOrDefault(m.profile.AvatarURL, m.defaultAvatar)),
		"",
		m.styles.Label.Render(fmt.Sprintf("%s plan", m.profile.SubscriptionPlan)),
		m.styles.Price.Render(FormatPriceJPY(metrics.MonthlyRevenueJPY)),
		m.styles.Muted.Render("projected revenue this month"),
		"",
		fmt.Sprintf("%s %d deals   %s %.1f ★ (%d reviews)",
			m.styles.Label.Render("Active:"), metrics.ActiveDeals,
			m.styles.Label.Render("Rating:"), metrics.Rating, metrics.ReviewCount),
	)

	lines := []string{
		m.styles.Card.Render(card),
		"",
	}

	if m.signingOut {
		lines = append(lines, m.styles.Muted.Render("Signing out..."))
	} else {
		lines = append(lines, m.styles.Hint.Render("e: edit profile • o: sign out • esc: back"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
