package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/kaede/talent-match-go/internal/domain"
)

// PurchasePageModel shows the fixed escrow confirmation copy. Confirming
// moves to the complete view unconditionally; no money moves anywhere.
type PurchasePageModel struct {
	styles    Styles
	profile   *domain.Profile
	escrowRef string
}

func NewPurchasePageModel(styles Styles) PurchasePageModel {
	return PurchasePageModel{styles: styles}
}

// Begin pins the funnel to a talent and mints the display-only escrow
// reference for this request.
func (m *PurchasePageModel) Begin(profile *domain.Profile) {
	m.profile = profile
	m.escrowRef = uuid.NewString()
}

func (m PurchasePageModel) EscrowRef() string {
	return m.escrowRef
}

func (m PurchasePageModel) Init() tea.Cmd {
	return nil
}

func (m PurchasePageModel) Update(msg tea.Msg) (PurchasePageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "b":
			return m, navigateTo(ViewDetail)
		case "enter", "y":
			return m, navigateTo(ViewComplete)
		}
	}
	return m, nil
}

func (m PurchasePageModel) View() string {
	if m.profile == nil {
		return m.styles.Muted.Render("No talent selected.")
	}

	card := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Escrow request"),
		"",
		m.styles.Label.Render("Talent  ")+m.styles.Body.Render(m.profile.DisplayName()),
		m.styles.Label.Render("Amount  ")+m.styles.Price.Render(FormatPriceJPY(m.profile.PricePerProject)),
		m.styles.Label.Render("Ref     ")+m.styles.Muted.Render(m.escrowRef),
		"",
		m.styles.Body.Render("Your payment is held in escrow and released to the"),
		m.styles.Body.Render("talent only after you approve the delivered work."),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Card.Render(card),
		"",
		m.styles.Hint.Render("enter: confirm request • esc: back"),
	)
}
