package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kaede/talent-match-go/internal/domain"
	"github.com/kaede/talent-match-go/internal/util"
)

// ListPageModel renders the verified-talent listing. It is a pure view over
// the profile cache snapshot pushed in via UpdateContent.
type ListPageModel struct {
	styles        Styles
	defaultAvatar string

	talents       []*domain.Profile
	ownHasListing bool
	signedIn      bool
	cursor        int
	width         int
	height        int
}

func NewListPageModel(defaultAvatar string, styles Styles) ListPageModel {
	return ListPageModel{
		styles:        styles,
		defaultAvatar: defaultAvatar,
		width:         80,
		height:        20,
	}
}

// UpdateContent replaces the rendered snapshot. The cursor is clamped so a
// shrinking listing can never leave it dangling.
func (m *ListPageModel) UpdateContent(talents []*domain.Profile, own *domain.Profile, signedIn bool) {
	m.talents = talents
	m.signedIn = signedIn
	m.ownHasListing = own != nil && own.HasListing()
	m.cursor = util.Clamp(m.cursor, 0, util.Max(len(talents)-1, 0))
}

func (m *ListPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m ListPageModel) Init() tea.Cmd {
	return nil
}

func (m ListPageModel) Update(msg tea.Msg) (ListPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.cursor = util.Clamp(m.cursor-1, 0, util.Max(len(m.talents)-1, 0))
		case "down", "j":
			m.cursor = util.Clamp(m.cursor+1, 0, util.Max(len(m.talents)-1, 0))
		case "enter":
			if len(m.talents) > 0 {
				return m, navigateWithSelection(ViewDetail, m.talents[m.cursor])
			}
		case "p":
			// Become a seller: edit the profile when signed in, sign in first
			// otherwise.
			if m.signedIn {
				return m, navigateTo(ViewProfileEdit)
			}
			return m, navigateTo(ViewAuth)
		case "d":
			if m.signedIn {
				return m, navigateTo(ViewDashboard)
			}
			return m, navigateTo(ViewAuth)
		}
	}
	return m, nil
}

func (m ListPageModel) View() string {
	lines := []string{
		m.styles.Subtitle.Render("Popular talents"),
		"",
	}

	if len(m.talents) == 0 {
		lines = append(lines, m.styles.Muted.Render("No talents registered yet."))
		if m.signedIn && !m.ownHasListing {
			lines = append(lines, m.styles.Error.Render("Register your own profile? Press p."))
		}
	}

	for i, t := range m.talents {
		marker := "  "
		nameStyle := m.styles.Title
		if i == m.cursor {
			marker = m.styles.Cursor.Render("> ")
			nameStyle = m.styles.Cursor
		}

		badge := ""
		if t.IsVerified {
			badge = " " + m.styles.Verified.Render("✔ verified")
		}

		category := string(t.Category)
		if category == "" {
			category = "(uncategorized)"
		}

		lines = append(lines,
			fmt.Sprintf("%s%s%s", marker, nameStyle.Render(t.DisplayName()), badge),
			"    "+m.styles.Muted.Render(category)+"  "+
				m.styles.Price.Render(FormatPriceJPY(t.PricePerProject))+
				m.styles.Muted.Render(" ~ / project")+"  "+
				m.styles.Warning.Render("★ 5.0"),
			"    "+m.styles.Hint.Render(util.TruncateString(AvatarOrDefault(t.AvatarURL, m.defaultAvatar), 60)),
		)
	}

	lines = append(lines, "",
		m.styles.Hint.Render("enter: view talent • p: sell • d: dashboard • q: quit"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
