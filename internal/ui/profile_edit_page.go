package ui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kaede/talent-match-go/internal/domain"
	"github.com/kaede/talent-match-go/internal/gateway"
)

const (
	editFieldName = iota
	editFieldCategory
	editFieldPrice
	editFieldBio
	editFieldAvatar
	editFieldPlan
	editFieldSave
	editFieldCount
)

var editPlans = []domain.SubscriptionPlan{
	domain.PlanFree,
	domain.PlanStandard,
	domain.PlanPremium,
}

// ProfileEditPageModel binds a local form to the six mutable profile fields.
// The form is re-seeded whenever the cache's own-profile entry changes;
// local edits are discarded on re-seed, which is acceptable because the id
// is fixed per session.
type ProfileEditPageModel struct {
	styles Styles
	store  gateway.ProfileStore

	fullName textinput.Model
	price    textinput.Model
	avatar   textinput.Model
	bio      textarea.Model

	categoryIdx int // -1 = unset
	planIdx     int

	focusIndex int
	loading    bool
	message    string
	messageErr bool

	seeded *domain.Profile
}

func NewProfileEditPageModel(store gateway.ProfileStore, styles Styles) ProfileEditPageModel {
	fullName := textinput.New()
	fullName.Placeholder = "stage name"
	fullName.CharLimit = 80
	fullName.Focus()

	price := textinput.New()
	price.Placeholder = "per-project price (yen)"
	price.CharLimit = 12

	avatar := textinput.New()
	avatar.Placeholder = "https://..."
	avatar.CharLimit = 500

	bio := textarea.New()
	bio.Placeholder = "introduce yourself and your skills"
	bio.SetHeight(4)

	return ProfileEditPageModel{
		styles:      styles,
		store:       store,
		fullName:    fullName,
		price:       price,
		avatar:      avatar,
		bio:         bio,
		categoryIdx: -1,
	}
}

// Seed loads the form from the cache's own-profile entry, replacing any
// local edits.
func (m *ProfileEditPageModel) Seed(profile *domain.Profile) {
	m.seeded = profile
	if profile == nil {
		return
	}

	m.fullName.SetValue(profile.FullName)
	if profile.PricePerProject > 0 {
		m.price.SetValue(strconv.Itoa(profile.PricePerProject))
	} else {
		m.price.SetValue("")
	}
	m.avatar.SetValue(profile.AvatarURL)
	m.bio.SetValue(profile.Bio)

	m.categoryIdx = -1
	for i, c := range domain.Categories {
		if c == profile.Category {
			m.categoryIdx = i
			break
		}
	}

	m.planIdx = 0
	for i, p := range editPlans {
		if p == profile.SubscriptionPlan {
			m.planIdx = i
			break
		}
	}
}

// SeededFrom reports the cache entry the form was last seeded from, so the
// root model can detect entry changes and re-seed.
func (m *ProfileEditPageModel) SeededFrom() *domain.Profile {
	return m.seeded
}

func (m ProfileEditPageModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ProfileEditPageModel) Update(msg tea.Msg) (ProfileEditPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case saveResultMsg:
		m.loading = false
		if msg.err != nil {
			m.message = msg.err.Error()
			m.messageErr = true
			return m, nil
		}
		m.message = "Profile updated!"
		m.messageErr = false
		return m, navigateTo(ViewDashboard)

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, navigateTo(ViewDashboard)
		case "tab", "down":
			return m.setFocus((m.focusIndex + 1) % editFieldCount), nil
		case "shift+tab", "up":
			return m.setFocus((m.focusIndex + editFieldCount - 1) % editFieldCount), nil
		case "left", "right":
			step := 1
			if msg.String() == "left" {
				step = -1
			}
			switch m.focusIndex {
			case editFieldCategory:
				// -1..len-1, wrapping through "unset".
				n := len(domain.Categories) + 1
				m.categoryIdx = ((m.categoryIdx+1+step)%n+n)%n - 1
				return m, nil
			case editFieldPlan:
				n := len(editPlans)
				m.planIdx = ((m.planIdx+step)%n + n) % n
				return m, nil
			}
		case "ctrl+s":
			return m.submit()
		case "enter":
			switch m.focusIndex {
			case editFieldSave:
				return m.submit()
			case editFieldBio:
				// enter belongs to the textarea
			default:
				return m.setFocus((m.focusIndex + 1) % editFieldCount), nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.focusIndex {
	case editFieldName:
		m.fullName, cmd = m.fullName.Update(msg)
	case editFieldPrice:
		m.price, cmd = m.price.Update(msg)
	case editFieldBio:
		m.bio, cmd = m.bio.Update(msg)
	case editFieldAvatar:
		m.avatar, cmd = m.avatar.Update(msg)
	}
	return m, cmd
}

func (m ProfileEditPageModel) setFocus(index int) ProfileEditPageModel {
	m.focusIndex = index
	m.fullName.Blur()
	m.price.Blur()
	m.avatar.Blur()
	m.bio.Blur()

	switch index {
	case editFieldName:
		m.fullName.Focus()
	case editFieldPrice:
		m.price.Focus()
	case editFieldBio:
		m.bio.Focus()
	case editFieldAvatar:
		m.avatar.Focus()
	}
	return m
}

func (m ProfileEditPageModel) submit() (ProfileEditPageModel, tea.Cmd) {
	if m.seeded == nil {
		m.message = "Profile is still loading."
		m.messageErr = true
		return m, nil
	}

	updates := *m.seeded
	updates.FullName = m.fullName.Value()
	updates.Category = m.category()
	updates.PricePerProject = CoercePrice(m.price.Value())
	updates.Bio = m.bio.Value()
	updates.AvatarURL = m.avatar.Value()
	updates.SubscriptionPlan = editPlans[m.planIdx]
	now := time.Now().UTC()
	updates.UpdatedAt = &now

	m.loading = true
	m.message = ""

	store := m.store
	return m, func() tea.Msg {
		err := store.UpsertProfile(context.Background(), &updates)
		return saveResultMsg{err: err}
	}
}

func (m ProfileEditPageModel) category() domain.Category {
	if m.categoryIdx < 0 || m.categoryIdx >= len(domain.Categories) {
		return domain.CategoryUnset
	}
	return domain.Categories[m.categoryIdx]
}

func (m ProfileEditPageModel) View() string {
	if m.seeded == nil {
		return m.styles.Muted.Render("Loading profile...")
	}

	categoryValue := "(not set)"
	if c := m.category(); c != domain.CategoryUnset {
		categoryValue = string(c)
	}

	planValue := string(editPlans[m.planIdx])

	row := func(field int, label, value string) string {
		marker := "  "
		if m.focusIndex == field {
			marker = m.styles.Cursor.Render("> ")
		}
		return marker + m.styles.Label.Render(label) + " " + value
	}

	saveLabel := "[ Save profile ]"
	if m.focusIndex == editFieldSave {
		saveLabel = m.styles.Cursor.Render("[ Save profile ]")
	}

	lines := []string{
		m.styles.Title.Render("Edit profile"),
		"",
		row(editFieldName, "Name     ", m.fullName.View()),
		row(editFieldCategory, "Category ", categoryValue+m.styles.Hint.Render("  (←/→)")),
		row(editFieldPrice, "Price    ", m.price.View()),
		row(editFieldBio, "Bio      ", ""),
		m.bio.View(),
		row(editFieldAvatar, "Avatar   ", m.avatar.View()),
		row(editFieldPlan, "Plan     ", planValue+m.styles.Hint.Render("  (←/→)")),
		"",
		saveLabel,
		"",
	}

	if m.message != "" {
		style := m.styles.Success
		if m.messageErr {
			style = m.styles.Error
		}
		lines = append(lines, style.Render(m.message), "")
	}

	if m.loading {
		lines = append(lines, m.styles.Muted.Render("Saving..."))
	} else {
		lines = append(lines, m.styles.Hint.Render("tab: next field • ctrl+s: save • esc: back"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
