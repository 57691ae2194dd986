package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kaede/talent-match-go/internal/domain"
	"github.com/kaede/talent-match-go/internal/gateway"
	"github.com/kaede/talent-match-go/internal/state"
	"go.uber.org/zap"
)

// Deps carries everything the root model needs. The containers outlive the
// UI; the model only reads from them and issues refreshes.
type Deps struct {
	Auth             gateway.Authenticator
	Store            gateway.ProfileStore
	Session          *state.SessionState
	Cache            *state.ProfileCache
	Logger           *zap.Logger
	DefaultAvatarURL string
}

// Model is the root of the view hierarchy. It owns the current-view pointer
// and the selected profile; every page is a child that renders a slice of
// shared state and reports navigation intents back up as messages.
type Model struct {
	deps   Deps
	styles Styles

	view     View
	selected *domain.Profile

	list      ListPageModel
	detail    DetailPageModel
	dashboard DashboardPageModel
	auth      AuthPageModel
	edit      ProfileEditPageModel
	chat      ChatPageModel
	purchase  PurchasePageModel
	complete  CompletePageModel

	width  int
	height int
}

func NewModel(deps Deps) Model {
	styles := DefaultStyles()
	return Model{
		deps:      deps,
		styles:    styles,
		view:      ViewList,
		list:      NewListPageModel(deps.DefaultAvatarURL, styles),
		detail:    NewDetailPageModel(deps.DefaultAvatarURL, styles),
		dashboard: NewDashboardPageModel(deps.Auth, deps.DefaultAvatarURL, styles),
		auth:      NewAuthPageModel(deps.Auth, styles),
		edit:      NewProfileEditPageModel(deps.Store, styles),
		chat:      NewChatPageModel(styles),
		purchase:  NewPurchasePageModel(styles),
		complete:  NewCompletePageModel(styles),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), textinput.Blink)
}

// refreshCmd runs a full cache refresh off the render loop and then tells
// the views to re-read the snapshot. It is issued on startup, on every
// session change, and on every view change.
func (m Model) refreshCmd() tea.Cmd {
	cache := m.deps.Cache
	session := m.deps.Session
	return func() tea.Msg {
		cache.Refresh(context.Background(), session.Session())
		return cacheRefreshedMsg{}
	}
}

// navigate moves the current-view pointer. A selection-dependent target with
// no selection is answered with a redirect to the list. Entering a view
// resets its transient state, and every view change triggers a refresh.
func (m Model) navigate(target View, selected *domain.Profile) (Model, tea.Cmd) {
	if selected != nil {
		m.selected = selected
	}

	if target.RequiresSelection() && m.selected == nil {
		m.deps.Logger.Warn("Navigation without a selected talent, redirecting to list",
			zap.String("target", target.String()))
		target = ViewList
	}

	var cmd tea.Cmd
	switch target {
	case ViewAuth:
		// Fresh form each time; a half-typed password never survives leaving
		// the view.
		m.auth = NewAuthPageModel(m.deps.Auth, m.styles)
		cmd = m.auth.Init()
	case ViewProfileEdit:
		m.edit.Seed(m.deps.Cache.OwnProfile())
		cmd = m.edit.Init()
	case ViewDetail:
		m.detail.SetProfile(m.selected)
	case ViewChat:
		m.chat.SetProfile(m.selected)
	case ViewPurchase:
		m.purchase.Begin(m.selected)
	case ViewComplete:
		m.complete.SetResult(m.selected, m.purchase.EscrowRef())
	}

	m.view = target
	return m, tea.Batch(cmd, m.refreshCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// q quits only where no text field can own it.
			switch m.view {
			case ViewAuth, ViewProfileEdit:
			default:
				return m, tea.Quit
			}
		}

	case SessionChangedMsg:
		return m, m.refreshCmd()

	case navigateMsg:
		return m.navigate(msg.target, msg.selected)

	case cacheRefreshedMsg:
		m.pushSnapshot()
		return m, nil
	}

	return m.updateCurrent(msg)
}

// pushSnapshot distributes the latest cache snapshot to the views that
// render it.
func (m *Model) pushSnapshot() {
	own := m.deps.Cache.OwnProfile()
	m.list.UpdateContent(m.deps.Cache.Listing(), own, m.deps.Session.SignedIn())
	m.dashboard.UpdateContent(own)

	// The edit form tracks a specific cache entry; a changed entry means the
	// refresh produced a new profile and the form must be re-seeded.
	if m.view == ViewProfileEdit && m.edit.SeededFrom() != own {
		m.edit.Seed(own)
	}
}

func (m Model) updateCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ViewList:
		m.list, cmd = m.list.Update(msg)
	case ViewDetail:
		m.detail, cmd = m.detail.Update(msg)
	case ViewDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ViewAuth:
		m.auth, cmd = m.auth.Update(msg)
	case ViewProfileEdit:
		m.edit, cmd = m.edit.Update(msg)
	case ViewChat:
		m.chat, cmd = m.chat.Update(msg)
	case ViewPurchase:
		m.purchase, cmd = m.purchase.Update(msg)
	case ViewComplete:
		m.complete, cmd = m.complete.Update(msg)
	}
	return m, cmd
}

// CurrentView exposes the view pointer for the host process and tests.
func (m Model) CurrentView() View {
	return m.view
}

// Selected exposes the current funnel selection.
func (m Model) Selected() *domain.Profile {
	return m.selected
}

func (m Model) View() string {
	status := "browsing as guest"
	if session := m.deps.Session.Session(); session != nil {
		status = session.Email
	}

	header := m.styles.Header.Render("TALENT MATCH") + "  " +
		m.styles.Subtitle.Render(m.viewTitle()) + "  " +
		m.styles.Muted.Render(status)

	var body string
	switch m.view {
	case ViewList:
		body = m.list.View()
	case ViewDetail:
		body = m.detail.View()
	case ViewDashboard:
		body = m.dashboard.View()
	case ViewAuth:
		body = m.auth.View()
	case ViewProfileEdit:
		body = m.edit.View()
	case ViewChat:
		body = m.chat.View()
	case ViewPurchase:
		body = m.purchase.View()
	case ViewComplete:
		body = m.complete.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body)
}

func (m Model) viewTitle() string {
	switch m.view {
	case ViewList:
		return "Find talent"
	case ViewDetail:
		return "Talent"
	case ViewDashboard:
		return "My page"
	case ViewAuth:
		return "Account"
	case ViewProfileEdit:
		return "Profile"
	case ViewChat:
		return "Consultation"
	case ViewPurchase:
		return "Request"
	case ViewComplete:
		return "Done"
	default:
		return ""
	}
}
