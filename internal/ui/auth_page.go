package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kaede/talent-match-go/internal/gateway"
	"github.com/kaede/talent-match-go/internal/util"
)

// AuthPageModel is the two-mode sign-in / sign-up form. Submitting disables
// the form until the gateway answers; there is no timeout and no retry, so
// a hung gateway leaves the form loading.
type AuthPageModel struct {
	styles Styles
	auth   gateway.Authenticator

	email      textinput.Model
	password   textinput.Model
	focusIndex int
	isLogin    bool
	loading    bool
	message    string
	messageErr bool
}

func NewAuthPageModel(auth gateway.Authenticator, styles Styles) AuthPageModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128

	return AuthPageModel{
		styles:   styles,
		auth:     auth,
		email:    email,
		password: password,
		isLogin:  true,
	}
}

func (m AuthPageModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m AuthPageModel) Update(msg tea.Msg) (AuthPageModel, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		m.loading = false
		if msg.err != nil {
			// The gateway's message, verbatim, in place. No retry.
			m.message = msg.err.Error()
			m.messageErr = true
			return m, nil
		}
		m.messageErr = false
		if msg.signUp && msg.session == nil {
			m.message = "Registration e-mail sent. Check your inbox to confirm."
		} else {
			m.message = "Signed in!"
		}
		return m, navigateTo(ViewList)

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, navigateTo(ViewList)
		case "ctrl+t":
			m.isLogin = !m.isLogin
			m.message = ""
			return m, nil
		case "tab", "shift+tab", "up", "down":
			// Two fields, so either direction is a toggle.
			m.focusIndex = (m.focusIndex + 1) % 2
			if m.focusIndex == 0 {
				m.password.Blur()
				return m, m.email.Focus()
			}
			m.email.Blur()
			return m, m.password.Focus()
		case "enter":
			if m.email.Value() == "" || m.password.Value() == "" {
				m.message = "Email and password are required."
				m.messageErr = true
				return m, nil
			}
			m.loading = true
			m.message = ""
			return m, m.submitCmd()
		}
	}

	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// submitCmd issues the auth call off the render loop. Fire-and-forget
// request/response: no cancellation once sent.
func (m AuthPageModel) submitCmd() tea.Cmd {
	auth := m.auth
	email := util.Normalize(m.email.Value())
	password := m.password.Value()
	signUp := !m.isLogin

	return func() tea.Msg {
		ctx := context.Background()
		if signUp {
			session, err := auth.SignUp(ctx, email, password)
			return authResultMsg{signUp: true, session: session, err: err}
		}
		session, err := auth.SignInWithPassword(ctx, email, password)
		return authResultMsg{session: session, err: err}
	}
}

func (m AuthPageModel) View() string {
	title := "Sign in"
	switchHint := "No account yet? Press ctrl+t to sign up."
	if !m.isLogin {
		title = "Sign up"
		switchHint = "Already registered? Press ctrl+t to sign in."
	}

	lines := []string{
		m.styles.Title.Render(title),
		"",
		m.styles.Label.Render("Email"),
		m.email.View(),
		m.styles.Label.Render("Password"),
		m.password.View(),
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
		lines = append(lines, m.styles.Muted.Render("Contacting gateway..."))
	} else {
		lines = append(lines,
			m.styles.Hint.Render("enter: submit • tab: next field • esc: back"),
			m.styles.Hint.Render(switchHint),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
