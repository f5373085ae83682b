package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sixex/sixex/internal/api"
	"github.com/sixex/sixex/internal/config"
)

// AuthMode selects between signing in and creating an account.
type AuthMode int

const (
	ModeLogin AuthMode = iota
	ModeRegister
)

// landingField indexes the focusable fields on the landing form.
type landingField int

const (
	fieldEmail landingField = iota
	fieldPassword
)

// LandingModel is the anonymous entry screen: the email/password form
// with a login/register toggle.
type LandingModel struct {
	Mode       AuthMode
	Email      textinput.Model
	Password   textinput.Model
	Focus      landingField
	Err        error
	Submitting bool
}

// NewLandingModel creates the landing form with the email field focused.
func NewLandingModel() *LandingModel {
	email := textinput.New()
	email.Placeholder = "Email address"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 128
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return &LandingModel{
		Mode:     ModeLogin,
		Email:    email,
		Password: password,
		Focus:    fieldEmail,
	}
}

// Reset clears the form for a fresh anonymous session.
func (m *LandingModel) Reset() {
	m.Email.SetValue("")
	m.Password.SetValue("")
	m.Err = nil
	m.Submitting = false
	m.focusField(fieldEmail)
}

func (m *LandingModel) focusField(f landingField) {
	m.Focus = f
	if f == fieldEmail {
		m.Email.Focus()
		m.Password.Blur()
	} else {
		m.Password.Focus()
		m.Email.Blur()
	}
}

// Values returns the trimmed form values.
func (m *LandingModel) Values() (email, password string) {
	return strings.TrimSpace(m.Email.Value()), m.Password.Value()
}

// Update handles key input for the form. Submission and mode switching
// are handled by the root model; this only moves focus and edits text.
func (m *LandingModel) Update(msg tea.Msg) (*LandingModel, tea.Cmd) {
	var cmd tea.Cmd

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			if m.Focus == fieldEmail {
				m.focusField(fieldPassword)
			} else {
				m.focusField(fieldEmail)
			}
			return m, nil
		case "shift+tab", "up":
			if m.Focus == fieldPassword {
				m.focusField(fieldEmail)
			} else {
				m.focusField(fieldPassword)
			}
			return m, nil
		}
	}

	if m.Focus == fieldEmail {
		m.Email, cmd = m.Email.Update(msg)
	} else {
		m.Password, cmd = m.Password.Update(msg)
	}
	return m, cmd
}

// ToggleMode switches between login and register.
func (m *LandingModel) ToggleMode() {
	if m.Mode == ModeLogin {
		m.Mode = ModeRegister
	} else {
		m.Mode = ModeLogin
	}
	m.Err = nil
}

// View renders the landing form.
func (m *LandingModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("6ex — own pieces of the world's most valuable companies"))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("Fractional investing from $1."))
	b.WriteString("\n\n")

	if m.Mode == ModeLogin {
		b.WriteString(TitleStyle.Render("Welcome Back"))
	} else {
		b.WriteString(TitleStyle.Render("Join 6ex Today"))
	}
	b.WriteString("\n\n")

	b.WriteString(InputStyle.Render(m.Email.View()))
	b.WriteString("\n")
	b.WriteString(InputStyle.Render(m.Password.View()))
	b.WriteString("\n\n")

	if m.Submitting {
		b.WriteString(LabelStyle.Render("Authenticating..."))
		b.WriteString("\n")
	} else if m.Err != nil {
		b.WriteString(ErrorStyle.Render(m.Err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.Mode == ModeLogin {
		b.WriteString(DescStyle.Render("enter sign in  •  ctrl+r switch to register"))
	} else {
		b.WriteString(DescStyle.Render("enter create account  •  ctrl+r switch to sign in"))
	}

	return b.String()
}

// Authenticate returns a command that performs the credential exchange.
func Authenticate(cfg *config.Config, mode AuthMode, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		client := api.NewClient(cfg.APIBaseURL, "")

		var resp *api.AuthResponse
		var err error
		if mode == ModeRegister {
			resp, err = client.Register(ctx, email, password)
		} else {
			resp, err = client.Login(ctx, email, password)
		}
		if err != nil {
			return AuthErrorMsg{Err: err}
		}
		return AuthSuccessMsg{Resp: resp}
	}
}
