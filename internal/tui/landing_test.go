package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestLandingModel_TabMovesFocus(t *testing.T) {
	m := NewLandingModel()
	assert.Equal(t, fieldEmail, m.Focus)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldPassword, m.Focus)
	assert.True(t, m.Password.Focused())
	assert.False(t, m.Email.Focused())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldEmail, m.Focus)
}

func TestLandingModel_TypingGoesToFocusedField(t *testing.T) {
	m := NewLandingModel()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	assert.Equal(t, "a", m.Email.Value())
	assert.Empty(t, m.Password.Value())
}

func TestLandingModel_ValuesTrimsEmail(t *testing.T) {
	m := NewLandingModel()
	m.Email.SetValue("  user@example.com ")
	m.Password.SetValue(" spaces kept ")

	email, password := m.Values()
	assert.Equal(t, "user@example.com", email)
	assert.Equal(t, " spaces kept ", password)
}

func TestLandingModel_Reset(t *testing.T) {
	m := NewLandingModel()
	m.Email.SetValue("user@example.com")
	m.Password.SetValue("hunter22")
	m.Err = assert.AnError
	m.Submitting = true
	m.focusField(fieldPassword)

	m.Reset()

	assert.Empty(t, m.Email.Value())
	assert.Empty(t, m.Password.Value())
	assert.NoError(t, m.Err)
	assert.False(t, m.Submitting)
	assert.Equal(t, fieldEmail, m.Focus)
}

func TestLandingModel_PasswordIsMasked(t *testing.T) {
	m := NewLandingModel()
	assert.Equal(t, textinput.EchoPassword, m.Password.EchoMode)
	m.Password.SetValue("hunter22")
	assert.NotContains(t, m.View(), "hunter22")
}
