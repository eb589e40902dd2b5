package themeselect

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"segue/pkg/tui/messages"
)

func TestSetValueSyncsWithoutEmitting(t *testing.T) {
	t.Parallel()
	m := New()

	m.SetValue("dark")
	assert.Equal(t, "dark", m.Value())

	m.SetValue("blue")
	assert.Equal(t, "system", m.Value())
}

func TestCyclingEmitsSelection(t *testing.T) {
	t.Parallel()
	m := New()
	m.Focus()

	cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.ThemeSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, "light", msg.Preference)

	cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	require.NotNil(t, cmd)
	msg, ok = cmd().(messages.ThemeSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, "system", msg.Preference)
}

func TestBlurredControlIgnoresKeys(t *testing.T) {
	t.Parallel()
	m := New()

	cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Nil(t, cmd)
	assert.Equal(t, "system", m.Value())
}

func TestCycleWrapsAround(t *testing.T) {
	t.Parallel()
	m := New()
	m.Focus()
	m.SetValue("dark")

	cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	require.NotNil(t, cmd)
	assert.Equal(t, "system", m.Value())
}
