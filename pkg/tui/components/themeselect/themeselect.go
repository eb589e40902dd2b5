// Package themeselect is the theme preference select control. It cycles
// through the preferences and reports selections as messages; its displayed
// value is kept in sync with the stored preference by the theme engine, so
// the control never drifts from persisted state.
package themeselect

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"segue/pkg/theme"
	"segue/pkg/tui/messages"
	"segue/pkg/tui/styles"
)

// KeyMap defines the keybindings for the select control.
type KeyMap struct {
	Next key.Binding
	Prev key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next theme"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous theme"),
		),
	}
}

// Model is the select control state.
type Model struct {
	options []theme.Preference
	index   int
	focused bool
	keyMap  KeyMap
}

// New builds the control with the three preferences, system first.
func New() *Model {
	return &Model{
		options: []theme.Preference{theme.System, theme.Light, theme.Dark},
		keyMap:  DefaultKeyMap(),
	}
}

// Value returns the displayed preference.
func (m *Model) Value() string {
	return string(m.options[m.index])
}

// SetValue syncs the displayed value to the given preference without
// emitting a selection.
func (m *Model) SetValue(value string) {
	pref := theme.Normalize(value)
	for i, opt := range m.options {
		if opt == pref {
			m.index = i
			return
		}
	}
}

// Focus gives the control keyboard focus.
func (m *Model) Focus() { m.focused = true }

// Blur removes keyboard focus.
func (m *Model) Blur() { m.focused = false }

// Focused reports whether the control has keyboard focus.
func (m *Model) Focused() bool { return m.focused }

// Update handles key input while focused. Cycling emits the newly selected
// preference.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.focused {
		return nil
	}
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keyMap.Next):
		m.index = (m.index + 1) % len(m.options)
	case key.Matches(keyMsg, m.keyMap.Prev):
		m.index = (m.index + len(m.options) - 1) % len(m.options)
	default:
		return nil
	}
	return messages.Cmd(messages.ThemeSelectedMsg{Preference: m.Value()})
}

// View renders the options in a row with the selected one highlighted.
func (m *Model) View() string {
	parts := make([]string, 0, len(m.options))
	for i, opt := range m.options {
		label := " " + string(opt) + " "
		switch {
		case i == m.index && m.focused:
			parts = append(parts, styles.LinkFocused.Render(label))
		case i == m.index:
			parts = append(parts, styles.Heading.Render(label))
		default:
			parts = append(parts, styles.Muted.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
