package internal

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/serialembed/serialembed/internal/keymap"
)

// Handle keys that belong to the whole application rather than one
// component. The second return value reports whether the key was consumed.
func HandleKeys(m *model, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keymap.Default.QuitKey):
		return tea.Quit, true

	case m.showHelp:
		// the help overlay swallows everything except close and quit
		if key.Matches(msg, keymap.Default.CloseKey, keymap.Default.HelpKey) {
			m.showHelp = false
		}
		return nil, true

	case key.Matches(msg, keymap.Default.HelpKey):
		m.showHelp = true
		return nil, true

	case key.Matches(msg, keymap.Default.FocusKey):
		return toggleFocus(m), true
	}

	return nil, false
}

// Switch keyboard focus between the port list and the message input.
// Once a port is open the message input keeps the focus.
func toggleFocus(m *model) tea.Cmd {
	if m.focus == focusInput {
		return m.setFocus(focusPorts)
	}
	return m.setFocus(focusInput)
}
