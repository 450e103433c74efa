package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullHelpGroups(t *testing.T) {
	groups := Default.FullHelp()

	require.Len(t, groups, 3)
	assert.Len(t, groups[0], 4)
	assert.Len(t, groups[1], 6)
	assert.Len(t, groups[2], 5)
	assert.Equal(t, "ctrl+s", groups[0][2].Help().Key)
}

func TestShortHelp(t *testing.T) {
	short := Default.ShortHelp()

	require.Len(t, short, 4)
	assert.Equal(t, "show help", short[0].Help().Desc)
}

func TestBindingsMatchKeys(t *testing.T) {
	tests := []struct {
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlS}, Default.ScanKey},
		{tea.KeyMsg{Type: tea.KeyEnter}, Default.OpenKey},
		{tea.KeyMsg{Type: tea.KeyEnter}, Default.SendKey},
		{tea.KeyMsg{Type: tea.KeyTab}, Default.FocusKey},
		{tea.KeyMsg{Type: tea.KeyUp}, Default.PortUpKey},
		{tea.KeyMsg{Type: tea.KeyCtrlJ}, Default.PortDownKey},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, Default.QuitKey},
		{tea.KeyMsg{Type: tea.KeyCtrlL}, Default.ClearConsoleKey},
		{tea.KeyMsg{Type: tea.KeyCtrlE}, Default.OpenEditorKey},
		{tea.KeyMsg{Type: tea.KeyCtrlHome}, Default.ConsoleTopKey},
		{tea.KeyMsg{Type: tea.KeyCtrlEnd}, Default.ConsoleBottomKey},
	}

	for _, tt := range tests {
		assert.True(t, key.Matches(tt.msg, tt.binding), "%s should match %v", tt.msg, tt.binding.Keys())
	}
}

// home and end move the cursor in the message input.
func TestConsoleJumpsLeaveLineKeysAlone(t *testing.T) {
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyHome}, Default.ConsoleTopKey))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnd}, Default.ConsoleBottomKey))
}
