package console

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("line %d", i)
	}
	return out
}

func sized(height int) Model {
	m := New()
	_, borderHeight := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).GetFrameSize()
	m.SetSize(40, height+borderHeight)
	return m
}

func TestEmptyConsoleShowsStartMessage(t *testing.T) {
	m := sized(5)

	assert.Contains(t, m.Vp.View(), "Console is empty")
	assert.Equal(t, float64(100), m.GetScrollPercent())
}

func TestSetLinesShowsNewestAtBottom(t *testing.T) {
	m := sized(3)

	m.SetLines(lines(10))

	view := m.Vp.View()
	assert.Contains(t, view, "line 9")
	assert.Contains(t, view, "line 7")
	assert.NotContains(t, view, "line 6")
}

func TestScrolling(t *testing.T) {
	m := sized(3)
	m.SetLines(lines(10))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlHome})
	assert.Contains(t, m.Vp.View(), "line 0")
	assert.Equal(t, float64(0), m.GetScrollPercent())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlEnd})
	assert.Contains(t, m.Vp.View(), "line 9")

	m, _ = m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp})
	assert.Contains(t, m.Vp.View(), "line 6")
	assert.NotContains(t, m.Vp.View(), "line 9")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Contains(t, m.Vp.View(), "line 9")
}

func TestClearKeyRequestsClear(t *testing.T) {
	m := sized(3)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})

	require.NotNil(t, cmd)
	assert.Equal(t, ClearRequested{}, cmd())
}

func TestSetLinesCopiesInput(t *testing.T) {
	m := sized(3)
	in := []string{"a"}
	m.SetLines(in)
	in[0] = "b"

	assert.Equal(t, []string{"a"}, m.Lines())
}

func TestPlainStripsStyling(t *testing.T) {
	m := sized(3)
	m.SetLines([]string{"\x1b[31mERROR: broken\x1b[0m", "ok"})

	assert.Equal(t, "ERROR: broken\nok", m.Plain())
}

func TestRenderCleansControlCharacters(t *testing.T) {
	assert.NotContains(t, render("bell\a here"), "\a")
}
