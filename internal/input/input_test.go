package input

import (
	"os"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serialembed/serialembed/events"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

// newModel disables cursor blinking so commands return immediately.
func newModel() Model {
	m := New()
	m.Ta.Cursor.SetMode(cursor.CursorStatic)
	return m
}

func typeText(m Model, text string) (Model, []tea.Msg) {
	var msgs []tea.Msg
	for _, r := range text {
		var cmd tea.Cmd
		m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		msgs = append(msgs, collect(cmd)...)
	}
	return m, msgs
}

// collect runs a command and flattens batches, keeping only send requests.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
		return out
	case events.SendRequested:
		return []tea.Msg{msg}
	default:
		return nil
	}
}

func TestTypingOnlyEditsValue(t *testing.T) {
	m := newModel()

	m, msgs := typeText(m, "hi")

	assert.Equal(t, "hi", m.Value())
	assert.Empty(t, msgs)
}

func TestEnterRequestsSend(t *testing.T) {
	m := newModel()
	m, _ = typeText(m, "hello")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, events.SendRequested{}, cmd())
	assert.Equal(t, "hello", m.Value())
}

func TestEnterRequestsSendForEmptyMessage(t *testing.T) {
	m := newModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, events.SendRequested{}, cmd())
}

func TestBlurredIgnoresKeys(t *testing.T) {
	m := newModel()
	m.Blur()

	m, msgs := typeText(m, "x")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Empty(t, m.Value())
	assert.Empty(t, msgs)
	assert.Empty(t, collect(cmd))
}

func TestMessageKeptAfterSessionChange(t *testing.T) {
	m := newModel()
	m, _ = typeText(m, "again")

	m, _ = m.Update(events.SessionChanged{})

	assert.Equal(t, "again", m.Value())
}

func TestPlaceholderFollowsConnection(t *testing.T) {
	m := newModel()
	assert.Equal(t, offlinePh, m.Ta.Placeholder)

	m.SetConnected(true)
	assert.Equal(t, connectedPh, m.Ta.Placeholder)
}

func TestViewShowsLabelAndButton(t *testing.T) {
	m := newModel()
	m.SetWidth(80)

	view := zone.Scan(m.View())

	assert.Contains(t, view, "Send Message:")
	assert.Contains(t, view, "[Send]")
}
