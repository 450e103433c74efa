package input

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/serialembed/serialembed/events"
	"github.com/serialembed/serialembed/internal/keymap"
	"github.com/serialembed/serialembed/internal/styles"
)

const sendZone = "input-send"

const (
	label       = "Send Message: "
	sendButton  = "Send"
	connectedPh = "Send a message..."
	offlinePh   = "Open a port to send"
)

type Model struct {
	Ta    textarea.Model
	width int
}

// New creates a new model with default settings.
// Input text area contains the message buffer sent to the serial port.
func New() (m Model) {
	m.Ta = textarea.New()
	m.Ta.SetWidth(30)
	m.Ta.SetHeight(1)
	m.Ta.Placeholder = offlinePh
	m.Ta.Focus()
	m.Ta.Prompt = "> "
	m.Ta.CharLimit = 256
	m.Ta.ShowLineNumbers = false
	m.Ta.KeyMap.InsertNewline.SetEnabled(false)
	m.Ta.Cursor.Style = styles.CursorStyle
	m.Ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	m.Ta.FocusedStyle.Placeholder = styles.FocusedPlaceholderStyle
	m.Ta.FocusedStyle.Prompt = styles.FocusedPromtStyle
	m.Ta.BlurredStyle.Prompt = styles.BlurredPromtStyle
	m.Ta.FocusedStyle.Base = styles.BorderStyle
	m.Ta.BlurredStyle.Base = styles.BorderStyle

	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Ta.Focused() && key.Matches(msg, keymap.Default.SendKey) {
			return m, send(events.SendRequested{})
		}

	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease &&
			zone.Get(sendZone).InBounds(msg) {
			return m, send(events.SendRequested{})
		}

	case events.SessionChanged:
		// nothing to reset, the message stays for resending
		return m, nil
	}

	var cmd tea.Cmd
	m.Ta, cmd = m.Ta.Update(msg)

	return m, cmd
}

func (m Model) View() string {
	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		styles.FooterStyle.Render(label),
		m.Ta.View(),
		" ",
		zone.Mark(sendZone, styles.Button(sendButton, false)),
	)
}

// SetWidth sizes the text area so that label and button fit into width.
func (m *Model) SetWidth(width int) {
	m.width = width
	frame := styles.BorderStyle.GetHorizontalFrameSize()
	rest := lipgloss.Width(label) + lipgloss.Width(styles.Button(sendButton, false)) + 1
	m.Ta.SetWidth(max(10, width-rest-frame))
}

func (m Model) Value() string {
	return m.Ta.Value()
}

// SetConnected switches the placeholder to tell whether sending will
// reach a device.
func (m *Model) SetConnected(connected bool) {
	if connected {
		m.Ta.Placeholder = connectedPh
	} else {
		m.Ta.Placeholder = offlinePh
	}
}

func (m *Model) Focus() tea.Cmd {
	return m.Ta.Focus()
}

func (m *Model) Blur() {
	m.Ta.Blur()
}

func (m Model) Focused() bool {
	return m.Ta.Focused()
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
