package portlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/serialembed/serialembed/events"
	"github.com/serialembed/serialembed/internal/keymap"
	"github.com/serialembed/serialembed/internal/styles"
)

const scanZone = "portlist-scan"

func rowZone(i int) string  { return fmt.Sprintf("portlist-row-%d", i) }
func openZone(i int) string { return fmt.Sprintf("portlist-open-%d", i) }

// Model is the left panel: a scan button and the scanned ports, each with
// its own open button.
type Model struct {
	Vp          viewport.Model
	SelectStyle lipgloss.Style
	ports       []string
	index       int
	focused     bool
}

// New creates an empty port list. Ports appear after the first scan.
func New() (m Model) {
	m.Vp = viewport.New(20, 5)
	m.Vp.KeyMap = viewport.KeyMap{}
	m.SelectStyle = styles.SelectedPortStyle
	m.updateView()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keymap.Default.ScanKey) {
			return m, send(events.ScanRequested{})
		}
		if !m.focused {
			return m, nil
		}

		switch {
		case key.Matches(msg, keymap.Default.PortUpKey):
			m.scrollUp()

		case key.Matches(msg, keymap.Default.PortDownKey):
			m.scrollDown()

		case key.Matches(msg, keymap.Default.OpenKey):
			if name, ok := m.Selected(); ok {
				return m, send(events.OpenRequested(name))
			}
		}

	case tea.MouseMsg:
		if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionRelease {
			return m, nil
		}

		if zone.Get(scanZone).InBounds(msg) {
			return m, send(events.ScanRequested{})
		}

		for i, name := range m.ports {
			if zone.Get(openZone(i)).InBounds(msg) {
				m.index = i
				m.updateView()
				return m, send(events.OpenRequested(name))
			}
			if zone.Get(rowZone(i)).InBounds(msg) {
				m.index = i
				m.updateView()
				return m, nil
			}
		}
	}

	return m, nil
}

// View renders the model's view.
func (m Model) View() string {
	return styles.AddBorder(m.Vp, "Ports", fmt.Sprintf("%d", len(m.ports)))
}

// SetPorts replaces the shown ports. The selection is kept if it still
// points into the list.
func (m *Model) SetPorts(ports []string) {
	m.ports = append([]string(nil), ports...)
	if m.index >= len(m.ports) {
		m.index = 0
	}
	m.updateView()
}

func (m Model) Ports() []string {
	return m.ports
}

// Selected returns the highlighted port name.
func (m Model) Selected() (string, bool) {
	if len(m.ports) == 0 {
		return "", false
	}
	return m.ports[m.index], true
}

func (m Model) GetIndex() int {
	return m.index
}

func (m *Model) Focus() {
	m.focused = true
	m.updateView()
}

func (m *Model) Blur() {
	m.focused = false
	m.updateView()
}

func (m Model) Focused() bool {
	return m.focused
}

func (m *Model) SetSize(width, height int) {
	borderWidth, borderHeight := styles.BorderStyle.GetFrameSize()
	m.Vp.Width = max(0, width-borderWidth)
	m.Vp.Height = max(0, height-borderHeight)
	m.updateView()
}

func (m *Model) scrollUp() {
	if m.index > 0 {
		m.index--
	}
	// first viewport line is the scan button
	if m.index+1 < m.Vp.YOffset {
		m.Vp.ScrollUp(1)
	}
	m.updateView()
}

func (m *Model) scrollDown() {
	if m.index < len(m.ports)-1 {
		m.index++
		// The bottom-most visible line is at YOffset + Height - 1.
		bottomEdge := m.Vp.YOffset + m.Vp.Height - 1
		if m.index+1 > bottomEdge {
			m.Vp.ScrollDown(1)
		}
	}
	m.updateView()
}

func (m *Model) updateView() {
	lines := make([]string, 0, len(m.ports)+1)
	lines = append(lines, zone.Mark(scanZone, styles.Button("Scan COM Ports", false)))

	if len(m.ports) == 0 {
		lines = append(lines, styles.InfoMsgStyle.Render("no ports scanned"))
	}

	for i, name := range m.ports {
		var row string
		if i == m.index && m.focused {
			row = m.SelectStyle.Render("> " + name)
		} else {
			row = styles.PortStyle.Render("  " + name)
		}
		lines = append(lines, zone.Mark(rowZone(i), row)+" "+
			zone.Mark(openZone(i), styles.Button("Open", i == m.index && m.focused)))
	}

	m.Vp.SetContent(strings.Join(lines, "\n"))
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
