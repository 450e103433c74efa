package console

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/acarl005/stripansi"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/icza/gox/stringsx"

	"github.com/serialembed/serialembed/internal/keymap"
	"github.com/serialembed/serialembed/internal/styles"
)

// errPrefix marks console lines that report a failed action.
const errPrefix = "ERROR: "

// Model is the right panel. It shows the session console, newest line at
// the bottom.
type Model struct {
	Vp          viewport.Model
	lines       []string
	scrollIndex int // lines scrolled up from the bottom
	needsUpdate bool
}

// This message is sent when the editor is closed.
type EditorFinishedMsg struct {
	Err error
}

// ClearRequested asks the owner to drop the session console.
type ClearRequested struct{}

// New creates a new model with default settings.
func New() (m Model) {
	// We will create a viewport without border and later manually
	// add the border to inject a title into the border.
	m.Vp = viewport.New(30, 5)
	m.Vp.SetContent(m.startMsg())
	m.Vp.KeyMap = viewport.KeyMap{}
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	// viewport will be managed completely manually,
	// so viewports update function will not be called.

	switch msg := msg.(type) {
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollUp(1)

		case tea.MouseButtonWheelDown:
			m.scrollDown(1)
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keymap.Default.ConsoleUpKey):
			m.scrollUp(10)

		case key.Matches(msg, keymap.Default.ConsoleDownKey):
			m.scrollDown(10)

		case key.Matches(msg, keymap.Default.ConsoleTopKey):
			m.scrollToTop()

		case key.Matches(msg, keymap.Default.ConsoleBottomKey):
			m.scrollToBottom()

		case key.Matches(msg, keymap.Default.OpenEditorKey):
			return m, openEditorCmd(m.Plain())

		case key.Matches(msg, keymap.Default.ClearConsoleKey):
			return m, func() tea.Msg { return ClearRequested{} }
		}
	}

	if m.needsUpdate {
		m.needsUpdate = false
		m.UpdateVp()
	}

	return m, nil
}

func (m Model) View() string {
	borderStyle := styles.FooterStyle
	footer := borderStyle.Render(fmt.Sprintf("%d %3d%%", len(m.lines), int(m.GetScrollPercent())))
	return styles.AddBorder(m.Vp, "Console", footer)
}

// SetLines replaces the shown lines with the session console. A view that
// was scrolled up keeps its position relative to the bottom.
func (m *Model) SetLines(lines []string) {
	m.lines = append(m.lines[:0:0], lines...)
	if m.scrollIndex > m.maxScrollIndex() {
		m.scrollIndex = max(0, m.maxScrollIndex())
	}
	m.UpdateVp()
}

func (m Model) Lines() []string {
	return m.lines
}

// Plain returns the console content without styling, one line per entry.
func (m Model) Plain() string {
	out := make([]string, len(m.lines))
	for i, l := range m.lines {
		out[i] = stripansi.Strip(l)
	}
	return strings.Join(out, "\n")
}

func (m *Model) SetSize(width, height int) {
	borderWidth, borderHeight := styles.BorderStyle.GetFrameSize()

	m.Vp.Width = max(0, width-borderWidth)
	m.Vp.Height = max(0, height-borderHeight)

	m.scrollIndex = 0
	m.UpdateVp()
}

func (m *Model) scrollUp(n int) {
	if m.atTop() {
		return
	}
	m.scrollIndex = min(m.scrollIndex+n, m.maxScrollIndex())
	m.needsUpdate = true
}

func (m *Model) scrollDown(n int) {
	if m.atBottom() {
		return
	}
	m.scrollIndex = max(m.scrollIndex-n, 0)
	m.needsUpdate = true
}

func (m *Model) scrollToTop() {
	if m.atTop() {
		return
	}
	m.scrollIndex = m.maxScrollIndex()
	m.needsUpdate = true
}

func (m *Model) scrollToBottom() {
	if m.atBottom() {
		return
	}
	m.scrollIndex = 0
	m.needsUpdate = true
}

func (m *Model) maxScrollIndex() int {
	return len(m.lines) - m.Vp.Height
}

func (m *Model) contentFitsInVp() bool {
	return len(m.lines) <= m.Vp.Height
}

func (m *Model) atTop() bool {
	if m.contentFitsInVp() {
		return true
	}
	return m.scrollIndex == m.maxScrollIndex()
}

func (m *Model) atBottom() bool {
	if m.contentFitsInVp() {
		return true
	}
	return m.scrollIndex == 0
}

func (m Model) GetScrollPercent() float64 {
	if m.atBottom() {
		return 100
	}
	return 100 - (float64(m.scrollIndex) * 100 / float64(m.maxScrollIndex()))
}

func (m *Model) UpdateVp() {
	if m.Vp.Height <= 0 {
		return
	}
	if len(m.lines) == 0 {
		m.Vp.SetContent(m.startMsg())
		return
	}

	start, stop := 0, len(m.lines)
	if !m.contentFitsInVp() {
		start = m.maxScrollIndex() - m.scrollIndex
		stop = len(m.lines) - m.scrollIndex
	}

	rendered := make([]string, 0, stop-start)
	for _, line := range m.lines[start:stop] {
		rendered = append(rendered, render(line))
	}
	m.Vp.SetContent(strings.Join(rendered, "\n"))
}

func (m *Model) startMsg() string {
	return styles.ConsoleStartRenderStyle.Render("Console is empty")
}

func render(line string) string {
	line = stringsx.Clean(line)
	if strings.Contains(line, errPrefix) {
		return styles.ErrMsgStyle.Render(line)
	}
	return styles.InfoMsgStyle.Render(line)
}

// openEditorCmd creates a tea.Cmd that shows the console in $EDITOR.
func openEditorCmd(content string) tea.Cmd {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	tmpFile, err := os.CreateTemp("", "serialembed-console-*.txt")
	if err != nil {
		return func() tea.Msg {
			return EditorFinishedMsg{Err: err}
		}
	}

	if _, err = tmpFile.WriteString(content + "\n"); err != nil {
		tmpFile.Close()
		return func() tea.Msg {
			return EditorFinishedMsg{Err: err}
		}
	}

	if err := tmpFile.Close(); err != nil {
		return func() tea.Msg {
			return EditorFinishedMsg{Err: err}
		}
	}

	c := exec.Command(editor, tmpFile.Name())

	// tea.ExecProcess suspends the program while the editor runs.
	return tea.ExecProcess(c, func(err error) tea.Msg {
		if err != nil {
			return EditorFinishedMsg{Err: err}
		}
		return EditorFinishedMsg{Err: os.Remove(tmpFile.Name())}
	})
}
