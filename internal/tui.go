package internal

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/serialembed/serialembed/events"
	"github.com/serialembed/serialembed/internal/config"
	"github.com/serialembed/serialembed/internal/console"
	"github.com/serialembed/serialembed/internal/footer"
	help "github.com/serialembed/serialembed/internal/help-overlay"
	"github.com/serialembed/serialembed/internal/input"
	"github.com/serialembed/serialembed/internal/logging"
	"github.com/serialembed/serialembed/internal/portlist"
	"github.com/serialembed/serialembed/internal/session"
	"github.com/serialembed/serialembed/internal/styles"
)

const title = "SerialEmbed"

type focus int

const (
	focusInput focus = iota
	focusPorts
)

type model struct {
	session    *session.Session
	ports      portlist.Model
	input      input.Model
	console    console.Model
	footer     footer.Model
	help       help.Model
	showHelp   bool
	focus      focus
	width      int
	height     int
	restartApp bool
}

func initialModel(sess *session.Session) model {
	m := model{
		session: sess,
		ports:   portlist.New(),
		input:   input.New(),
		console: console.New(),
		footer:  footer.New(),
		help:    help.New(),
		focus:   focusInput,
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

// Update is called once per frame. Session actions run inline, so a slow
// device blocks the ui until the call returns.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	logging.LogMsgType(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help, _ = m.help.Update(msg)
		HandleNewWindowSize(&m, msg)
		return m, nil

	case tea.KeyMsg:
		cmd, handled := HandleKeys(&m, msg)
		if handled {
			return m, cmd
		}

	case events.ScanRequested:
		if err := m.session.ScanPorts(); errors.Is(err, session.ErrConnected) {
			return m, nil
		}
		m.refresh()
		return m, nil

	case events.OpenRequested:
		if err := m.session.OpenPort(string(msg)); errors.Is(err, session.ErrConnected) {
			return m, nil
		}
		m.refresh()
		return m, m.setFocus(focusInput)

	case events.SendRequested:
		m.session.SetMessage(m.input.Value())
		if err := m.session.SendMessage(); err != nil {
			logging.Debug("Send from tui", zap.Error(err))
		}
		m.refresh()
		m.input, cmd = m.input.Update(events.SessionChanged{})
		return m, cmd

	case console.ClearRequested:
		m.session.ClearConsole()
		m.refresh()
		return m, nil

	case console.EditorFinishedMsg:
		if msg.Err != nil {
			logging.Warn("Editor failed", zap.Error(msg.Err))
		}
		// workaround bubbletea v1 bug: after executing external command,
		// mouse support is not restored correctly. Therefore we restart bubbletea.
		m.restartApp = true
		return m, tea.Quit
	}

	if m.showHelp {
		return m, nil
	}

	if !m.session.Connected() {
		m.ports, cmd = m.ports.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	// the buffer follows the input field within the same frame
	m.session.SetMessage(m.input.Value())
	m.console, cmd = m.console.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	heading := styles.HeadingStyle.Render(title)
	separator := styles.SeparatorStyle.Render(strings.Repeat("─", max(0, m.width)))

	var panels string
	if m.session.Connected() {
		panels = m.console.View()
	} else {
		panels = lipgloss.JoinHorizontal(lipgloss.Top, m.ports.View(), m.console.View())
	}

	screen := lipgloss.JoinVertical(
		lipgloss.Left,
		heading,
		m.input.View(),
		separator,
		panels,
		m.footer.View(m.session.State(), m.session.PortName(), m.session.Notice()),
	)

	screen = lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, screen)
	if m.showHelp {
		screen = m.help.Over(screen)
	}

	return zone.Scan(screen)
}

// refresh copies session state into the components.
func (m *model) refresh() {
	m.ports.SetPorts(m.session.Ports())
	m.console.SetLines(m.session.Console())
	m.input.SetConnected(m.session.Connected())
	if m.session.Connected() && m.focus == focusPorts {
		m.setFocus(focusInput)
	}
	m.layout()
}

func (m *model) setFocus(f focus) tea.Cmd {
	if m.session.Connected() {
		f = focusInput
	}
	m.focus = f

	if f == focusPorts {
		m.input.Blur()
		m.ports.Focus()
		return nil
	}
	m.ports.Blur()
	return m.input.Focus()
}

func HandleNewWindowSize(m *model, msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout()
}

// layout splits the area below the input row into the port panel (one
// third) and the console (rest). Without the port panel the console takes
// the full width.
func (m *model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	m.input.SetWidth(m.width)
	m.footer.SetWidth(m.width)

	const headingHeight, separatorHeight, footerHeight = 1, 1, 1
	panelHeight := m.height - headingHeight - lipgloss.Height(m.input.View()) - separatorHeight - footerHeight
	panelHeight = max(0, panelHeight)

	if m.session.Connected() {
		m.console.SetSize(m.width, panelHeight)
		return
	}

	leftWidth := m.width / 3
	m.ports.SetSize(leftWidth, panelHeight)
	m.console.SetSize(m.width-leftWidth, panelHeight)
}

// RunTui starts the terminal ui on top of sess and blocks until the user quits.
func RunTui(sess *session.Session, cfg config.Config) error {
	zone.NewGlobal()

	m := initialModel(sess)

	for {
		opts := []tea.ProgramOption{tea.WithAltScreen()}
		if cfg.Mouse {
			opts = append(opts, tea.WithMouseCellMotion())
		}

		p := tea.NewProgram(m, opts...)
		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		var ok bool
		m, ok = finalModel.(model)
		if !ok {
			return errors.New("could not cast final model to model type")
		}

		if !m.restartApp {
			return nil
		}
		m.restartApp = false
	}
}
