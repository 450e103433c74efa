package help

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/serialembed/serialembed/internal/keymap"
	"github.com/serialembed/serialembed/internal/styles"
)

type Model struct {
	width  int
	height int
	help   help.Model
}

func New() (m Model) {
	m.help = help.New()
	m.help.ShowAll = true
	m.help.Styles.FullKey = styles.FooterStyle
	m.help.Styles.FullDesc = styles.InfoMsgStyle
	m.help.Styles.FullSeparator = styles.SeparatorStyle
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m Model) View() string {
	boldStyle := lipgloss.NewStyle().Bold(true)
	title := boldStyle.Render("serialembed keybindings\n")
	m.help.Width = max(0, m.width-styles.HelpOverlayBorderStyle.GetHorizontalFrameSize())
	layout := lipgloss.JoinVertical(lipgloss.Left, title, m.help.View(keymap.Default))

	return styles.HelpOverlayBorderStyle.Render(layout)
}

// Over renders the help box centered on top of background.
func (m Model) Over(background string) string {
	o := overlay.New(view(m.View()), view(background), overlay.Center, overlay.Center, 0, 0)
	return o.View()
}

// view adapts a rendered string to tea.Model for the overlay compositor.
type view string

func (v view) Init() tea.Cmd                       { return nil }
func (v view) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v view) View() string                        { return string(v) }
