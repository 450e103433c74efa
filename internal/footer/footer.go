package footer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/serialembed/serialembed/internal/keymap"
	"github.com/serialembed/serialembed/internal/session"
	"github.com/serialembed/serialembed/internal/styles"
)

// helpText lists the short help bindings as "key: desc" pairs.
func helpText() string {
	var hints []string
	for _, b := range keymap.Default.ShortHelp() {
		hints = append(hints, b.Help().Key+": "+b.Help().Desc)
	}
	return strings.Join(hints, " · ")
}

type Model struct {
	width int
}

func New() Model {
	return Model{}
}

func (m *Model) SetWidth(w int) {
	m.width = w
}

// View renders connection state and the notice of the last action.
func (m Model) View(state session.State, portName string, notice session.Notice) string {
	var connectionSymbol string

	switch state {
	case session.Connected:
		connectionSymbol = fmt.Sprintf(" %s %s ", styles.ConnectSymbolStyle.Render("●"), portName)

	default:
		connectionSymbol = fmt.Sprintf(" %s ", styles.DisconnectedSymbolStyle.Render("●"))
	}
	connectionSymbol = zone.Mark("consymbol", connectionSymbol)

	status := ""
	if notice.Text != "" {
		if notice.Level == session.Failure {
			status = styles.ErrMsgStyle.Render(notice.Text)
		} else {
			status = styles.InfoMsgStyle.Render(notice.Text)
		}
		status += styles.FooterStyle.Render(" | ")
	}

	line := lipgloss.NewStyle().MaxWidth(m.width).Render(connectionSymbol + status + styles.FooterStyle.Render(helpText()))
	return line
}
