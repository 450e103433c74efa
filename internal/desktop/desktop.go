// Package desktop is a fixed size window front end for the serial session,
// built with fyne. It shows the same controls as the terminal ui.
package desktop

import (
	_ "embed"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/serialembed/serialembed/internal/logging"
	"github.com/serialembed/serialembed/internal/session"
)

const (
	AppID  = "com.github.serialembed.serialembed"
	Title  = "serialembed"
	Width  = 800
	Height = 600
)

//go:embed assets/icon-256.png
var iconPNG []byte

// Icon is the 256x256 application icon.
var Icon = fyne.NewStaticResource("icon-256.png", iconPNG)

// UI holds the widgets of the window. Every callback runs on the fyne
// event goroutine and calls the session directly.
type UI struct {
	window  fyne.Window
	session *session.Session

	message     *widget.Entry
	sendBtn     *widget.Button
	scanBtn     *widget.Button
	portRows    *fyne.Container
	portPanel   *fyne.Container
	portButtons []*widget.Button
	console     *widget.List
	status      *widget.Label

	lines []string
}

func New(window fyne.Window, sess *session.Session) *UI {
	ui := &UI{
		window:  window,
		session: sess,
	}
	ui.build()
	ui.refresh()
	return ui
}

func (ui *UI) build() {
	heading := widget.NewLabel("SerialEmbed")
	heading.TextStyle = fyne.TextStyle{Bold: true}

	ui.message = widget.NewEntry()
	ui.message.SetPlaceHolder("Send a message...")
	ui.message.OnChanged = ui.session.SetMessage
	ui.message.OnSubmitted = func(string) { ui.send() }

	ui.sendBtn = widget.NewButton("Send", ui.send)

	inputRow := container.NewBorder(nil, nil, widget.NewLabel("Send Message:"), ui.sendBtn, ui.message)

	ui.scanBtn = widget.NewButton("Scan COM Ports", ui.scan)
	ui.portRows = container.NewVBox()
	ui.portPanel = container.NewVBox(ui.scanBtn, ui.portRows)

	ui.console = widget.NewList(
		func() int {
			return len(ui.lines)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.TextStyle = fyne.TextStyle{Monospace: true}
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			var text string
			if id < len(ui.lines) {
				text = ui.lines[id]
			}
			obj.(*widget.Label).SetText(text)
		},
	)

	ui.status = widget.NewLabel("")

	top := container.NewVBox(heading, inputRow, widget.NewSeparator())
	content := container.NewBorder(top, ui.status, ui.portPanel, nil, ui.console)
	ui.window.SetContent(content)
}

func (ui *UI) scan() {
	if err := ui.session.ScanPorts(); err != nil {
		logging.Debug("Scan from desktop", zap.Error(err))
	}
	ui.refresh()
}

func (ui *UI) open(name string) {
	if err := ui.session.OpenPort(name); err != nil {
		logging.Debug("Open from desktop", zap.String("port", name), zap.Error(err))
	}
	ui.refresh()
	ui.window.Canvas().Focus(ui.message)
}

func (ui *UI) send() {
	if err := ui.session.SendMessage(); err != nil {
		logging.Debug("Send from desktop", zap.Error(err))
	}
	ui.refresh()
}

// refresh rebuilds the port rows, console and status line from the session.
func (ui *UI) refresh() {
	connected := ui.session.Connected()

	if connected {
		ui.portPanel.Hide()
		ui.message.SetPlaceHolder("Send a message...")
	} else {
		ui.rebuildPorts()
		ui.portPanel.Show()
		ui.message.SetPlaceHolder("Open a port to send")
	}

	ui.lines = ui.session.Console()
	ui.console.Refresh()
	if len(ui.lines) > 0 {
		ui.console.ScrollToBottom()
	}

	ui.status.SetText(statusText(ui.session.State(), ui.session.PortName(), ui.session.Notice()))
	if ui.session.Notice().Level == session.Failure {
		ui.status.Importance = widget.DangerImportance
	} else {
		ui.status.Importance = widget.MediumImportance
	}
	ui.status.Refresh()
}

func (ui *UI) rebuildPorts() {
	ui.portRows.RemoveAll()
	ui.portButtons = ui.portButtons[:0]

	ports := ui.session.Ports()
	if len(ports) == 0 {
		ui.portRows.Add(widget.NewLabel("no ports scanned"))
		return
	}

	for _, name := range ports {
		btn := widget.NewButton("Open", func() { ui.open(name) })
		ui.portButtons = append(ui.portButtons, btn)
		ui.portRows.Add(container.NewHBox(widget.NewLabel(name), layout.NewSpacer(), btn))
	}
}

func statusText(state session.State, portName string, notice session.Notice) string {
	conn := "Disconnected"
	if state == session.Connected {
		conn = fmt.Sprintf("Connected: %s", portName)
	}
	if notice.Text == "" {
		return conn
	}
	return conn + " · " + notice.Text
}

// Run opens the window and blocks until it is closed.
func Run(sess *session.Session) {
	a := app.NewWithID(AppID)
	a.SetIcon(Icon)

	w := a.NewWindow(Title)
	w.SetIcon(Icon)
	w.Resize(fyne.NewSize(Width, Height))
	w.SetFixedSize(true)

	New(w, sess)

	w.ShowAndRun()
}
