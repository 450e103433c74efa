package desktop

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serialembed/serialembed/internal/session"
	"github.com/serialembed/serialembed/internal/transport"
)

func newTestUI(t *testing.T, ports ...string) (*UI, *transport.Mock) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	mock := transport.NewMock(ports...)
	ui := New(a.NewWindow(Title), session.New(mock))
	return ui, mock
}

func TestIconIsEmbedded(t *testing.T) {
	assert.NotEmpty(t, Icon.Content())
	assert.Equal(t, "icon-256.png", Icon.Name())
}

func TestScanOpenSend(t *testing.T) {
	ui, mock := newTestUI(t, "COM3", "COM5")

	test.Tap(ui.scanBtn)
	require.Len(t, ui.portButtons, 2)
	assert.Contains(t, ui.status.Text, "Found 2 port(s)")

	test.Tap(ui.portButtons[1])
	assert.Equal(t, session.Connected, ui.session.State())
	assert.Equal(t, "COM5", ui.session.PortName())
	assert.False(t, ui.portPanel.Visible())

	test.Type(ui.message, "hello")
	test.Tap(ui.sendBtn)

	assert.Equal(t, []transport.Write{{Port: "COM5", Data: []byte("hello")}}, mock.Writes())
	assert.Equal(t, "hello", ui.message.Text)
}

func TestOpenFailureKeepsPanel(t *testing.T) {
	ui, mock := newTestUI(t, "COM3")
	mock.OpenErr = errors.New("busy")

	test.Tap(ui.scanBtn)
	test.Tap(ui.portButtons[0])

	assert.Equal(t, session.Disconnected, ui.session.State())
	assert.True(t, ui.portPanel.Visible())
	assert.Contains(t, ui.status.Text, "could not open COM3: busy")
}

func TestSendWhileDisconnected(t *testing.T) {
	ui, mock := newTestUI(t)

	test.Tap(ui.sendBtn)

	assert.Empty(t, mock.Writes())
	assert.Empty(t, ui.portButtons)
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Disconnected", statusText(session.Disconnected, "", session.Notice{}))
	assert.Equal(t, "Connected: COM3 · Sent 2 byte(s) to COM3",
		statusText(session.Connected, "COM3", session.Notice{Level: session.Info, Text: "Sent 2 byte(s) to COM3"}))
}
