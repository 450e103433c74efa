package transport

import (
	"io"
	"time"

	"go.bug.st/serial"
)

// Port is the handle of an open serial connection.
// Both serial.Port and the mock port implement this interface.
type Port io.WriteCloser

// Transport enumerates and opens serial devices.
type Transport interface {
	ListPorts() ([]string, error)
	Open(name string, mode Mode) (Port, error)
}

// Mode is the line configuration used when a port is opened.
type Mode struct {
	Serial      serial.Mode
	ReadTimeout time.Duration
}

const (
	BaudRate    = 115200
	ReadTimeout = 100 * time.Millisecond
)

// DefaultMode returns the only configuration ports are ever opened with:
// 115200 baud, 8N1, 100ms read timeout.
func DefaultMode() Mode {
	return Mode{
		Serial: serial.Mode{
			BaudRate: BaudRate,
			DataBits: 8,
			Parity:   serial.NoParity,
			StopBits: serial.OneStopBit,
		},
		ReadTimeout: ReadTimeout,
	}
}

// MockPorts are the names the development mock reports.
var MockPorts = []string{"/dev/ttyMOCK0", "/dev/ttyMOCK1"}

// New returns the hardware transport, or the development mock if mock is set.
func New(mock bool) Transport {
	if mock {
		return NewMock(MockPorts...)
	}
	return NewSerial()
}
