package session

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/serialembed/serialembed/internal/logging"
	"github.com/serialembed/serialembed/internal/transport"
)

// State of the session. There is no way back from Connected.
type State int

const (
	Disconnected State = iota
	Connected
)

func (s State) String() string {
	if s == Connected {
		return "connected"
	}
	return "disconnected"
}

type Level int

const (
	Info Level = iota
	Failure
)

// Notice is the inline status text shown to the user after an action.
type Notice struct {
	Level Level
	Text  string
}

const DefaultConsoleLimit = 500

// Session is the application state: at most one open port, the result of
// the last port scan and the outgoing message buffer.
//
// All methods run synchronously on the caller's goroutine. A Session must
// only be used by the ui loop that owns it.
type Session struct {
	transport transport.Transport
	mode      transport.Mode

	port     transport.Port
	portName string
	ports    []string
	message  string

	console      []string
	consoleLimit int
	timestamps   bool
	notice       Notice

	now func() time.Time
}

type Option func(*Session)

// WithConsoleLimit caps the number of console lines kept.
func WithConsoleLimit(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.consoleLimit = n
		}
	}
}

// WithTimestamps prefixes console lines with the time of the action.
func WithTimestamps(on bool) Option {
	return func(s *Session) {
		s.timestamps = on
	}
}

// New creates a disconnected session on top of the given transport.
func New(t transport.Transport, opts ...Option) *Session {
	s := &Session{
		transport:    t,
		mode:         transport.DefaultMode(),
		consoleLimit: DefaultConsoleLimit,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) State() State {
	if s.port != nil {
		return Connected
	}
	return Disconnected
}

func (s *Session) Connected() bool {
	return s.port != nil
}

// Ports returns the result of the last successful scan.
func (s *Session) Ports() []string {
	return s.ports
}

// PortName returns the name of the open port, or "" while disconnected.
func (s *Session) PortName() string {
	return s.portName
}

func (s *Session) Message() string {
	return s.message
}

func (s *Session) SetMessage(msg string) {
	s.message = msg
}

func (s *Session) Notice() Notice {
	return s.notice
}

func (s *Session) Console() []string {
	return s.console
}

func (s *Session) ClearConsole() {
	s.console = nil
}

// ScanPorts replaces the port list with what the transport reports.
// On failure the previous list is kept.
func (s *Session) ScanPorts() error {
	if s.Connected() {
		return ErrConnected
	}

	ports, err := s.transport.ListPorts()
	if err != nil {
		e := &Error{Kind: KindEnumeration, Err: err}
		s.fail(e)
		return e
	}

	s.ports = ports
	for _, p := range ports {
		logging.Debug("Found port", zap.String("port", p))
	}

	if len(ports) == 0 {
		s.inform("No serial ports found")
	} else {
		s.inform(fmt.Sprintf("Found %d port(s)", len(ports)))
	}
	return nil
}

// OpenPort opens name with the fixed line configuration. The name does not
// have to be part of the last scan.
func (s *Session) OpenPort(name string) error {
	if s.Connected() {
		return ErrConnected
	}

	port, err := s.transport.Open(name, s.mode)
	if err != nil {
		e := &Error{Kind: KindOpen, Port: name, Err: err}
		s.fail(e)
		return e
	}

	s.port = port
	s.portName = name
	logging.Info("Opened port", zap.String("port", name), zap.Int("baud", s.mode.Serial.BaudRate))
	s.inform(fmt.Sprintf("Opened %s at %d baud", name, s.mode.Serial.BaudRate))
	return nil
}

// SendMessage writes the message buffer as raw bytes to the open port.
// Without an open port it does nothing. The buffer is kept after sending.
func (s *Session) SendMessage() error {
	if !s.Connected() {
		return nil
	}

	data := []byte(s.message)
	n, err := s.port.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		e := &Error{Kind: KindWrite, Port: s.portName, Err: err}
		s.fail(e)
		return e
	}

	logging.LogRawBytes("Port write", data)
	s.inform(fmt.Sprintf("Sent %d byte(s) to %s", n, s.portName))
	return nil
}

// Close releases the open port. It is meant for process exit only and
// does not make the session usable for another port.
func (s *Session) Close() error {
	if s.port == nil {
		return nil
	}
	err := s.port.Close()
	if err != nil {
		logging.Warn("Closing port failed", zap.String("port", s.portName), zap.Error(err))
	}
	return err
}

func (s *Session) inform(text string) {
	s.notice = Notice{Level: Info, Text: text}
	s.appendConsole(text)
}

func (s *Session) fail(err error) {
	logging.Warn("Session action failed", zap.Error(err))
	s.notice = Notice{Level: Failure, Text: err.Error()}
	s.appendConsole("ERROR: " + err.Error())
}

func (s *Session) appendConsole(line string) {
	if s.timestamps {
		line = fmt.Sprintf("[%s] %s", s.now().Format("15:04:05.000"), line)
	}
	s.console = append(s.console, line)

	if len(s.console) > s.consoleLimit {
		s.console = s.console[len(s.console)-s.consoleLimit:]
	}
}
