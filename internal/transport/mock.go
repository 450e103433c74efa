package transport

import (
	"errors"
	"fmt"
	"sync"
)

// Mock simulates the serial layer for development and tests.
// It never touches hardware; every write is recorded.
type Mock struct {
	mu sync.Mutex

	ports  []string
	opened []string
	mode   Mode
	writes []Write

	// Errors to return from the next calls. Nil means success.
	ListErr  error
	OpenErr  error
	WriteErr error
}

// Write is one recorded call to a mock port.
type Write struct {
	Port string
	Data []byte
}

// NewMock creates a mock transport that reports the given port names.
func NewMock(ports ...string) *Mock {
	return &Mock{ports: ports}
}

// SetPorts changes what the next scan returns.
func (m *Mock) SetPorts(ports ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ports = ports
}

func (m *Mock) ListPorts() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]string, len(m.ports))
	copy(out, m.ports)
	return out, nil
}

// Open accepts any name, listed or not, unless OpenErr is set.
func (m *Mock) Open(name string, mode Mode) (Port, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	if mode.Serial.BaudRate == 0 {
		return nil, fmt.Errorf("%s: invalid baud rate", name)
	}
	m.opened = append(m.opened, name)
	m.mode = mode
	return &mockPort{name: name, owner: m}, nil
}

// Opened returns the names of all ports opened so far.
func (m *Mock) Opened() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.opened...)
}

// LastMode returns the mode of the most recent successful open.
func (m *Mock) LastMode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// Writes returns every write issued on any port of this transport.
func (m *Mock) Writes() []Write {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Write(nil), m.writes...)
}

var ErrPortClosed = errors.New("port closed")

type mockPort struct {
	name   string
	owner  *Mock
	closed bool
}

func (p *mockPort) Write(b []byte) (int, error) {
	p.owner.mu.Lock()
	defer p.owner.mu.Unlock()

	if p.closed {
		return 0, fmt.Errorf("%s: %w", p.name, ErrPortClosed)
	}
	if p.owner.WriteErr != nil {
		return 0, p.owner.WriteErr
	}
	data := make([]byte, len(b))
	copy(data, b)
	p.owner.writes = append(p.owner.writes, Write{Port: p.name, Data: data})
	return len(b), nil
}

func (p *mockPort) Close() error {
	p.owner.mu.Lock()
	defer p.owner.mu.Unlock()
	p.closed = true
	return nil
}
