package transport

import (
	"fmt"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// Serial talks to real hardware through go.bug.st/serial.
type Serial struct{}

func NewSerial() Serial {
	return Serial{}
}

// ListPorts returns the names of all serial devices the host exposes,
// in the order the enumerator reports them.
func (Serial) ListPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}
	return ports, nil
}

// Open a port with the given mode. The read timeout is applied after the
// port was opened, since serial.Mode does not carry it.
func (Serial) Open(name string, mode Mode) (Port, error) {
	m := mode.Serial
	port, err := serial.Open(name, &m)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	if mode.ReadTimeout > 0 {
		if err := port.SetReadTimeout(mode.ReadTimeout); err != nil {
			port.Close()
			return nil, fmt.Errorf("set read timeout on %s: %w", name, err)
		}
	}
	return port, nil
}

// PortDetails describes a detected port for the list command.
type PortDetails struct {
	Name         string
	IsUSB        bool
	VID          string
	PID          string
	SerialNumber string
	Product      string
}

// Details returns extended information about every detected port.
func (Serial) Details() ([]PortDetails, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}

	details := make([]PortDetails, 0, len(ports))
	for _, p := range ports {
		details = append(details, PortDetails{
			Name:         p.Name,
			IsUSB:        p.IsUSB,
			VID:          p.VID,
			PID:          p.PID,
			SerialNumber: p.SerialNumber,
			Product:      p.Product,
		})
	}
	return details, nil
}
