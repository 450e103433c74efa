package session

import (
	"errors"
	"fmt"
)

// Kind is the category of a failed session action.
type Kind int

const (
	// KindEnumeration: the host could not list serial devices.
	KindEnumeration Kind = iota
	// KindOpen: the named device could not be opened (busy, permission, missing).
	KindOpen
	// KindWrite: writing to the open device failed or was short.
	KindWrite
)

var (
	ErrEnumeration = errors.New("port scan failed")
	ErrOpen        = errors.New("port open failed")
	ErrWrite       = errors.New("port write failed")

	// ErrConnected is returned when scan or open is attempted while a port
	// is already open. Nothing is changed in that case.
	ErrConnected = errors.New("a port is already open")
)

func (k Kind) String() string {
	switch k {
	case KindEnumeration:
		return "enumeration"
	case KindOpen:
		return "open"
	case KindWrite:
		return "write"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a recoverable failure of one session action.
type Error struct {
	Kind Kind
	Port string
	Err  error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindEnumeration:
		msg = "could not scan ports"
	case KindOpen:
		msg = fmt.Sprintf("could not open %s", e.Port)
	case KindWrite:
		msg = fmt.Sprintf("could not write to %s", e.Port)
	default:
		msg = "session error"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match an *Error against the sentinel of its kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrEnumeration:
		return e.Kind == KindEnumeration
	case ErrOpen:
		return e.Kind == KindOpen
	case ErrWrite:
		return e.Kind == KindWrite
	}
	return false
}
