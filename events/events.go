package events

// defines all shared event messages

// Indicates the user asked for a new port scan.
type ScanRequested struct{}

// Indicates the user asked to open the named port.
type OpenRequested string

// Indicates the user asked to send the message buffer.
type SendRequested struct{}

// Indicates the session changed after an action (scan, open, send).
// Components that mirror session state refresh on it.
type SessionChanged struct{}
