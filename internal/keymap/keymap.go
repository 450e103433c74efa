package keymap

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines a set of keybindings. To work for help it must satisfy
// key.Map. It could also very easily be a map[string]key.Binding.
type KeyMap struct {
	// Ports Group
	PortUpKey   key.Binding `group:"Ports"`
	PortDownKey key.Binding `group:"Ports"`
	ScanKey     key.Binding `group:"Ports"`
	OpenKey     key.Binding `group:"Ports"`

	// Console Group
	ConsoleUpKey     key.Binding `group:"Console"`
	ConsoleDownKey   key.Binding `group:"Console"`
	ConsoleTopKey    key.Binding `group:"Console"`
	ConsoleBottomKey key.Binding `group:"Console"`
	ClearConsoleKey  key.Binding `group:"Console"`
	OpenEditorKey    key.Binding `group:"Console"`

	// Actions Group
	SendKey  key.Binding `group:"Actions"`
	FocusKey key.Binding `group:"Actions"`
	HelpKey  key.Binding `group:"Actions"`
	CloseKey key.Binding `group:"Actions"`
	QuitKey  key.Binding `group:"Actions"`
}

// ShortHelp returns keybindings to be shown in the mini help view. It's part
// of the key.Map interface.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.HelpKey, k.QuitKey, k.ScanKey, k.FocusKey}
}

// FullHelp returns keybindings for the expanded help view. It's part of the
// key.Map interface.
func (k KeyMap) FullHelp() [][]key.Binding {
	var (
		ports   []key.Binding
		console []key.Binding
		actions []key.Binding
		other   []key.Binding // For keys without a tag
	)

	v := reflect.ValueOf(k)
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		fieldVal := v.Field(i)
		fieldType := t.Field(i)

		if binding, ok := fieldVal.Interface().(key.Binding); ok {
			switch fieldType.Tag.Get("group") {
			case "Ports":
				ports = append(ports, binding)
			case "Console":
				console = append(console, binding)
			case "Actions":
				actions = append(actions, binding)
			default:
				other = append(other, binding)
			}
		}
	}

	groups := [][]key.Binding{}
	for _, g := range [][]key.Binding{ports, console, actions, other} {
		if len(g) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// Default contains the default keybindings for the application.
var Default = KeyMap{
	PortUpKey: key.NewBinding(
		key.WithKeys("up", "ctrl+k"),
		key.WithHelp("↑/ctrl+k", "previous port"),
	),
	PortDownKey: key.NewBinding(
		key.WithKeys("down", "ctrl+j"),
		key.WithHelp("↓/ctrl+j", "next port"),
	),
	ScanKey: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "scan ports"),
	),
	OpenKey: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open selected port"),
	),
	ConsoleUpKey: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("PgUp", "scroll console up"),
	),
	ConsoleDownKey: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("PgDn", "scroll console down"),
	),
	ConsoleTopKey: key.NewBinding(
		key.WithKeys("ctrl+home"),
		key.WithHelp("ctrl+home", "console goto top"),
	),
	ConsoleBottomKey: key.NewBinding(
		key.WithKeys("ctrl+end"),
		key.WithHelp("ctrl+end", "console goto bottom"),
	),
	ClearConsoleKey: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear console"),
	),
	OpenEditorKey: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "open console in editor"),
	),
	SendKey: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "send message"),
	),
	FocusKey: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "ports/message"),
	),
	HelpKey: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "show help"),
	),
	CloseKey: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close help"),
	),
	QuitKey: key.NewBinding(
		key.WithKeys("ctrl+q", "ctrl+c"),
		key.WithHelp("ctrl+q", "quit"),
	),
}
