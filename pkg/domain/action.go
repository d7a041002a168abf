package domain

import (
	"fmt"
	"strings"
)

// Kind identifies the type of an interpreted action.
type Kind string

const (
	KindClick        Kind = "click"
	KindMove         Kind = "move"
	KindTypeText     Kind = "type"
	KindKeyCombo     Kind = "hotkey"
	KindOpenApp      Kind = "open_app"
	KindReadScreen   Kind = "read_screen"
	KindUnrecognized Kind = "unrecognized"
)

// Action is a typed instruction produced by the interpreter. Instances are
// immutable once produced; only the fields relevant to Kind are set.
type Action struct {
	Kind Kind

	// X, Y are screen coordinates for KindClick and KindMove. Never negative.
	X, Y int

	// Text is the literal string to type for KindTypeText, preserved verbatim.
	Text string

	// Keys holds the key combination for KindKeyCombo, in press order.
	Keys []string

	// App is the application name for KindOpenApp.
	App string
}

// String returns a human-readable description of the action, suitable for
// audit records and logs.
func (a Action) String() string {
	switch a.Kind {
	case KindClick:
		return fmt.Sprintf("click at (%d, %d)", a.X, a.Y)
	case KindMove:
		return fmt.Sprintf("move mouse to (%d, %d)", a.X, a.Y)
	case KindTypeText:
		return fmt.Sprintf("type %q", a.Text)
	case KindKeyCombo:
		return "press " + strings.Join(a.Keys, "+")
	case KindOpenApp:
		return "open " + a.App
	case KindReadScreen:
		return "read screen"
	default:
		return string(a.Kind)
	}
}
