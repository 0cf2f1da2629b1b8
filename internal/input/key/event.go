package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Kind distinguishes key transitions.
type Kind uint8

const (
	// Press is a key going down. It is the zero value because it is the only
	// kind most terminals report.
	Press Kind = iota
	// Release is a key coming back up.
	Release
	// Repeat is an auto-repeated press while the key is held.
	Repeat
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Press:
		return "press"
	case Release:
		return "release"
	case Repeat:
		return "repeat"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Event represents a single key transition.
type Event struct {
	// Key identifies the key.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Kind is press, release or repeat.
	Kind Kind
}

// NewRuneEvent creates a press event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a press event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsPress reports whether the event is a key press.
func (e Event) IsPress() bool {
	return e.Kind == Press
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if any modifier is pressed.
// For character events Shift alone does not count, since it is already
// reflected in the character itself.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// Matches reports whether e is the same key as binding. Timestamps and kinds
// are not compared. For characters Shift is ignored and control combinations
// compare case-insensitively, matching what terminals actually send.
func (e Event) Matches(binding Event) bool {
	if e.Key != binding.Key {
		return false
	}
	if e.Key != KeyRune {
		return e.Modifiers == binding.Modifiers
	}
	const chord = ModCtrl | ModAlt | ModMeta
	if e.Modifiers&chord != binding.Modifiers&chord {
		return false
	}
	if e.Modifiers&chord != 0 {
		return unicode.ToLower(e.Rune) == unicode.ToLower(binding.Rune)
	}
	return e.Rune == binding.Rune
}

// MatchesAny reports whether e matches one of bindings.
func (e Event) MatchesAny(bindings []Event) bool {
	for _, b := range bindings {
		if e.Matches(b) {
			return true
		}
	}
	return false
}

// String returns a Vim-style representation such as "a", "<C-z>" or "<Esc>".
func (e Event) String() string {
	if e.IsRune() && !e.IsModified() {
		if e.Rune == ' ' {
			return "<Space>"
		}
		return string(e.Rune)
	}

	var parts []string
	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.Modifiers.HasMeta() {
		parts = append(parts, "D")
	}
	if e.Modifiers.HasShift() && !e.IsRune() {
		parts = append(parts, "S")
	}

	var name string
	switch e.Key {
	case KeyRune:
		name = strings.ToLower(string(e.Rune))
	case KeyEscape:
		name = "Esc"
	case KeyEnter:
		name = "CR"
	case KeyBackspace:
		name = "BS"
	default:
		name = e.Key.String()
	}
	parts = append(parts, name)

	return "<" + strings.Join(parts, "-") + ">"
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s, Kind: %s}",
		e.Key, e.Rune, e.Modifiers, e.Kind)
}
