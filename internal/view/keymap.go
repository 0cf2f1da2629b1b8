package view

import (
	"fmt"

	"github.com/dshills/tabletop/internal/config"
	"github.com/dshills/tabletop/internal/event"
	"github.com/dshills/tabletop/internal/input/key"
)

// Keymap holds the key bindings for each semantic action.
type Keymap struct {
	Next     []key.Event
	Previous []key.Event
	Submit   []key.Event
	Exit     []key.Event
	Undo     []key.Event
}

// DefaultKeymap returns the bindings of config.Default.
func DefaultKeymap() Keymap {
	km, err := NewKeymap(config.Default().Keys)
	if err != nil {
		panic(fmt.Sprintf("view: default keymap: %v", err))
	}
	return km
}

// NewKeymap parses the key specs of a configuration.
func NewKeymap(k config.KeyConfig) (Keymap, error) {
	var km Keymap
	var err error

	if km.Next, err = key.ParseAll(k.Next); err != nil {
		return Keymap{}, fmt.Errorf("keys.next: %w", err)
	}
	if km.Previous, err = key.ParseAll(k.Previous); err != nil {
		return Keymap{}, fmt.Errorf("keys.previous: %w", err)
	}
	if km.Submit, err = key.ParseAll(k.Submit); err != nil {
		return Keymap{}, fmt.Errorf("keys.submit: %w", err)
	}
	if km.Exit, err = key.ParseAll(k.Exit); err != nil {
		return Keymap{}, fmt.Errorf("keys.exit: %w", err)
	}
	if km.Undo, err = key.ParseAll(k.Undo); err != nil {
		return Keymap{}, fmt.Errorf("keys.undo: %w", err)
	}
	return km, nil
}

// Translate maps a key to the menu action bound to it. The second result
// is false when the key is unbound.
func (km Keymap) Translate(k key.Event) (event.Event, bool) {
	switch {
	case k.MatchesAny(km.Next):
		return event.Next(), true
	case k.MatchesAny(km.Previous):
		return event.Previous(), true
	case k.MatchesAny(km.Submit):
		return event.Submit(), true
	case k.MatchesAny(km.Exit):
		return event.Exit(), true
	}
	return event.Event{}, false
}
