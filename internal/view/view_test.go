package view

import (
	"errors"

	"github.com/dshills/tabletop/internal/event"
	"github.com/dshills/tabletop/internal/input/key"
)

// recorder is an event.Sender that keeps what it is given.
type recorder struct {
	events []event.Event
	err    error
}

func (r *recorder) Send(ev event.Event) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, ev)
	return nil
}

func (r *recorder) take() []event.Event {
	evs := r.events
	r.events = nil
	return evs
}

var errClosed = errors.New("closed")

func press(k key.Key) event.Event {
	return event.Input(key.NewSpecialEvent(k, key.ModNone))
}

func runeKey(r rune, mods key.Modifier) event.Event {
	return event.Input(key.NewRuneEvent(r, mods))
}
