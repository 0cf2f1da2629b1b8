package view

import (
	"github.com/dshills/tabletop/internal/event"
	"github.com/dshills/tabletop/internal/logging"
	"github.com/dshills/tabletop/internal/renderer"
	"github.com/dshills/tabletop/internal/renderer/core"
)

// Tracker is the combat tracker. It has no state of its own yet.
type Tracker struct {
	keys   Keymap
	sender event.Sender
	logger *logging.Logger
}

// NewTracker creates the combat tracker view.
func NewTracker(sender event.Sender, keys Keymap, logger *logging.Logger) *Tracker {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Tracker{keys: keys, sender: sender, logger: logger}
}

// SetKeymap replaces the exit binding.
func (t *Tracker) SetKeymap(keys Keymap) {
	t.keys = keys
}

// HandleEvent sends Exit for the exit key and ignores everything else.
func (t *Tracker) HandleEvent(ev event.Event) {
	if ev.Kind != event.KindInput || !ev.Key.MatchesAny(t.keys.Exit) {
		return
	}
	if err := t.sender.Send(event.Exit()); err != nil {
		t.logger.Debug("drop exit: %v", err)
	}
}

// Draw renders the tracker's frame.
func (t *Tracker) Draw(f *renderer.Frame) {
	inner := renderer.Block{
		Title:      " Combat Tracker ",
		TitleStyle: core.DefaultStyle().Bold(),
	}.Draw(f, f.Area())

	renderer.Text{
		Content: "No combatants.",
		Style:   core.DefaultStyle().Dim(),
	}.Draw(f, inner.Inset(1, 1, 0, 1))
}
