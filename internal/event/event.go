package event

import (
	"fmt"

	"github.com/dshills/tabletop/internal/input/key"
)

// Kind selects the Event variant.
type Kind uint8

const (
	// KindNone is the zero Kind; it is never sent.
	KindNone Kind = iota
	KindExit
	KindChangeView
	KindSubmit
	KindNext
	KindPrevious
	KindUndo
	KindInput
	KindRedraw
	KindReload
	KindFault
)

var kindNames = [...]string{
	KindNone:       "none",
	KindExit:       "exit",
	KindChangeView: "change_view",
	KindSubmit:     "submit",
	KindNext:       "next",
	KindPrevious:   "previous",
	KindUndo:       "undo",
	KindInput:      "input",
	KindRedraw:     "redraw",
	KindReload:     "reload",
	KindFault:      "fault",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Event is a discrete message routed through the Queue.
// Only the payload field belonging to Kind is meaningful.
type Event struct {
	Kind Kind

	// View is the target of KindChangeView.
	View ViewID

	// Key is the key event of KindInput.
	Key key.Event

	// Err is the failure carried by KindFault.
	Err error
}

// Exit asks to leave the current view (or quit, depending on policy).
func Exit() Event { return Event{Kind: KindExit} }

// ChangeView asks the dispatcher to activate v.
func ChangeView(v ViewID) Event { return Event{Kind: KindChangeView, View: v} }

// Submit confirms the current selection.
func Submit() Event { return Event{Kind: KindSubmit} }

// Next moves the selection forward.
func Next() Event { return Event{Kind: KindNext} }

// Previous moves the selection back.
func Previous() Event { return Event{Kind: KindPrevious} }

// Undo reverts the last editor submission.
func Undo() Event { return Event{Kind: KindUndo} }

// Input wraps a raw key event.
func Input(k key.Event) Event { return Event{Kind: KindInput, Key: k} }

// Redraw requests a render pass without any state change.
func Redraw() Event { return Event{Kind: KindRedraw} }

// Reload signals that the configuration file changed on disk.
func Reload() Event { return Event{Kind: KindReload} }

// Fault reports a terminal failure to the dispatcher.
func Fault(err error) Event { return Event{Kind: KindFault, Err: err} }

// String returns a compact description for logs.
func (e Event) String() string {
	switch e.Kind {
	case KindChangeView:
		return "change_view(" + e.View.String() + ")"
	case KindInput:
		return "input(" + e.Key.String() + ")"
	case KindFault:
		return fmt.Sprintf("fault(%v)", e.Err)
	default:
		return e.Kind.String()
	}
}

// Sender is the producing side of the queue handed to views and feeders.
type Sender interface {
	Send(Event) error
}
