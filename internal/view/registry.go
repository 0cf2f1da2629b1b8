package view

import (
	"fmt"

	"github.com/dshills/tabletop/internal/command"
	"github.com/dshills/tabletop/internal/event"
	"github.com/dshills/tabletop/internal/logging"
	"github.com/dshills/tabletop/internal/renderer"
)

// Registry holds one instance of every view.
type Registry struct {
	Menu    *Menu
	Editor  *Editor
	Tracker *Tracker
}

// NewRegistry builds all views sharing one sender, keymap and table.
func NewRegistry(sender event.Sender, keys Keymap, table *command.Table, opts ...RegistryOption) (*Registry, error) {
	o := registryOptions{items: DefaultMenuItems(), logger: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger

	menu, err := NewMenu(o.items, sender, keys, log.WithComponent("menu"))
	if err != nil {
		return nil, err
	}
	return &Registry{
		Menu:    menu,
		Editor:  NewEditor(sender, table, keys, log.WithComponent("editor")),
		Tracker: NewTracker(sender, keys, log.WithComponent("tracker")),
	}, nil
}

// Draw draws the view registered for id.
func (r *Registry) Draw(id event.ViewID, f *renderer.Frame) {
	switch id {
	case event.MainMenu:
		r.menu().Draw(f)
	case event.CharacterEditor:
		r.editor().Draw(f)
	case event.CombatTracker:
		r.tracker().Draw(f)
	default:
		panic(fmt.Sprintf("view: no view registered for %v", id))
	}
}

// HandleEvent forwards ev to the view registered for id.
func (r *Registry) HandleEvent(id event.ViewID, ev event.Event) {
	switch id {
	case event.MainMenu:
		r.menu().HandleEvent(ev)
	case event.CharacterEditor:
		r.editor().HandleEvent(ev)
	case event.CombatTracker:
		r.tracker().HandleEvent(ev)
	default:
		panic(fmt.Sprintf("view: no view registered for %v", id))
	}
}

// Has reports whether id names a registered view.
func (r *Registry) Has(id event.ViewID) bool {
	switch id {
	case event.MainMenu:
		return r.Menu != nil
	case event.CharacterEditor:
		return r.Editor != nil
	case event.CombatTracker:
		return r.Tracker != nil
	}
	return false
}

// SetKeymap updates the bindings of every view.
func (r *Registry) SetKeymap(keys Keymap) {
	r.menu().SetKeymap(keys)
	r.editor().SetKeymap(keys)
	r.tracker().SetKeymap(keys)
}

// SetTable updates the editor's command table.
func (r *Registry) SetTable(t *command.Table) {
	r.editor().SetTable(t)
}

func (r *Registry) menu() *Menu {
	if r.Menu == nil {
		panic("view: main menu not registered")
	}
	return r.Menu
}

func (r *Registry) editor() *Editor {
	if r.Editor == nil {
		panic("view: character editor not registered")
	}
	return r.Editor
}

func (r *Registry) tracker() *Tracker {
	if r.Tracker == nil {
		panic("view: combat tracker not registered")
	}
	return r.Tracker
}
