package view

import (
	"errors"

	"github.com/dshills/tabletop/internal/event"
	"github.com/dshills/tabletop/internal/logging"
	"github.com/dshills/tabletop/internal/renderer"
	"github.com/dshills/tabletop/internal/renderer/core"
)

// ErrEmptyMenu is returned when a menu is built without items.
var ErrEmptyMenu = errors.New("menu has no items")

// MenuItem is one selectable entry of the main menu.
type MenuItem struct {
	Label  string
	Target event.ViewID
}

// DefaultMenuItems returns the main menu entries.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{Label: "Character Editor", Target: event.CharacterEditor},
		{Label: "Combat Tracker", Target: event.CombatTracker},
	}
}

// Menu is the main menu: a list with a cyclic selection.
type Menu struct {
	items    []MenuItem
	selected int

	keys   Keymap
	sender event.Sender
	logger *logging.Logger
}

// NewMenu creates a menu with the first item selected.
func NewMenu(items []MenuItem, sender event.Sender, keys Keymap, logger *logging.Logger) (*Menu, error) {
	if len(items) == 0 {
		return nil, ErrEmptyMenu
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Menu{
		items:  append([]MenuItem(nil), items...),
		keys:   keys,
		sender: sender,
		logger: logger,
	}, nil
}

// Items returns a copy of the menu entries.
func (m *Menu) Items() []MenuItem {
	return append([]MenuItem(nil), m.items...)
}

// Selected returns the index of the highlighted item.
func (m *Menu) Selected() int {
	return m.selected
}

// SetKeymap replaces the navigation bindings.
func (m *Menu) SetKeymap(keys Keymap) {
	m.keys = keys
}

// HandleEvent moves the selection, activates the selected item or
// translates a key into one of those actions.
func (m *Menu) HandleEvent(ev event.Event) {
	n := len(m.items)
	switch ev.Kind {
	case event.KindNext:
		m.selected = (m.selected + 1) % n
	case event.KindPrevious:
		m.selected = (m.selected - 1 + n) % n
	case event.KindSubmit:
		m.send(event.ChangeView(m.items[m.selected].Target))
	case event.KindInput:
		if action, ok := m.keys.Translate(ev.Key); ok {
			m.send(action)
		}
	}
}

func (m *Menu) send(ev event.Event) {
	if err := m.sender.Send(ev); err != nil {
		m.logger.Debug("drop %s: %v", ev, err)
	}
}

// Draw renders the menu in a bordered block.
func (m *Menu) Draw(f *renderer.Frame) {
	inner := renderer.Block{
		Title:      " Main Menu ",
		TitleStyle: core.DefaultStyle().Bold(),
	}.Draw(f, f.Area())

	labels := make([]string, len(m.items))
	for i, it := range m.items {
		labels[i] = it.Label
	}

	renderer.List{
		Items:     labels,
		Selected:  m.selected,
		Style:     core.DefaultStyle(),
		Highlight: core.DefaultStyle().Reverse(),
		Marker:    "> ",
	}.Draw(f, inner.Inset(1, 1, 0, 1))
}
