package app

import (
	"github.com/dshills/tabletop/internal/event"
	"github.com/dshills/tabletop/internal/input/key"
	"github.com/dshills/tabletop/internal/renderer/backend"
)

// feed turns terminal events into queue events until the terminal closes,
// fails, or the queue is closed.
func (app *Application) feed(be backend.Backend) {
	defer close(app.feederDone)

	log := app.root.WithComponent("input")
	for {
		ev := be.PollEvent()

		var out event.Event
		switch ev.Type {
		case backend.EventClosed:
			return
		case backend.EventError:
			if err := app.queue.Send(event.Fault(ev.Err)); err != nil {
				log.Debug("drop fault %v: %v", ev.Err, err)
			}
			return
		case backend.EventKey:
			out = event.Input(convertKeyEvent(ev))
		case backend.EventResize:
			out = event.Redraw()
		default:
			continue
		}

		if err := app.queue.Send(out); err != nil {
			return
		}
	}
}

// convertKeyEvent converts a backend key event to a key.Event press.
func convertKeyEvent(ev backend.Event) key.Event {
	mods := key.ModNone
	if ev.Mod.Has(backend.ModCtrl) {
		mods = mods.With(key.ModCtrl)
	}
	if ev.Mod.Has(backend.ModAlt) {
		mods = mods.With(key.ModAlt)
	}
	if ev.Mod.Has(backend.ModShift) {
		mods = mods.With(key.ModShift)
	}
	if ev.Mod.Has(backend.ModMeta) {
		mods = mods.With(key.ModMeta)
	}

	k := mapBackendKey(ev.Key)
	var r rune
	if k == key.KeyRune {
		r = ev.Rune
	}
	return key.Event{Key: k, Rune: r, Modifiers: mods, Kind: key.Press}
}

// mapBackendKey maps a backend.Key to a key.Key.
func mapBackendKey(bk backend.Key) key.Key {
	switch bk {
	case backend.KeyRune:
		return key.KeyRune
	case backend.KeyEscape:
		return key.KeyEscape
	case backend.KeyEnter:
		return key.KeyEnter
	case backend.KeyTab:
		return key.KeyTab
	case backend.KeyBackspace:
		return key.KeyBackspace
	case backend.KeyDelete:
		return key.KeyDelete
	case backend.KeyInsert:
		return key.KeyInsert
	case backend.KeyHome:
		return key.KeyHome
	case backend.KeyEnd:
		return key.KeyEnd
	case backend.KeyPageUp:
		return key.KeyPageUp
	case backend.KeyPageDown:
		return key.KeyPageDown
	case backend.KeyUp:
		return key.KeyUp
	case backend.KeyDown:
		return key.KeyDown
	case backend.KeyLeft:
		return key.KeyLeft
	case backend.KeyRight:
		return key.KeyRight
	case backend.KeyF1:
		return key.KeyF1
	case backend.KeyF2:
		return key.KeyF2
	case backend.KeyF3:
		return key.KeyF3
	case backend.KeyF4:
		return key.KeyF4
	case backend.KeyF5:
		return key.KeyF5
	case backend.KeyF6:
		return key.KeyF6
	case backend.KeyF7:
		return key.KeyF7
	case backend.KeyF8:
		return key.KeyF8
	case backend.KeyF9:
		return key.KeyF9
	case backend.KeyF10:
		return key.KeyF10
	case backend.KeyF11:
		return key.KeyF11
	case backend.KeyF12:
		return key.KeyF12
	default:
		return key.KeyNone
	}
}
