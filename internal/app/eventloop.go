package app

import (
	"fmt"
	"time"

	"github.com/dshills/tabletop/internal/config"
	"github.com/dshills/tabletop/internal/event"
	"github.com/dshills/tabletop/internal/renderer"
)

// loop dispatches until a step asks to stop.
func (app *Application) loop() error {
	for {
		quit, err := app.step()
		if err != nil || quit {
			return err
		}
	}
}

// step renders the active view, waits for one event and handles it.
// It reports whether the loop should end.
func (app *Application) step() (bool, error) {
	app.render()

	ev, ok := app.queue.Recv()
	if !ok {
		app.logger.Debug("queue closed")
		return true, nil
	}
	return app.handle(ev)
}

func (app *Application) render() {
	start := time.Now()
	active := app.Active()
	app.renderer.Render(func(f *renderer.Frame) {
		app.views.Draw(active, f)
	})
	app.metrics.RecordRender(time.Since(start))
}

// handle applies one event. Exit, ChangeView, Redraw, Reload and Fault are
// dispatcher events; everything else goes to the active view.
func (app *Application) handle(ev event.Event) (bool, error) {
	start := time.Now()
	defer func() { app.metrics.RecordEvent(time.Since(start)) }()

	app.logger.Debug("event %s in %s", ev, app.Active())

	switch ev.Kind {
	case event.KindExit:
		return app.exit(), nil

	case event.KindChangeView:
		if !app.views.Has(ev.View) {
			panic(fmt.Sprintf("app: change to unregistered view %v", ev.View))
		}
		app.setActive(ev.View)
		app.metrics.RecordViewChange()

	case event.KindRedraw:
		// The next render picks up the new size.

	case event.KindReload:
		app.reload()

	case event.KindFault:
		app.logger.Error("terminal failure: %v", ev.Err)
		return true, &TerminalError{Err: ev.Err}

	case event.KindInput:
		if !ev.Key.IsPress() {
			app.metrics.RecordInputDropped()
			return false, nil
		}
		app.views.HandleEvent(app.Active(), ev)

	default:
		app.views.HandleEvent(app.Active(), ev)
	}
	return false, nil
}

// exit applies the exit policy and reports whether to quit.
func (app *Application) exit() bool {
	if app.policy == config.ExitQuit || app.Active() == event.MainMenu {
		return true
	}
	app.setActive(event.MainMenu)
	app.metrics.RecordViewChange()
	return false
}
