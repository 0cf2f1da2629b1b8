package app

import (
	"github.com/dshills/tabletop/internal/config"
	"github.com/dshills/tabletop/internal/view"
)

// reload re-reads the config file. A file that fails to load or validate
// leaves everything as it was; a failing script keeps the previous command
// table but still applies the other settings.
func (app *Application) reload() {
	log := app.root.WithComponent("config")

	app.mu.Lock()
	path := app.cfg.Path
	app.mu.Unlock()

	if path == "" {
		return
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Warn("reload ignored: %v", err)
		app.metrics.RecordReload(false)
		return
	}
	keys, err := view.NewKeymap(cfg.Keys)
	if err != nil {
		log.Warn("reload ignored: %v", err)
		app.metrics.RecordReload(false)
		return
	}

	ok := true
	if table, err := app.loadTable(cfg); err != nil {
		log.Warn("keeping previous commands: %v", err)
		ok = false
	} else {
		app.table = table
		app.views.SetTable(table)
	}

	if err := app.applyLogLevel(cfg); err != nil {
		log.Warn("log level: %v", err)
	}
	app.views.SetKeymap(keys)
	app.policy = cfg.ExitPolicy

	app.mu.Lock()
	app.cfg = cfg
	app.mu.Unlock()

	app.metrics.RecordReload(ok)
	log.Info("reloaded %s (exit policy %s)", path, cfg.ExitPolicy)
}
