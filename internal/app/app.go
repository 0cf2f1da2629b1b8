// Package app wires the tabletop components together and runs the
// dispatcher loop.
package app

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dshills/tabletop/internal/command"
	"github.com/dshills/tabletop/internal/config"
	"github.com/dshills/tabletop/internal/event"
	"github.com/dshills/tabletop/internal/logging"
	"github.com/dshills/tabletop/internal/renderer"
	"github.com/dshills/tabletop/internal/renderer/backend"
	"github.com/dshills/tabletop/internal/script"
	"github.com/dshills/tabletop/internal/view"
)

// Application owns the event queue, the views and the active view.
type Application struct {
	mu sync.Mutex

	// Configuration
	cfg    *config.Config
	policy config.ExitPolicy
	table  *command.Table

	// Components
	queue    *event.Queue
	views    *view.Registry
	backend  backend.Backend
	renderer *renderer.Renderer
	watcher  *config.Watcher
	scripts  *script.Runner

	// Logging
	root   *logging.Logger
	logger *logging.Logger

	metrics *Metrics

	// State
	active     atomic.Uint32
	started    atomic.Bool
	feederDone chan struct{}

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty means built-in defaults.
	ConfigPath string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// Logger is the root logger. Nil discards all output.
	Logger *logging.Logger
}

// New loads the configuration and builds every view.
func New(opts Options) (*Application, error) {
	root := opts.Logger
	if root == nil {
		root = logging.Discard()
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	app := &Application{
		cfg:        cfg,
		policy:     cfg.ExitPolicy,
		queue:      event.NewQueue(),
		root:       root,
		logger:     root.WithComponent("dispatcher"),
		metrics:    NewMetrics(),
		feederDone: make(chan struct{}),
		opts:       opts,
	}
	app.scripts = script.NewRunner(script.WithLogger(root.WithComponent("script")))

	if err := app.applyLogLevel(cfg); err != nil {
		return nil, &InitError{Component: "logging", Err: err}
	}

	keys, err := view.NewKeymap(cfg.Keys)
	if err != nil {
		return nil, &InitError{Component: "keymap", Err: err}
	}

	app.table, err = app.loadTable(cfg)
	if err != nil {
		return nil, &InitError{Component: "script", Err: err}
	}

	app.views, err = view.NewRegistry(app.queue, keys, app.table, view.WithLogger(root))
	if err != nil {
		return nil, &InitError{Component: "views", Err: err}
	}

	app.setActive(event.MainMenu)
	return app, nil
}

// applyLogLevel sets the root level from the flag override or cfg.
func (app *Application) applyLogLevel(cfg *config.Config) error {
	if app.opts.LogLevel != "" {
		level, err := logging.ParseLevel(app.opts.LogLevel)
		if err != nil {
			return err
		}
		app.root.SetLevel(level)
		return nil
	}
	app.root.SetLevel(cfg.LogLevel())
	return nil
}

// loadTable returns the built-in command table extended by cfg's script.
func (app *Application) loadTable(cfg *config.Config) (*command.Table, error) {
	base := command.DefaultTable()
	path := cfg.ScriptPath()
	if path == "" {
		return base, nil
	}
	table, err := app.scripts.Apply(context.Background(), path, base)
	if err != nil {
		return nil, err
	}
	app.logger.Info("loaded %d command(s) from %s", table.Len(), path)
	return table, nil
}

// SetBackend sets the terminal backend. Must be called before Run.
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.started.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run initializes the backend and dispatches events until the user quits,
// Stop is called or the terminal fails. Run may be called once.
func (app *Application) Run() error {
	app.mu.Lock()
	be := app.backend
	app.mu.Unlock()

	if be == nil {
		return ErrNoBackend
	}
	if !app.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	if err := be.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	app.renderer = renderer.New(be)

	app.startWatcher()
	go app.feed(be)

	app.logger.Info("started in %s", app.Active())
	err := app.loop()

	app.queue.Close()
	be.Shutdown()
	<-app.feederDone
	app.stopWatcher()

	s := app.metrics.Snapshot()
	app.logger.Info("stopped after %d event(s), %d render(s)", s.EventCount, s.RenderCount)
	return err
}

// Stop ends Run. It is safe to call from any goroutine, more than once.
func (app *Application) Stop() {
	app.queue.Close()
}

// Active returns the view currently shown.
func (app *Application) Active() event.ViewID {
	return event.ViewID(app.active.Load())
}

func (app *Application) setActive(v event.ViewID) {
	app.active.Store(uint32(v))
}

// Metrics returns the application's counters.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Config returns the configuration in effect.
func (app *Application) Config() *config.Config {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.cfg
}

func (app *Application) startWatcher() {
	if !app.cfg.Watch || app.cfg.Path == "" {
		return
	}
	log := app.root.WithComponent("config")
	w, err := config.NewWatcher(app.cfg.Path, func() {
		if err := app.queue.Send(event.Reload()); err != nil {
			log.Debug("drop reload: %v", err)
		}
	}, config.WithErrorHandler(func(err error) {
		log.Warn("watch: %v", err)
	}))
	if err != nil {
		log.Warn("not watching %s: %v", app.cfg.Path, err)
		return
	}
	app.watcher = w
	log.Debug("watching %s", w.Path())
}

func (app *Application) stopWatcher() {
	if app.watcher == nil {
		return
	}
	if err := app.watcher.Close(); err != nil {
		app.logger.Warn("close watcher: %v", err)
	}
	app.watcher = nil
}
