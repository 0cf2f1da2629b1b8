package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/tabletop/internal/config"
	"github.com/dshills/tabletop/internal/event"
	"github.com/dshills/tabletop/internal/input/key"
	"github.com/dshills/tabletop/internal/renderer"
	"github.com/dshills/tabletop/internal/renderer/backend"
)

// newStepApp builds an application whose loop is driven one step at a
// time by the test instead of by Run.
func newStepApp(t *testing.T, opts Options) (*Application, *backend.NullBackend) {
	t.Helper()
	app, err := New(opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	nb := backend.NewNullBackend(60, 16)
	if err := app.SetBackend(nb); err != nil {
		t.Fatalf("SetBackend() failed: %v", err)
	}
	app.renderer = renderer.New(nb)
	t.Cleanup(app.Stop)
	return app, nb
}

// settle steps until no events are pending and reports whether any step
// asked to quit.
func settle(t *testing.T, app *Application) (bool, error) {
	t.Helper()
	for i := 0; app.queue.Stats().Pending() > 0; i++ {
		if i > 100 {
			t.Fatal("events keep coming")
		}
		quit, err := app.step()
		if quit || err != nil {
			return quit, err
		}
	}
	return false, nil
}

func sendKeys(t *testing.T, app *Application, specs ...string) {
	t.Helper()
	for _, s := range specs {
		if err := app.queue.Send(event.Input(key.MustParse(s))); err != nil {
			t.Fatalf("Send: %v", err)
		}
	}
}

// press sends keys one at a time, settling after each.
func press(t *testing.T, app *Application, specs ...string) bool {
	t.Helper()
	for _, s := range specs {
		sendKeys(t, app, s)
		quit, err := settle(t, app)
		if err != nil {
			t.Fatalf("step: %v", err)
		}
		if quit {
			return true
		}
	}
	return false
}

func typeLine(t *testing.T, app *Application, line string) bool {
	t.Helper()
	for _, r := range line {
		spec := string(r)
		if r == ' ' {
			spec = "<Space>"
		}
		if press(t, app, spec) {
			return true
		}
	}
	return press(t, app, "Enter")
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewStartsInMenu(t *testing.T) {
	app, err := New(Options{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer app.Stop()

	if app.Active() != event.MainMenu {
		t.Errorf("Active() = %v, want main menu", app.Active())
	}
	if app.Config().ExitPolicy != config.ExitToMenu {
		t.Errorf("policy = %q", app.Config().ExitPolicy)
	}
}

func TestNewErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name      string
		opts      Options
		component string
	}{
		{"bad config", Options{ConfigPath: writeConfig(t, t.TempDir(), "exit_policy = 3\n")}, "config"},
		{"bad level flag", Options{LogLevel: "loud"}, "logging"},
		{"bad script", Options{ConfigPath: writeConfig(t, dir, "watch = false\n[commands]\nscript = \"missing.lua\"\n")}, "script"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts)
			var ie *InitError
			if !errors.As(err, &ie) {
				t.Fatalf("err = %v, want *InitError", err)
			}
			if ie.Component != tt.component {
				t.Errorf("Component = %q, want %q", ie.Component, tt.component)
			}
		})
	}
}

func TestMenuNavigationToTracker(t *testing.T) {
	app, nb := newStepApp(t, Options{})

	if press(t, app, "Down", "Enter") {
		t.Fatal("quit unexpectedly")
	}
	if app.Active() != event.CombatTracker {
		t.Fatalf("Active() = %v, want combat tracker", app.Active())
	}

	app.render()
	if !strings.Contains(nb.Row(0), "Combat Tracker") {
		t.Errorf("screen row 0 = %q", nb.Row(0))
	}
}

func TestExitPolicyMenu(t *testing.T) {
	app, _ := newStepApp(t, Options{})

	press(t, app, "Enter")
	if app.Active() != event.CharacterEditor {
		t.Fatalf("Active() = %v, want editor", app.Active())
	}

	if press(t, app, "Esc") {
		t.Fatal("Esc in editor quit under the menu policy")
	}
	if app.Active() != event.MainMenu {
		t.Fatalf("Active() = %v, want main menu", app.Active())
	}

	if !press(t, app, "Esc") {
		t.Fatal("Esc in main menu did not quit")
	}
}

func TestExitPolicyQuit(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "exit_policy = \"quit\"\nwatch = false\n")
	app, _ := newStepApp(t, Options{ConfigPath: path})

	press(t, app, "Down", "Enter")
	if app.Active() != event.CombatTracker {
		t.Fatalf("Active() = %v", app.Active())
	}
	if !press(t, app, "Esc") {
		t.Fatal("Esc did not quit under the quit policy")
	}
}

func TestEditorCommands(t *testing.T) {
	app, nb := newStepApp(t, Options{})
	press(t, app, "Enter")

	if typeLine(t, app, "view tracker") {
		t.Fatal("quit unexpectedly")
	}
	if app.Active() != event.CombatTracker {
		t.Fatalf("Active() = %v, want tracker", app.Active())
	}

	press(t, app, "Esc")
	press(t, app, "Enter")
	if typeLine(t, app, "jump") {
		t.Fatal("quit unexpectedly")
	}
	app.render()
	if !strings.Contains(nb.Text(), `unknown command "jump"`) {
		t.Errorf("feedback not shown:\n%s", nb.Text())
	}

	// exit goes back to the menu, the second one quits from there.
	if typeLine(t, app, "exit") {
		t.Fatal("exit from editor quit")
	}
	if app.Active() != event.MainMenu {
		t.Fatalf("Active() = %v, want menu", app.Active())
	}
}

func TestDispatcherEvents(t *testing.T) {
	app, _ := newStepApp(t, Options{})

	if err := app.queue.Send(event.ChangeView(event.CharacterEditor)); err != nil {
		t.Fatal(err)
	}
	if err := app.queue.Send(event.Redraw()); err != nil {
		t.Fatal(err)
	}
	release := key.MustParse("a")
	release.Kind = key.Release
	if err := app.queue.Send(event.Input(release)); err != nil {
		t.Fatal(err)
	}
	if quit, err := settle(t, app); quit || err != nil {
		t.Fatalf("settle = %v, %v", quit, err)
	}

	if app.Active() != event.CharacterEditor {
		t.Errorf("Active() = %v", app.Active())
	}
	if in := app.views.Editor.Input(); in != "" {
		t.Errorf("release reached the editor: %q", in)
	}
	s := app.Metrics().Snapshot()
	if s.InputDropped != 1 || s.ViewChanges != 1 || s.EventCount != 3 {
		t.Errorf("metrics = %+v", s)
	}
}

func TestFaultEndsLoop(t *testing.T) {
	app, _ := newStepApp(t, Options{})
	boom := errors.New("boom")
	if err := app.queue.Send(event.Fault(boom)); err != nil {
		t.Fatal(err)
	}
	quit, err := app.step()
	if !quit || !errors.Is(err, boom) {
		t.Fatalf("step = %v, %v", quit, err)
	}
}

func TestChangeViewUnknownPanics(t *testing.T) {
	app, _ := newStepApp(t, Options{})
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	app.handle(event.ChangeView(event.ViewID(42)))
}

func TestClosedQueueQuits(t *testing.T) {
	app, _ := newStepApp(t, Options{})
	app.Stop()
	quit, err := app.step()
	if !quit || err != nil {
		t.Fatalf("step = %v, %v", quit, err)
	}
}

func TestReload(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "watch = false\n")
	app, _ := newStepApp(t, Options{ConfigPath: path})

	script := filepath.Join(dir, "aliases.lua")
	if err := os.WriteFile(script, []byte(`alias("quit", "exit")`), 0o644); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, dir, "watch = false\nexit_policy = \"quit\"\n[keys]\nexit = [\"q\"]\n[commands]\nscript = \"aliases.lua\"\n")

	if err := app.queue.Send(event.Reload()); err != nil {
		t.Fatal(err)
	}
	settle(t, app)

	if app.Config().ExitPolicy != config.ExitQuit {
		t.Fatalf("policy = %q after reload", app.Config().ExitPolicy)
	}
	if _, ok := app.table.Lookup("quit"); !ok {
		t.Error("script alias not loaded")
	}

	// A broken file is ignored.
	writeConfig(t, dir, "exit_policy = \"never\"\n")
	if err := app.queue.Send(event.Reload()); err != nil {
		t.Fatal(err)
	}
	settle(t, app)
	if app.Config().ExitPolicy != config.ExitQuit {
		t.Errorf("policy = %q after bad reload", app.Config().ExitPolicy)
	}

	s := app.Metrics().Snapshot()
	if s.Reloads != 2 || s.ReloadFailures != 1 {
		t.Errorf("reloads = %d, failures = %d", s.Reloads, s.ReloadFailures)
	}

	// The new exit key quits straight from the menu.
	if !press(t, app, "q") {
		t.Error("q did not quit after reload")
	}
}

func TestRunRequiresBackend(t *testing.T) {
	app, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer app.Stop()
	if err := app.Run(); !errors.Is(err, ErrNoBackend) {
		t.Fatalf("Run() = %v, want ErrNoBackend", err)
	}
}

func runAsync(app *Application) <-chan error {
	done := make(chan error, 1)
	go func() { done <- app.Run() }()
	return done
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

func waitRun(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
		return nil
	}
}

func TestRunWithKeys(t *testing.T) {
	app, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	nb := backend.NewNullBackend(40, 10)
	if err := app.SetBackend(nb); err != nil {
		t.Fatal(err)
	}
	done := runAsync(app)

	nb.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyEnter})
	waitFor(t, "editor", func() bool { return app.Active() == event.CharacterEditor })

	nb.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyEscape})
	waitFor(t, "menu", func() bool { return app.Active() == event.MainMenu })

	nb.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyEscape})
	if err := waitRun(t, done); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if nb.Shows() == 0 {
		t.Error("nothing was rendered")
	}
	if err := app.Run(); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Run() = %v, want ErrAlreadyRunning", err)
	}
	if err := app.SetBackend(nb); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("SetBackend after Run = %v", err)
	}
}

func TestRunStop(t *testing.T) {
	app, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	nb := backend.NewNullBackend(40, 10)
	_ = app.SetBackend(nb)
	done := runAsync(app)

	waitFor(t, "first render", func() bool { return nb.Shows() > 0 })
	app.Stop()
	app.Stop()
	if err := waitRun(t, done); err != nil {
		t.Fatalf("Run() = %v", err)
	}
}

func TestRunTerminalError(t *testing.T) {
	app, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	nb := backend.NewNullBackend(40, 10)
	_ = app.SetBackend(nb)
	done := runAsync(app)

	boom := errors.New("read failed")
	nb.PostEvent(backend.Event{Type: backend.EventError, Err: boom})

	err = waitRun(t, done)
	var te *TerminalError
	if !errors.As(err, &te) || !errors.Is(err, boom) {
		t.Fatalf("Run() = %v, want TerminalError wrapping %v", err, boom)
	}
}

func TestRunResizeRedraws(t *testing.T) {
	app, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	nb := backend.NewNullBackend(40, 10)
	_ = app.SetBackend(nb)
	done := runAsync(app)

	waitFor(t, "first render", func() bool { return nb.Shows() > 0 })
	nb.Resize(50, 12)
	waitFor(t, "redraw", func() bool { return app.Metrics().Snapshot().RenderCount >= 2 })

	app.Stop()
	if err := waitRun(t, done); err != nil {
		t.Fatalf("Run() = %v", err)
	}
}

type failingBackend struct {
	*backend.NullBackend
}

func (failingBackend) Init() error { return errors.New("no tty") }

func TestRunInitError(t *testing.T) {
	app, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer app.Stop()
	_ = app.SetBackend(failingBackend{backend.NewNullBackend(1, 1)})

	var ie *InitError
	if err := app.Run(); !errors.As(err, &ie) || ie.Component != "backend" {
		t.Fatalf("Run() = %v, want backend InitError", err)
	}
}

func TestConvertKeyEvent(t *testing.T) {
	tests := []struct {
		name string
		in   backend.Event
		want string
	}{
		{"rune", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'a'}, "a"},
		{"ctrl z", backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'z', Mod: backend.ModCtrl}, "<C-z>"},
		{"enter", backend.Event{Type: backend.EventKey, Key: backend.KeyEnter}, "Enter"},
		{"shift tab", backend.Event{Type: backend.EventKey, Key: backend.KeyTab, Mod: backend.ModShift}, "<S-Tab>"},
		{"f5", backend.Event{Type: backend.EventKey, Key: backend.KeyF5}, "F5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertKeyEvent(tt.in)
			want := key.MustParse(tt.want)
			if !got.Matches(want) || !got.IsPress() {
				t.Errorf("convertKeyEvent = %#v, want %#v", got, want)
			}
		})
	}
}

func TestInitErrorFormat(t *testing.T) {
	err := &InitError{Component: "backend", Err: errors.New("no tty")}
	if err.Error() != "init backend: no tty" {
		t.Errorf("Error() = %q", err.Error())
	}
	te := &TerminalError{Err: errors.New("eof")}
	if te.Error() != "terminal: eof" {
		t.Errorf("Error() = %q", te.Error())
	}
}
