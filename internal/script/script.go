package script

import (
	"context"
	"errors"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/tabletop/internal/command"
	"github.com/dshills/tabletop/internal/logging"
)

// DefaultTimeout bounds how long a script may run.
const DefaultTimeout = 2 * time.Second

// Runner executes command scripts.
type Runner struct {
	timeout time.Duration
	logger  *logging.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout sets the execution time limit.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithLogger sets the logger that receives the script's log() output.
func WithLogger(l *logging.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner creates a Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		timeout: DefaultTimeout,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Apply runs the script at path against a copy of base and returns the
// extended table. base is never modified, so a failing script leaves the
// caller's table intact.
func (r *Runner) Apply(ctx context.Context, path string, base *command.Table) (*command.Table, error) {
	table := base.Clone()
	if err := r.run(ctx, path, table, func(L *lua.LState) error {
		return L.DoFile(path)
	}); err != nil {
		return nil, err
	}
	return table, nil
}

// ApplyString is Apply for source held in memory. name is used in errors.
func (r *Runner) ApplyString(ctx context.Context, name, source string, base *command.Table) (*command.Table, error) {
	table := base.Clone()
	if err := r.run(ctx, name, table, func(L *lua.LState) error {
		return L.DoString(source)
	}); err != nil {
		return nil, err
	}
	return table, nil
}

func (r *Runner) run(ctx context.Context, name string, table *command.Table, exec func(*lua.LState) error) (err error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibraries(L)
	r.install(L, table)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	L.SetContext(ctx)

	defer func() {
		if rec := recover(); rec != nil {
			err = &Error{Path: name, Err: fmt.Errorf("lua panic: %v", rec)}
		}
	}()

	if err := exec(L); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return &Error{Path: name, Err: ErrTimeout}
		}
		return &Error{Path: name, Err: err}
	}
	return nil
}

func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// Base opens these; scripts have no business loading other files.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

func (r *Runner) install(L *lua.LState, table *command.Table) {
	L.SetGlobal("alias", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		target := L.CheckString(2)

		var fixed []command.Token
		for i := 3; i <= L.GetTop(); i++ {
			fixed = append(fixed, toToken(L, i))
		}

		if err := table.Alias(name, target, fixed...); err != nil {
			L.RaiseError("alias %q: %s", name, err.Error())
			return 0
		}
		r.logger.Debug("alias %s -> %s %s", name, target, command.Join(fixed))
		return 0
	}))

	L.SetGlobal("log", L.NewFunction(func(L *lua.LState) int {
		r.logger.Info("%s", L.CheckString(1))
		return 0
	}))
}

// toToken converts argument n to a command token or raises an argument error.
func toToken(L *lua.LState, n int) command.Token {
	switch v := L.Get(n).(type) {
	case lua.LString:
		toks, err := command.Lex(string(v))
		if err != nil || len(toks) != 1 {
			L.ArgError(n, fmt.Sprintf("%q is not a single word or number", string(v)))
		}
		return toks[0]
	case lua.LNumber:
		f := float64(v)
		if f != float64(int64(f)) || f < -127 || f > 127 {
			L.ArgError(n, fmt.Sprintf("%v is not an integer in [-127, 127]", f))
		}
		return command.Number(int8(f))
	default:
		L.ArgError(n, "string or number expected, got "+v.Type().String())
	}
	return command.Token{}
}
