package command

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dshills/tabletop/internal/event"
)

// Builder constructs the event for a command from exactly Arity arguments.
// A returned error is reported as an InvalidArgument parse error unless it
// already is a *ParseError.
type Builder func(args []Token) (event.Event, error)

// Command is an entry in a Table.
type Command struct {
	// Name is the command word; matched case-insensitively.
	Name string

	// Arity is the exact number of argument tokens.
	Arity int

	// Summary is a short help line.
	Summary string

	// Build produces the event.
	Build Builder
}

// Table maps command words to commands.
type Table struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{commands: make(map[string]Command)}
}

// DefaultTable returns a new table holding the built-in commands.
func DefaultTable() *Table {
	t := NewTable()
	for _, c := range builtins() {
		if err := t.Register(c); err != nil {
			panic(err)
		}
	}
	return t
}

func builtins() []Command {
	return []Command{
		{
			Name:    "exit",
			Summary: "leave the editor",
			Build: func([]Token) (event.Event, error) {
				return event.Exit(), nil
			},
		},
		{
			Name:    "undo",
			Summary: "restore the last submitted line",
			Build: func([]Token) (event.Event, error) {
				return event.Undo(), nil
			},
		},
		{
			Name:    "view",
			Arity:   1,
			Summary: "switch to a view (menu, editor, tracker)",
			Build:   buildView,
		},
	}
}

func buildView(args []Token) (event.Event, error) {
	arg := args[0]
	if !arg.IsWord() {
		return event.Event{}, fmt.Errorf("expected a view name, got number %d", arg.Num)
	}
	v, ok := event.ParseViewID(arg.Text)
	if !ok {
		return event.Event{}, fmt.Errorf("unknown view %q", arg.Text)
	}
	return event.ChangeView(v), nil
}

// Register adds a command. The name must be a valid word token and must not
// already be registered.
func (t *Table) Register(c Command) error {
	if err := validate(c); err != nil {
		return err
	}
	key := strings.ToLower(c.Name)

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.commands[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCommand, c.Name)
	}
	c.Name = key
	t.commands[key] = c
	return nil
}

func validate(c Command) error {
	if c.Build == nil {
		return fmt.Errorf("%w: %q has no builder", ErrInvalidCommand, c.Name)
	}
	if c.Arity < 0 {
		return fmt.Errorf("%w: %q has negative arity", ErrInvalidCommand, c.Name)
	}
	toks, err := Lex(c.Name)
	if err != nil || len(toks) != 1 || !toks[0].IsWord() || toks[0].Text != c.Name {
		return fmt.Errorf("%w: name %q is not a single word", ErrInvalidCommand, c.Name)
	}
	return nil
}

// Alias registers name as a shorthand for target with leading arguments
// fixed. The alias takes the target's remaining arguments.
func (t *Table) Alias(name, target string, fixed ...Token) error {
	tc, ok := t.Lookup(target)
	if !ok {
		return fmt.Errorf("%w: alias %q targets %q", ErrUnknownCommand, name, target)
	}
	if len(fixed) > tc.Arity {
		return fmt.Errorf("%w: alias %q fixes %d argument(s), %q takes %d",
			ErrInvalidCommand, name, len(fixed), tc.Name, tc.Arity)
	}

	fixed = append([]Token(nil), fixed...)
	summary := "alias for " + tc.Name
	if len(fixed) > 0 {
		summary += " " + Join(fixed)
	}

	return t.Register(Command{
		Name:    name,
		Arity:   tc.Arity - len(fixed),
		Summary: summary,
		Build: func(args []Token) (event.Event, error) {
			all := make([]Token, 0, len(fixed)+len(args))
			all = append(all, fixed...)
			all = append(all, args...)
			return tc.Build(all)
		},
	})
}

// Lookup finds a command by name, case-insensitively.
func (t *Table) Lookup(name string) (Command, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.commands[strings.ToLower(name)]
	return c, ok
}

// Commands returns all commands sorted by name.
func (t *Table) Commands() []Command {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cmds := make([]Command, 0, len(t.commands))
	for _, c := range t.commands {
		cmds = append(cmds, c)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name < cmds[j].Name
	})
	return cmds
}

// Len returns the number of registered commands.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.commands)
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	t.mu.RLock()
	defer t.mu.RUnlock()

	c := NewTable()
	for k, v := range t.commands {
		c.commands[k] = v
	}
	return c
}
