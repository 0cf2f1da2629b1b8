package view

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/dshills/tabletop/internal/command"
	"github.com/dshills/tabletop/internal/event"
	"github.com/dshills/tabletop/internal/input/key"
	"github.com/dshills/tabletop/internal/logging"
	"github.com/dshills/tabletop/internal/renderer"
	"github.com/dshills/tabletop/internal/renderer/core"
)

// Prompt precedes the input line.
const Prompt = "> "

// Editor is the character editor: a one-line command prompt under a panel
// listing the available commands.
type Editor struct {
	buf      []rune
	feedback string
	history  []string

	lexer   command.Lexer
	dropped []string
	table   *command.Table

	keys   Keymap
	sender event.Sender
	logger *logging.Logger
}

// NewEditor creates an editor that parses lines against table.
func NewEditor(sender event.Sender, table *command.Table, keys Keymap, logger *logging.Logger) *Editor {
	if logger == nil {
		logger = logging.Discard()
	}
	if table == nil {
		table = command.DefaultTable()
	}
	e := &Editor{
		table:  table,
		keys:   keys,
		sender: sender,
		logger: logger,
	}
	e.lexer.Overflow = func(lexeme string) {
		e.dropped = append(e.dropped, lexeme)
	}
	return e
}

// Input returns the text typed so far.
func (e *Editor) Input() string {
	return string(e.buf)
}

// Feedback returns the message shown above the prompt.
func (e *Editor) Feedback() string {
	return e.feedback
}

// History returns submitted lines, oldest first.
func (e *Editor) History() []string {
	return append([]string(nil), e.history...)
}

// SetKeymap replaces the undo and exit bindings.
func (e *Editor) SetKeymap(keys Keymap) {
	e.keys = keys
}

// SetTable replaces the command table used for parsing.
func (e *Editor) SetTable(t *command.Table) {
	if t != nil {
		e.table = t
	}
}

// HandleEvent edits the buffer, submits it, or restores the last line.
func (e *Editor) HandleEvent(ev event.Event) {
	switch ev.Kind {
	case event.KindInput:
		e.handleKey(ev.Key)
	case event.KindUndo:
		e.undo()
	}
}

func (e *Editor) handleKey(k key.Event) {
	if r, ok := printable(k); ok {
		e.buf = append(e.buf, r)
		return
	}

	switch {
	case k.MatchesAny(e.keys.Undo):
		e.send(event.Undo())
	case k.MatchesAny(e.keys.Exit):
		e.send(event.Exit())
	case k.Key == key.KeyBackspace:
		if n := len(e.buf); n > 0 {
			e.buf = e.buf[:n-1]
		}
	case k.Key == key.KeyEnter:
		e.submit()
	}
}

// printable returns the rune to append for k. Runes held with Ctrl, Alt or
// Meta are bindings, not text.
func printable(k key.Event) (rune, bool) {
	if !k.IsRune() || k.IsModified() {
		return 0, false
	}
	r := k.Rune
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' ' && !isASCIIPunct(r) {
		return 0, false
	}
	if k.Modifiers.HasShift() {
		r = unicode.ToUpper(r)
	}
	return r, true
}

func isASCIIPunct(r rune) bool {
	return r <= unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r))
}

func (e *Editor) submit() {
	line := string(e.buf)
	e.buf = e.buf[:0]
	e.dropped = e.dropped[:0]

	tokens, ev, err := e.table.ParseLine(&e.lexer, line)

	var lexErr *command.LexError
	switch {
	case errors.As(err, &lexErr):
		e.feedback = lexErr.Error()
		return
	case err != nil:
		e.logger.Warn("parse %q: %v", line, err)
		e.feedback = e.withDropped(err.Error())
		return
	}

	e.logger.Info("tokens: %s", command.Format(tokens))
	if ev.Kind != event.KindUndo {
		e.history = append(e.history, line)
	}
	e.feedback = e.withDropped("")
	e.send(ev)
}

// withDropped appends a note about out-of-range numbers to msg.
func (e *Editor) withDropped(msg string) string {
	if len(e.dropped) == 0 {
		return msg
	}
	note := fmt.Sprintf("ignored out-of-range number(s): %s", strings.Join(e.dropped, ", "))
	if msg == "" {
		return note
	}
	return msg + "; " + note
}

func (e *Editor) undo() {
	n := len(e.history)
	if n == 0 {
		e.feedback = "nothing to undo"
		return
	}
	e.buf = []rune(e.history[n-1])
	e.history = e.history[:n-1]
	e.feedback = ""
}

func (e *Editor) send(ev event.Event) {
	if err := e.sender.Send(ev); err != nil {
		e.logger.Debug("drop %s: %v", ev, err)
	}
}

// Draw renders the command panel, the feedback line and the prompt.
func (e *Editor) Draw(f *renderer.Frame) {
	panel, input := f.Area().SplitBottom(1)

	inner := renderer.Block{
		Title:      " Character Editor ",
		TitleStyle: core.DefaultStyle().Bold(),
	}.Draw(f, panel)

	body, status := inner.Inset(0, 1, 0, 1).SplitBottom(1)

	_, rows := body.SplitTop(1)
	for _, c := range e.table.Commands() {
		if rows.IsEmpty() {
			break
		}
		var line core.ScreenRect
		line, rows = rows.SplitTop(1)
		renderer.Text{Content: usage(c), Style: core.DefaultStyle()}.Draw(f, line)
	}

	renderer.Text{
		Content: e.feedback,
		Style:   core.DefaultStyle().WithForeground(core.ColorYellow),
	}.Draw(f, status)

	col := renderer.Text{Content: Prompt, Style: core.DefaultStyle().Bold()}.Draw(f, input)
	col = renderer.Text{Content: string(e.buf), Style: core.DefaultStyle().Bold()}.Draw(f,
		core.ScreenRect{Top: input.Top, Left: col, Bottom: input.Bottom, Right: input.Right})
	if !input.IsEmpty() {
		f.SetCursor(min(col, input.Right-1), input.Top)
	}
}

// usage formats a command as "name <arg>  summary".
func usage(c command.Command) string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	for i := 0; i < c.Arity; i++ {
		sb.WriteString(" <arg>")
	}
	if c.Summary != "" {
		sb.WriteString("  ")
		sb.WriteString(c.Summary)
	}
	return sb.String()
}
