package command

import (
	"errors"

	"github.com/dshills/tabletop/internal/event"
)

var builtinTable = DefaultTable()

// Parse parses tokens against the built-in commands.
func Parse(tokens []Token) (event.Event, error) {
	return builtinTable.Parse(tokens)
}

// Parse maps a token sequence to the event of the command it names.
// Failures are returned as *ParseError.
func (t *Table) Parse(tokens []Token) (event.Event, error) {
	if len(tokens) == 0 {
		return event.Event{}, &ParseError{Kind: NoTokens}
	}

	first := tokens[0]
	if first.IsNumber() {
		return event.Event{}, &ParseError{Kind: FirstTokenIsNumber, Number: first.Num}
	}

	cmd, ok := t.Lookup(first.Text)
	if !ok {
		return event.Event{}, &ParseError{
			Kind:        UnknownCommand,
			Command:     first.Text,
			Suggestions: t.Suggest(first.Text, DefaultSuggestions),
		}
	}

	args := tokens[1:]
	switch {
	case len(args) > cmd.Arity:
		return event.Event{}, &ParseError{
			Kind:    ExtraneousArguments,
			Command: first.Text,
			Tokens:  append([]Token(nil), args[cmd.Arity:]...),
		}
	case len(args) < cmd.Arity:
		return event.Event{}, &ParseError{
			Kind:    MissingArguments,
			Command: first.Text,
			Want:    cmd.Arity,
			Got:     len(args),
		}
	}

	ev, err := cmd.Build(args)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return event.Event{}, pe
		}
		return event.Event{}, &ParseError{
			Kind:    InvalidArgument,
			Command: first.Text,
			Tokens:  append([]Token(nil), args...),
			Err:     err,
		}
	}
	return ev, nil
}

// ParseLine lexes and parses a line with the lexer l.
func (t *Table) ParseLine(l *Lexer, line string) ([]Token, event.Event, error) {
	tokens, err := l.Lex(line)
	if err != nil {
		return nil, event.Event{}, err
	}
	ev, err := t.Parse(tokens)
	return tokens, ev, err
}
