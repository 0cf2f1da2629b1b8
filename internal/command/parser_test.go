package command

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/tabletop/internal/event"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		want   event.Event
	}{
		{"exit", []Token{Word("exit")}, event.Exit()},
		{"exit mixed case", []Token{Word("Exit")}, event.Exit()},
		{"exit upper", []Token{Word("EXIT")}, event.Exit()},
		{"undo", []Token{Word("undo")}, event.Undo()},
		{"view tracker", []Token{Word("view"), Word("tracker")}, event.ChangeView(event.CombatTracker)},
		{"view menu", []Token{Word("VIEW"), Word("Menu")}, event.ChangeView(event.MainMenu)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.tokens)
			if err != nil {
				t.Fatalf("Parse(%s) error = %v", Format(tt.tokens), err)
			}
			if got.Kind != tt.want.Kind || got.View != tt.want.View {
				t.Errorf("Parse(%s) = %v, want %v", Format(tt.tokens), got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []Token
		kind     ParseErrorKind
		sentinel error
		check    func(t *testing.T, pe *ParseError)
	}{
		{
			name:     "no tokens",
			tokens:   []Token{},
			kind:     NoTokens,
			sentinel: ErrNoTokens,
		},
		{
			name:     "first token is number",
			tokens:   []Token{Number(3)},
			kind:     FirstTokenIsNumber,
			sentinel: ErrFirstTokenIsNumber,
			check: func(t *testing.T, pe *ParseError) {
				if pe.Number != 3 {
					t.Errorf("Number = %d, want 3", pe.Number)
				}
			},
		},
		{
			name:     "unknown command",
			tokens:   []Token{Word("dance")},
			kind:     UnknownCommand,
			sentinel: ErrUnknownCommand,
			check: func(t *testing.T, pe *ParseError) {
				if pe.Command != "dance" {
					t.Errorf("Command = %q, want dance", pe.Command)
				}
			},
		},
		{
			name:     "exit with argument",
			tokens:   []Token{Word("exit"), Word("now")},
			kind:     ExtraneousArguments,
			sentinel: ErrExtraneousArguments,
			check: func(t *testing.T, pe *ParseError) {
				if want := []Token{Word("now")}; !Equal(pe.Tokens, want) {
					t.Errorf("Tokens = %s, want %s", Format(pe.Tokens), Format(want))
				}
			},
		},
		{
			name:     "view with two arguments",
			tokens:   []Token{Word("view"), Word("menu"), Number(2)},
			kind:     ExtraneousArguments,
			sentinel: ErrExtraneousArguments,
			check: func(t *testing.T, pe *ParseError) {
				if want := []Token{Number(2)}; !Equal(pe.Tokens, want) {
					t.Errorf("Tokens = %s, want %s", Format(pe.Tokens), Format(want))
				}
			},
		},
		{
			name:     "view without argument",
			tokens:   []Token{Word("view")},
			kind:     MissingArguments,
			sentinel: ErrMissingArguments,
			check: func(t *testing.T, pe *ParseError) {
				if pe.Want != 1 || pe.Got != 0 {
					t.Errorf("Want/Got = %d/%d, want 1/0", pe.Want, pe.Got)
				}
			},
		},
		{
			name:     "view unknown name",
			tokens:   []Token{Word("view"), Word("nowhere")},
			kind:     InvalidArgument,
			sentinel: ErrInvalidArgument,
			check: func(t *testing.T, pe *ParseError) {
				if pe.Err == nil || !strings.Contains(pe.Err.Error(), "nowhere") {
					t.Errorf("Err = %v, want mention of nowhere", pe.Err)
				}
			},
		},
		{
			name:     "view number",
			tokens:   []Token{Word("view"), Number(1)},
			kind:     InvalidArgument,
			sentinel: ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.tokens)
			if err == nil {
				t.Fatalf("Parse(%s) succeeded, want error", Format(tt.tokens))
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error type = %T, want *ParseError", err)
			}
			if pe.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", pe.Kind, tt.kind)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(err, %v) = false", tt.sentinel)
			}
			if pe.Error() == "" {
				t.Error("empty error message")
			}
			if tt.check != nil {
				tt.check(t, pe)
			}
		})
	}
}

func TestParse_NilTokens(t *testing.T) {
	_, err := Parse(nil)
	if !errors.Is(err, ErrNoTokens) {
		t.Errorf("Parse(nil) error = %v, want ErrNoTokens", err)
	}
}

func TestParseLine(t *testing.T) {
	tbl := DefaultTable()
	var l Lexer

	toks, ev, err := tbl.ParseLine(&l, "  view   editor ")
	if err != nil {
		t.Fatalf("ParseLine error = %v", err)
	}
	if want := []Token{Word("view"), Word("editor")}; !Equal(toks, want) {
		t.Errorf("tokens = %s, want %s", Format(toks), Format(want))
	}
	if ev.Kind != event.KindChangeView || ev.View != event.CharacterEditor {
		t.Errorf("event = %v, want change_view(character_editor)", ev)
	}

	_, _, err = tbl.ParseLine(&l, "exit!")
	var le *LexError
	if !errors.As(err, &le) {
		t.Errorf("ParseLine(exit!) error = %v, want *LexError", err)
	}
}
