package command

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. A *ParseError matches the sentinel for its Kind with
// errors.Is.
var (
	// ErrNoTokens indicates an empty command line.
	ErrNoTokens = errors.New("command: no command given")

	// ErrFirstTokenIsNumber indicates the line started with a number.
	ErrFirstTokenIsNumber = errors.New("command: first token is a number")

	// ErrUnknownCommand indicates the command word is not in the table.
	ErrUnknownCommand = errors.New("command: unknown command")

	// ErrExtraneousArguments indicates more arguments than the command takes.
	ErrExtraneousArguments = errors.New("command: extraneous arguments")

	// ErrMissingArguments indicates fewer arguments than the command takes.
	ErrMissingArguments = errors.New("command: missing arguments")

	// ErrInvalidArgument indicates an argument was rejected by the command.
	ErrInvalidArgument = errors.New("command: invalid argument")

	// ErrInvalidCommand indicates a command definition is malformed.
	ErrInvalidCommand = errors.New("command: invalid command definition")

	// ErrDuplicateCommand indicates a command name is already registered.
	ErrDuplicateCommand = errors.New("command: duplicate command")
)

// LexError reports a character that cannot appear where it was found.
type LexError struct {
	// Char is the offending character.
	Char rune

	// Offset is the rune index of Char in Input.
	Offset int

	// Input is the full line being lexed.
	Input string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at column %d in %q", e.Char, e.Offset+1, e.Input)
}

// ParseErrorKind classifies parse failures.
type ParseErrorKind uint8

// Parse error kinds.
const (
	NoTokens ParseErrorKind = iota
	FirstTokenIsNumber
	UnknownCommand
	ExtraneousArguments
	MissingArguments
	InvalidArgument
)

var parseErrorKindNames = [...]string{
	NoTokens:            "no_tokens",
	FirstTokenIsNumber:  "first_token_is_number",
	UnknownCommand:      "unknown_command",
	ExtraneousArguments: "extraneous_arguments",
	MissingArguments:    "missing_arguments",
	InvalidArgument:     "invalid_argument",
}

func (k ParseErrorKind) String() string {
	if int(k) < len(parseErrorKindNames) {
		return parseErrorKindNames[k]
	}
	return fmt.Sprintf("ParseErrorKind(%d)", k)
}

func (k ParseErrorKind) sentinel() error {
	switch k {
	case NoTokens:
		return ErrNoTokens
	case FirstTokenIsNumber:
		return ErrFirstTokenIsNumber
	case UnknownCommand:
		return ErrUnknownCommand
	case ExtraneousArguments:
		return ErrExtraneousArguments
	case MissingArguments:
		return ErrMissingArguments
	case InvalidArgument:
		return ErrInvalidArgument
	default:
		return nil
	}
}

// ParseError reports a token sequence that does not form a valid command.
// Which fields are set depends on Kind.
type ParseError struct {
	Kind ParseErrorKind

	// Number is the leading number for FirstTokenIsNumber.
	Number int8

	// Command is the command word as typed.
	Command string

	// Tokens is the unconsumed tail for ExtraneousArguments and the
	// rejected argument for InvalidArgument.
	Tokens []Token

	// Want and Got are argument counts for MissingArguments.
	Want, Got int

	// Err is the underlying reason for InvalidArgument.
	Err error

	// Suggestions lists similar registered names for UnknownCommand.
	Suggestions []string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case NoTokens:
		return "no command given"
	case FirstTokenIsNumber:
		return fmt.Sprintf("expected a command, got number %d", e.Number)
	case UnknownCommand:
		if len(e.Suggestions) > 0 {
			return fmt.Sprintf("unknown command %q (did you mean %s?)", e.Command, strings.Join(e.Suggestions, ", "))
		}
		return fmt.Sprintf("unknown command %q", e.Command)
	case ExtraneousArguments:
		return fmt.Sprintf("%s: unexpected arguments: %s", e.Command, Join(e.Tokens))
	case MissingArguments:
		return fmt.Sprintf("%s: expected %d argument(s), got %d", e.Command, e.Want, e.Got)
	case InvalidArgument:
		if e.Err != nil {
			return fmt.Sprintf("%s: invalid argument: %v", e.Command, e.Err)
		}
		return fmt.Sprintf("%s: invalid argument", e.Command)
	default:
		return "parse error"
	}
}

// Unwrap returns the underlying error, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error for the error's Kind.
func (e *ParseError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}
