package command

import (
	"strconv"
	"strings"
)

// TokenKind distinguishes the token variants.
type TokenKind uint8

const (
	// TokenWord is a letter followed by letters, digits or underscores.
	TokenWord TokenKind = iota
	// TokenNumber is an optionally negative decimal that fits in an int8.
	TokenNumber
)

// String returns the kind name.
func (k TokenKind) String() string {
	switch k {
	case TokenWord:
		return "word"
	case TokenNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Token is a single lexeme of a command line.
type Token struct {
	Kind TokenKind

	// Text is set for TokenWord.
	Text string

	// Num is set for TokenNumber.
	Num int8
}

// Word returns a word token.
func Word(text string) Token {
	return Token{Kind: TokenWord, Text: text}
}

// Number returns a number token.
func Number(n int8) Token {
	return Token{Kind: TokenNumber, Num: n}
}

// IsWord reports whether the token is a word.
func (t Token) IsWord() bool { return t.Kind == TokenWord }

// IsNumber reports whether the token is a number.
func (t Token) IsNumber() bool { return t.Kind == TokenNumber }

// String returns the token as it would be typed.
func (t Token) String() string {
	if t.Kind == TokenNumber {
		return strconv.Itoa(int(t.Num))
	}
	return t.Text
}

// GoString returns the token in constructor form, e.g. Word("exit").
func (t Token) GoString() string {
	if t.Kind == TokenNumber {
		return "Number(" + strconv.Itoa(int(t.Num)) + ")"
	}
	return "Word(" + strconv.Quote(t.Text) + ")"
}

// Join returns the tokens as typed, separated by single spaces.
func Join(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

// Format returns the tokens in constructor form for diagnostics.
func Format(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.GoString()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Equal reports whether two token sequences are identical.
func Equal(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
