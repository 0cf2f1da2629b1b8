package command

import (
	"strconv"
	"unicode"
)

// Lexer splits command lines into tokens.
// The zero value is ready to use.
type Lexer struct {
	// Overflow, if set, is called with the lexeme of every number literal
	// that does not fit in an int8 and was therefore dropped.
	Overflow func(lexeme string)
}

// Lex tokenizes line with a zero Lexer.
func Lex(line string) ([]Token, error) {
	var l Lexer
	return l.Lex(line)
}

// Lex tokenizes line. Scanning stops at the first invalid character,
// which is returned as a *LexError.
func (l *Lexer) Lex(line string) ([]Token, error) {
	rs := []rune(line)
	tokens := []Token{}

	for i := 0; i < len(rs); {
		r := rs[i]

		switch {
		case unicode.IsSpace(r):
			i++
			continue

		case r == '-' && i+1 < len(rs) && isDigit(rs[i+1]):
			end := scanDigits(rs, i+1)
			if tok, ok := l.number(rs[i:end], rs[i+1:end], true); ok {
				tokens = append(tokens, tok)
			}
			i = end

		case isDigit(r):
			end := scanDigits(rs, i)
			if tok, ok := l.number(rs[i:end], rs[i:end], false); ok {
				tokens = append(tokens, tok)
			}
			i = end

		case unicode.IsLetter(r):
			end := i + 1
			for end < len(rs) && isWordRune(rs[end]) {
				end++
			}
			tokens = append(tokens, Word(string(rs[i:end])))
			i = end

		default:
			return nil, &LexError{Char: r, Offset: i, Input: line}
		}

		// A token must be followed by whitespace or the end of the line.
		if i < len(rs) && !unicode.IsSpace(rs[i]) {
			return nil, &LexError{Char: rs[i], Offset: i, Input: line}
		}
	}

	return tokens, nil
}

// number parses the magnitude digits as an int8 and applies the sign.
// The magnitude must fit before negation, so -128 is an overflow.
func (l *Lexer) number(lexeme, digits []rune, negative bool) (Token, bool) {
	n, err := strconv.ParseInt(string(digits), 10, 8)
	if err != nil {
		if l.Overflow != nil {
			l.Overflow(string(lexeme))
		}
		return Token{}, false
	}
	if negative {
		n = -n
	}
	return Number(int8(n)), true
}

func scanDigits(rs []rune, i int) int {
	for i < len(rs) && isDigit(rs[i]) {
		i++
	}
	return i
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
