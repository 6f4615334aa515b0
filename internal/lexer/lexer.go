// Package lexer turns minipy source text into a flat token stream.
package lexer

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/itsmostafa/minipy/internal/token"
)

// ErrUnexpectedChar is returned when the source contains a character that
// starts no token.
var ErrUnexpectedChar = errors.New("unexpected character")

// Error reports a tokenization failure at a source line.
type Error struct {
	Char rune
	Line int
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, ErrUnexpectedChar, e.Char)
}

func (e *Error) Unwrap() error {
	return ErrUnexpectedChar
}

// Scanner walks source text one byte at a time.
type Scanner struct {
	source string
	cursor int
	line   int
	tokens []token.Token
}

// NewScanner creates a scanner over source.
func NewScanner(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

// Tokenize scans source and returns its tokens terminated by an EOF token.
func Tokenize(source string) ([]token.Token, error) {
	return NewScanner(source).Scan()
}

// Scan consumes the whole source. The returned slice always ends with EOF
// unless an error is returned.
func (s *Scanner) Scan() ([]token.Token, error) {
	for !s.atEnd() {
		ch := s.advance()
		switch ch {
		case '+':
			s.emit(token.Plus, "+")
		case '-':
			s.emit(token.Minus, "-")
		case '*':
			s.emit(token.Star, "*")
		case '/':
			s.emit(token.Slash, "/")
		case '%':
			s.emit(token.Mod, "%")
		case '(':
			s.emit(token.LParen, "(")
		case ')':
			s.emit(token.RParen, ")")
		case ':':
			s.emit(token.Colon, ":")
		case '=':
			if s.match('=') {
				s.emit(token.Equal, "==")
			} else {
				s.emit(token.Assign, "=")
			}
		case '!':
			// a bare '!' produces nothing
			if s.match('=') {
				s.emit(token.NotEqual, "!=")
			}
		case '>':
			if s.match('=') {
				s.emit(token.GreaterEq, ">=")
			} else {
				s.emit(token.Greater, ">")
			}
		case '<':
			if s.match('=') {
				s.emit(token.LessEq, "<=")
			} else {
				s.emit(token.Less, "<")
			}
		case '#':
			for !s.atEnd() && s.peek() != '\n' {
				s.cursor++
			}
		case '\n':
			s.emit(token.Newline, "\\n")
			s.line++
		case ' ', '\r', '\t':
		default:
			switch {
			case isDigit(ch):
				s.scanNumber()
			case isAlpha(ch):
				s.scanIdentifier()
			default:
				r, _ := utf8.DecodeRuneInString(s.source[s.cursor-1:])
				return nil, &Error{Char: r, Line: s.line}
			}
		}
	}

	s.emit(token.EOF, "")
	return s.tokens, nil
}

func (s *Scanner) scanNumber() {
	start := s.cursor - 1
	for !s.atEnd() && isDigit(s.peek()) {
		s.cursor++
	}
	s.emit(token.Number, s.source[start:s.cursor])
}

func (s *Scanner) scanIdentifier() {
	start := s.cursor - 1
	for !s.atEnd() && (isAlpha(s.peek()) || isDigit(s.peek())) {
		s.cursor++
	}
	text := s.source[start:s.cursor]
	s.emit(token.Lookup(text), text)
}

func (s *Scanner) emit(kind token.Kind, text string) {
	s.tokens = append(s.tokens, token.Token{Kind: kind, Text: text, Line: s.line})
}

func (s *Scanner) atEnd() bool {
	return s.cursor >= len(s.source)
}

func (s *Scanner) advance() byte {
	ch := s.source[s.cursor]
	s.cursor++
	return ch
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.cursor]
}

func (s *Scanner) match(expected byte) bool {
	if s.atEnd() || s.source[s.cursor] != expected {
		return false
	}
	s.cursor++
	return true
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}
