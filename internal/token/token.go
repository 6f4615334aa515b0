// Package token defines the lexical units shared by the lexer and the interpreter.
package token

import "fmt"

// Kind identifies the type of a token.
type Kind uint8

const (
	// Arithmetic operators
	Plus Kind = iota
	Minus
	Star
	Slash
	Mod

	// Punctuation
	LParen
	RParen
	Assign
	Colon

	// Comparison operators
	Greater
	GreaterEq
	Less
	LessEq
	Equal
	NotEqual

	// Literals
	Ident
	Number

	// Keywords
	If
	Else
	While
	Print

	// Control markers
	Newline
	EOF
)

var kindNames = [...]string{
	Plus:      "+",
	Minus:     "-",
	Star:      "*",
	Slash:     "/",
	Mod:       "%",
	LParen:    "(",
	RParen:    ")",
	Assign:    "=",
	Colon:     ":",
	Greater:   ">",
	GreaterEq: ">=",
	Less:      "<",
	LessEq:    "<=",
	Equal:     "==",
	NotEqual:  "!=",
	Ident:     "IDENT",
	Number:    "NUMBER",
	If:        "if",
	Else:      "else",
	While:     "while",
	Print:     "print",
	Newline:   "NEWLINE",
	EOF:       "EOF",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsOperator reports whether k is an arithmetic or comparison operator.
func (k Kind) IsOperator() bool {
	switch k {
	case Plus, Minus, Star, Slash, Mod,
		Equal, NotEqual, Greater, GreaterEq, Less, LessEq:
		return true
	default:
		return false
	}
}

var keywords = map[string]Kind{
	"if":    If,
	"else":  Else,
	"while": While,
	"print": Print,
}

// Lookup maps an identifier to its keyword kind, or Ident when it is not a keyword.
func Lookup(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Ident
}

// Token is an immutable lexeme. Line is the 1-based source line and is only
// used for diagnostics.
type Token struct {
	Kind Kind
	Text string
	Line int
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %s)", t.Kind, t.Text)
}
