package interp

import "github.com/itsmostafa/minipy/internal/token"

// Statement classifies a logical line by its leading token.
type Statement uint8

const (
	StmtEmpty Statement = iota
	StmtAssign
	StmtPrint
	StmtIf
	StmtWhile
	StmtElse
	StmtOther
)

var statementNames = [...]string{
	StmtEmpty:  "empty",
	StmtAssign: "assign",
	StmtPrint:  "print",
	StmtIf:     "if",
	StmtWhile:  "while",
	StmtElse:   "else",
	StmtOther:  "other",
}

func (s Statement) String() string {
	if int(s) < len(statementNames) {
		return statementNames[s]
	}
	return "unknown"
}

// Statement returns the dispatch kind of l.
func (l Line) Statement() Statement {
	if len(l.Tokens) == 0 {
		return StmtEmpty
	}
	switch l.Tokens[0].Kind {
	case token.Ident:
		return StmtAssign
	case token.Print:
		return StmtPrint
	case token.If:
		return StmtIf
	case token.While:
		return StmtWhile
	case token.Else:
		return StmtElse
	default:
		return StmtOther
	}
}

// Assignment decodes `name = expr`. ok is false for a malformed assignment,
// which the engine skips.
func (l Line) Assignment() (name string, expr []token.Token, ok bool) {
	if len(l.Tokens) < 3 || l.Tokens[1].Kind != token.Assign {
		return "", nil, false
	}
	return l.Tokens[0].Text, l.Tokens[2:], true
}

// PrintArgs returns the expression of a print line with one optional leading
// '(' and one optional trailing ')' removed. ok is false when nothing remains.
func (l Line) PrintArgs() (expr []token.Token, ok bool) {
	if len(l.Tokens) < 2 {
		return nil, false
	}
	start, end := 1, len(l.Tokens)
	if l.Tokens[start].Kind == token.LParen {
		start++
	}
	if l.Tokens[end-1].Kind == token.RParen {
		end--
	}
	if start >= end {
		return nil, false
	}
	return l.Tokens[start:end], true
}

// Condition returns the tokens between the keyword and the first ':'. ok is
// false when the line has no ':'.
func (l Line) Condition() (expr []token.Token, ok bool) {
	for i, tok := range l.Tokens {
		if tok.Kind == token.Colon {
			return l.Tokens[1:i], true
		}
	}
	return nil, false
}
