package interp

import (
	"strings"

	"github.com/itsmostafa/minipy/internal/token"
)

// Line is a logical line: the tokens of one physical line, without its
// NEWLINE, tagged with the line's leading-space count.
type Line struct {
	Tokens []token.Token
	Indent int
	// Number is the 1-based physical line, used only in error messages.
	Number int
}

// Program is the flat sequence of logical lines addressed by the program
// counter. Block structure is derived from Indent at dispatch time.
type Program []Line

// Segment groups tokens into logical lines, reading indentation from the
// physical lines of source. It never fails.
func Segment(tokens []token.Token, source string) Program {
	physical := strings.Split(source, "\n")
	indents := make([]int, len(physical))
	for i, line := range physical {
		indents[i] = leadingSpaces(line)
	}

	indentAt := func(i int) int {
		if i < len(indents) {
			return indents[i]
		}
		return 0
	}

	var (
		program Program
		current []token.Token
		index   int
	)

	flush := func() {
		program = append(program, Line{Tokens: current, Indent: indentAt(index), Number: index + 1})
		current = nil
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case token.Newline:
			flush()
			index++
		case token.EOF:
			if len(current) > 0 {
				flush()
			}
		default:
			current = append(current, tok)
		}
	}

	// stream without a trailing EOF
	if len(current) > 0 {
		flush()
	}

	return program
}

// leadingSpaces counts the spaces before the first other character. Tabs
// stop the count.
func leadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}
