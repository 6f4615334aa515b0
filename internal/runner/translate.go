package runner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/itsmostafa/minipy/internal/interp"
	"github.com/itsmostafa/minipy/internal/token"
)

// prelude defines the int32 helpers the translated program calls. get, set,
// print, step and fail are provided by the host.
const prelude = `"use strict";
function add(a, b) { return (a + b) | 0; }
function sub(a, b) { return (a - b) | 0; }
function mul(a, b) { return Math.imul(a, b); }
function div(a, b, line) { if (b === 0) { fail("division_by_zero", line); } return (a / b) | 0; }
function mod(a, b, line) { if (b === 0) { fail("modulo_by_zero", line); } return (a % b) | 0; }
function eq(a, b) { return a === b ? 1 : 0; }
function ne(a, b) { return a !== b ? 1 : 0; }
function gt(a, b) { return a > b ? 1 : 0; }
function ge(a, b) { return a >= b ? 1 : 0; }
function lt(a, b) { return a < b ? 1 : 0; }
function le(a, b) { return a <= b ? 1 : 0; }
`

var helpers = map[token.Kind]string{
	token.Plus:      "add",
	token.Minus:     "sub",
	token.Star:      "mul",
	token.Slash:     "div",
	token.Mod:       "mod",
	token.Equal:     "eq",
	token.NotEqual:  "ne",
	token.Greater:   "gt",
	token.GreaterEq: "ge",
	token.Less:      "lt",
	token.LessEq:    "le",
}

// Translate renders program as JavaScript with the same observable behaviour
// as the native engine. Blocks are recovered with the same indentation rules,
// statements the engine skips emit only their step, and fatal conditions are
// deferred to run time through fail so they fire only on executed paths.
// step is called once per dispatched line and once per while re-check, the
// same units the native engine counts against its step limit.
func Translate(program interp.Program) string {
	t := &translator{program: program}
	t.b.WriteString(prelude)
	for !t.atEnd() {
		t.statement()
	}
	return t.b.String()
}

type translator struct {
	program interp.Program
	pc      int
	depth   int
	b       strings.Builder
}

func (t *translator) statement() {
	line := t.program[t.pc]
	t.pc++

	// a well-formed while counts its steps in the loop condition
	if _, ok := line.Condition(); line.Statement() != interp.StmtWhile || !ok {
		t.emit("step(%d);", line.Number)
	}

	switch line.Statement() {
	case interp.StmtAssign:
		if name, expr, ok := line.Assignment(); ok {
			t.emit("set(%s, %s);", strconv.Quote(name), t.expr(line, expr))
		}
	case interp.StmtPrint:
		if expr, ok := line.PrintArgs(); ok {
			t.emit("print(%s);", t.expr(line, expr))
		}
	case interp.StmtIf:
		cond, ok := line.Condition()
		if !ok {
			return
		}
		t.emit("if (%s !== 0) {", t.expr(line, cond))
		t.block(line.Indent)
		if !t.atEnd() {
			next := t.program[t.pc]
			if next.Statement() == interp.StmtElse && next.Indent == line.Indent {
				t.pc++
				t.emit("} else {")
				t.block(next.Indent)
			}
		}
		t.emit("}")
	case interp.StmtWhile:
		cond, ok := line.Condition()
		if !ok {
			return
		}
		t.emit("while ((step(%d), %s) !== 0) {", line.Number, t.expr(line, cond))
		t.block(line.Indent)
		t.emit("}")
	case interp.StmtElse:
		for !t.atEnd() && t.program[t.pc].Indent > line.Indent {
			t.pc++
		}
	}
}

func (t *translator) block(base int) {
	t.depth++
	for !t.atEnd() && t.program[t.pc].Indent > base {
		t.statement()
	}
	t.depth--
}

// expr folds tokens left to right into nested helper calls. JavaScript
// evaluates call arguments left to right, so the first failing operand or
// operator fails first, as in the native evaluator.
func (t *translator) expr(line interp.Line, toks []token.Token) string {
	if len(toks) == 0 {
		return "0"
	}

	acc := t.operand(line, toks[0])
	for i := 1; i < len(toks); {
		op := toks[i]
		if !op.Kind.IsOperator() {
			i++
			continue
		}
		if i+1 >= len(toks) {
			return fmt.Sprintf("(%s, fail(%q, %d))", acc, "missing_operand", line.Number)
		}
		rhs := t.operand(line, toks[i+1])
		switch op.Kind {
		case token.Slash, token.Mod:
			acc = fmt.Sprintf("%s(%s, %s, %d)", helpers[op.Kind], acc, rhs, line.Number)
		default:
			acc = fmt.Sprintf("%s(%s, %s)", helpers[op.Kind], acc, rhs)
		}
		i += 2
	}
	return acc
}

func (t *translator) operand(line interp.Line, tok token.Token) string {
	switch tok.Kind {
	case token.Number:
		n, err := strconv.ParseInt(tok.Text, 10, 32)
		if err != nil {
			return fmt.Sprintf("fail(%q, %d)", "number_range", line.Number)
		}
		return strconv.FormatInt(n, 10)
	case token.Ident:
		return fmt.Sprintf("get(%s)", strconv.Quote(tok.Text))
	default:
		return fmt.Sprintf("fail(%q, %d)", "unexpected_token", line.Number)
	}
}

func (t *translator) emit(format string, args ...any) {
	t.b.WriteString(strings.Repeat("  ", t.depth))
	fmt.Fprintf(&t.b, format, args...)
	t.b.WriteByte('\n')
}

func (t *translator) atEnd() bool {
	return t.pc >= len(t.program)
}
