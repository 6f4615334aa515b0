package interp

import (
	"strconv"

	"github.com/itsmostafa/minipy/internal/token"
)

// Eval folds expr strictly left to right into one int32 using the bindings
// in env. There is no precedence and no grouping: `a < b < c` is
// `(a < b) < c`. Tokens in operator position that are not operators are
// skipped. An empty expression evaluates to 0.
func Eval(expr []token.Token, env *Env) (int32, error) {
	if len(expr) == 0 {
		return 0, nil
	}

	value, err := operand(expr[0], env)
	if err != nil {
		return 0, err
	}

	for i := 1; i < len(expr); {
		op := expr[i]
		if !op.Kind.IsOperator() {
			i++
			continue
		}
		if i+1 >= len(expr) {
			return 0, newError(ErrMissingOperand, op.Text)
		}
		rhs, err := operand(expr[i+1], env)
		if err != nil {
			return 0, err
		}
		value, err = apply(op.Kind, value, rhs)
		if err != nil {
			return 0, err
		}
		i += 2
	}

	return value, nil
}

// operand resolves a number literal or a variable reference.
func operand(tok token.Token, env *Env) (int32, error) {
	switch tok.Kind {
	case token.Number:
		n, err := strconv.ParseInt(tok.Text, 10, 32)
		if err != nil {
			return 0, newError(ErrNumberRange, tok.Text)
		}
		return int32(n), nil
	case token.Ident:
		return env.Get(tok.Text), nil
	default:
		return 0, newError(ErrUnexpectedToken, tok.String())
	}
}

// apply computes lhs op rhs with 32-bit wraparound. Comparisons yield 1 or 0.
func apply(op token.Kind, lhs, rhs int32) (int32, error) {
	switch op {
	case token.Plus:
		return lhs + rhs, nil
	case token.Minus:
		return lhs - rhs, nil
	case token.Star:
		return lhs * rhs, nil
	case token.Slash:
		if rhs == 0 {
			return 0, newError(ErrDivisionByZero, "")
		}
		return lhs / rhs, nil
	case token.Mod:
		if rhs == 0 {
			return 0, newError(ErrModuloByZero, "")
		}
		return lhs % rhs, nil
	case token.Equal:
		return truth(lhs == rhs), nil
	case token.NotEqual:
		return truth(lhs != rhs), nil
	case token.Greater:
		return truth(lhs > rhs), nil
	case token.GreaterEq:
		return truth(lhs >= rhs), nil
	case token.Less:
		return truth(lhs < rhs), nil
	case token.LessEq:
		return truth(lhs <= rhs), nil
	}
	return lhs, nil
}

func truth(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
