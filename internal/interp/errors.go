package interp

import (
	"errors"
	"fmt"
)

// Fatal error kinds. Statements that are merely malformed are skipped and
// never produce one of these.
var (
	ErrUnexpectedToken = errors.New("unexpected token in expression")
	ErrMissingOperand  = errors.New("operator at end with no operand")
	ErrDivisionByZero  = errors.New("division by zero")
	ErrModuloByZero    = errors.New("modulo by zero")
	ErrNumberRange     = errors.New("number out of range")
	ErrCancelled       = errors.New("run cancelled")
	ErrStepLimit       = errors.New("step limit exceeded")
)

// RuntimeError is a fatal error raised while executing a logical line.
type RuntimeError struct {
	Err    error
	Line   int
	Detail string
}

func (e *RuntimeError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// Is makes modulo by zero match ErrDivisionByZero so callers can test for
// the whole zero-divisor class with a single check.
func (e *RuntimeError) Is(target error) bool {
	return target == ErrDivisionByZero && e.Err == ErrModuloByZero
}

func newError(err error, detail string) *RuntimeError {
	return &RuntimeError{Err: err, Detail: detail}
}

// Kind returns the sentinel that classifies err, or nil when err carries none.
func Kind(err error) error {
	for _, sentinel := range []error{
		ErrUnexpectedToken,
		ErrMissingOperand,
		ErrModuloByZero,
		ErrDivisionByZero,
		ErrNumberRange,
		ErrCancelled,
		ErrStepLimit,
	} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return nil
}
