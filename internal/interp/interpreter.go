// Package interp executes minipy programs: it segments a token stream into
// indentation-tagged logical lines and runs them with a program counter over
// a flat global variable table.
//
// Block membership is never stored. A block owned by a line at indentation d
// is the run of immediately following lines indented deeper than d, and is
// recomputed every time an if, else or while is dispatched.
package interp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/itsmostafa/minipy/internal/token"
)

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithOutput sets the writer that receives print output. Nil keeps the
// default, which discards output.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) {
		if w != nil {
			in.out = w
		}
	}
}

// WithEnv shares an existing variable table, letting several programs run
// against the same bindings. Nil keeps a fresh table.
func WithEnv(env *Env) Option {
	return func(in *Interpreter) {
		if env != nil {
			in.env = env
		}
	}
}

// WithLogger sets the logger used for execution tracing. Nil keeps the
// default, which discards traces.
func WithLogger(logger *log.Logger) Option {
	return func(in *Interpreter) {
		if logger != nil {
			in.logger = logger
		}
	}
}

// WithMaxSteps stops the run with ErrStepLimit after n dispatched lines and
// loop re-checks. Zero means unlimited.
func WithMaxSteps(n int) Option {
	return func(in *Interpreter) {
		in.maxSteps = n
	}
}

// Interpreter runs one Program. It is not safe for concurrent use.
type Interpreter struct {
	program  Program
	pc       int
	env      *Env
	out      io.Writer
	logger   *log.Logger
	maxSteps int
	steps    int
}

// New creates an interpreter for program.
func New(program Program, opts ...Option) *Interpreter {
	in := &Interpreter{
		program: program,
		env:     NewEnv(),
		out:     io.Discard,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Env returns the interpreter's variable table.
func (in *Interpreter) Env() *Env {
	return in.env
}

// Run dispatches lines until the program counter passes the last line or a
// fatal error occurs. Output already written stays written.
func (in *Interpreter) Run(ctx context.Context) error {
	in.pc = 0
	in.steps = 0

	logger := in.logger
	in.logger = logger.With("run", uuid.NewString())
	defer func() { in.logger = logger }()

	in.logger.Debug("run started", "lines", len(in.program))
	for !in.atEnd() {
		if err := in.dispatch(ctx); err != nil {
			in.logger.Debug("run failed", "err", err)
			return err
		}
	}
	in.logger.Debug("run finished", "steps", in.steps, "vars", in.env.Len())
	return nil
}

func (in *Interpreter) dispatch(ctx context.Context) error {
	line := in.current()
	if err := in.tick(ctx, line); err != nil {
		return err
	}

	stmt := line.Statement()
	in.logger.Debug("exec", "pc", in.pc, "line", line.Number, "indent", line.Indent, "stmt", stmt)

	switch stmt {
	case StmtAssign:
		return in.execAssign(line)
	case StmtPrint:
		return in.execPrint(line)
	case StmtIf:
		return in.execIf(ctx, line)
	case StmtWhile:
		return in.execWhile(ctx, line)
	case StmtElse:
		// an else not claimed by an if: drop it and its block
		in.advance()
		in.skipBlock(line.Indent)
		return nil
	case StmtEmpty, StmtOther:
		in.advance()
		return nil
	}
	return fmt.Errorf("unhandled statement kind %v", stmt)
}

func (in *Interpreter) execAssign(line Line) error {
	name, expr, ok := line.Assignment()
	if !ok {
		in.advance()
		return nil
	}
	v, err := in.eval(line, expr)
	if err != nil {
		return err
	}
	in.env.Set(name, v)
	in.advance()
	return nil
}

func (in *Interpreter) execPrint(line Line) error {
	expr, ok := line.PrintArgs()
	if !ok {
		in.advance()
		return nil
	}
	v, err := in.eval(line, expr)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(in.out, strconv.FormatInt(int64(v), 10)+"\n"); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	in.advance()
	return nil
}

func (in *Interpreter) execIf(ctx context.Context, line Line) error {
	cond, ok := line.Condition()
	if !ok {
		in.advance()
		return nil
	}
	v, err := in.eval(line, cond)
	if err != nil {
		return err
	}
	in.advance()

	taken := v != 0
	if taken {
		if err := in.executeBlock(ctx, line.Indent); err != nil {
			return err
		}
	} else {
		in.skipBlock(line.Indent)
	}

	if in.atEnd() {
		return nil
	}
	next := in.current()
	if next.Statement() != StmtElse || next.Indent != line.Indent {
		return nil
	}

	in.advance()
	if taken {
		in.skipBlock(next.Indent)
		return nil
	}
	return in.executeBlock(ctx, next.Indent)
}

func (in *Interpreter) execWhile(ctx context.Context, line Line) error {
	cond, ok := line.Condition()
	if !ok {
		in.advance()
		return nil
	}
	start := in.pc
	v, err := in.eval(line, cond)
	if err != nil {
		return err
	}
	in.advance()

	for v != 0 {
		if err := in.executeBlock(ctx, line.Indent); err != nil {
			return err
		}

		in.pc = start
		head := in.current()
		if err := in.tick(ctx, head); err != nil {
			return err
		}
		cond, _ = head.Condition()
		if v, err = in.eval(head, cond); err != nil {
			return err
		}
		in.advance()
	}

	in.skipBlock(line.Indent)
	return nil
}

// executeBlock dispatches lines indented deeper than base and stops, without
// consuming, at the first line that is not.
func (in *Interpreter) executeBlock(ctx context.Context, base int) error {
	for !in.atEnd() && in.current().Indent > base {
		if err := in.dispatch(ctx); err != nil {
			return err
		}
	}
	return nil
}

// skipBlock walks the same lines as executeBlock without running them.
func (in *Interpreter) skipBlock(base int) {
	for !in.atEnd() && in.current().Indent > base {
		in.advance()
	}
}

func (in *Interpreter) eval(line Line, expr []token.Token) (int32, error) {
	v, err := Eval(expr, in.env)
	if err != nil {
		var rerr *RuntimeError
		if errors.As(err, &rerr) && rerr.Line == 0 {
			rerr.Line = line.Number
		}
		return 0, err
	}
	return v, nil
}

// tick enforces the host guards before each unit of work.
func (in *Interpreter) tick(ctx context.Context, line Line) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w at line %d: %w", ErrCancelled, line.Number, err)
	}
	in.steps++
	if in.maxSteps > 0 && in.steps > in.maxSteps {
		return &RuntimeError{Err: ErrStepLimit, Line: line.Number, Detail: strconv.Itoa(in.maxSteps)}
	}
	return nil
}

func (in *Interpreter) atEnd() bool {
	return in.pc >= len(in.program)
}

func (in *Interpreter) current() Line {
	return in.program[in.pc]
}

func (in *Interpreter) advance() {
	in.pc++
}
