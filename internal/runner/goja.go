package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dop251/goja"

	"github.com/itsmostafa/minipy/internal/interp"
)

// failKinds maps the kinds raised by translated code to interp sentinels.
var failKinds = map[string]error{
	"unexpected_token": interp.ErrUnexpectedToken,
	"missing_operand":  interp.ErrMissingOperand,
	"division_by_zero": interp.ErrDivisionByZero,
	"modulo_by_zero":   interp.ErrModuloByZero,
	"number_range":     interp.ErrNumberRange,
}

// Goja runs the JavaScript translation of a program in a fresh goja runtime.
type Goja struct {
	opts Options
}

func (g *Goja) Name() string {
	return NameGoja
}

// Run compiles source, translates it and executes it. Context cancellation
// and the configured timeout interrupt the VM.
func (g *Goja) Run(ctx context.Context, source string, w io.Writer) error {
	program, err := interp.Compile(source)
	if err != nil {
		return err
	}
	script := Translate(program)
	logger := g.opts.Logger.With("engine", NameGoja)
	logger.Debug("translated program", "lines", len(program), "bytes", len(script))

	// Create a new goja runtime for each execution (isolation)
	vm := goja.New()

	runCtx, cancel := withTimeout(ctx, g.opts.Timeout)
	defer cancel()

	go func() {
		<-runCtx.Done()
		vm.Interrupt("execution timeout or cancelled")
	}()

	exec := &gojaExec{vm: vm, env: interp.NewEnv(), out: w, maxSteps: g.opts.MaxSteps}
	if err := exec.setupEnvironment(); err != nil {
		return fmt.Errorf("failed to setup environment: %w", err)
	}

	_, err = vm.RunString(script)
	if exec.err != nil {
		logger.Debug("run failed", "err", exec.err)
		return exec.err
	}
	if err != nil {
		var interrupted *goja.InterruptedError
		if errors.As(err, &interrupted) {
			return fmt.Errorf("%w: %w", interp.ErrCancelled, runCtx.Err())
		}
		return fmt.Errorf("execution error: %w", err)
	}

	logger.Debug("run finished", "steps", exec.steps, "vars", exec.env.Len())
	return nil
}

// gojaExec holds the host side of one goja run. err records the first fatal
// error raised from JavaScript so it can be returned unwrapped.
type gojaExec struct {
	vm       *goja.Runtime
	env      *interp.Env
	out      io.Writer
	err      error
	maxSteps int
	steps    int
}

func (e *gojaExec) setupEnvironment() error {
	get := func(call goja.FunctionCall) goja.Value {
		return e.vm.ToValue(e.env.Get(call.Argument(0).String()))
	}
	if err := e.vm.Set("get", get); err != nil {
		return fmt.Errorf("failed to set get: %w", err)
	}

	set := func(call goja.FunctionCall) goja.Value {
		e.env.Set(call.Argument(0).String(), int32(call.Argument(1).ToInteger()))
		return goja.Undefined()
	}
	if err := e.vm.Set("set", set); err != nil {
		return fmt.Errorf("failed to set set: %w", err)
	}

	printFn := func(call goja.FunctionCall) goja.Value {
		v := int32(call.Argument(0).ToInteger())
		if _, err := io.WriteString(e.out, strconv.FormatInt(int64(v), 10)+"\n"); err != nil {
			e.abort(fmt.Errorf("write output: %w", err))
		}
		return goja.Undefined()
	}
	if err := e.vm.Set("print", printFn); err != nil {
		return fmt.Errorf("failed to set print: %w", err)
	}

	step := func(call goja.FunctionCall) goja.Value {
		e.steps++
		if e.maxSteps > 0 && e.steps > e.maxSteps {
			e.abort(&interp.RuntimeError{
				Err:    interp.ErrStepLimit,
				Line:   int(call.Argument(0).ToInteger()),
				Detail: strconv.Itoa(e.maxSteps),
			})
		}
		return goja.Undefined()
	}
	if err := e.vm.Set("step", step); err != nil {
		return fmt.Errorf("failed to set step: %w", err)
	}

	fail := func(call goja.FunctionCall) goja.Value {
		kind := call.Argument(0).String()
		sentinel, ok := failKinds[kind]
		if !ok {
			panic(e.vm.NewTypeError("unknown failure kind %q", kind))
		}
		e.abort(&interp.RuntimeError{Err: sentinel, Line: int(call.Argument(1).ToInteger())})
		return goja.Undefined()
	}
	if err := e.vm.Set("fail", fail); err != nil {
		return fmt.Errorf("failed to set fail: %w", err)
	}

	return nil
}

// abort records err and unwinds the JavaScript stack.
func (e *gojaExec) abort(err error) {
	if e.err == nil {
		e.err = err
	}
	panic(e.vm.NewGoError(err))
}
