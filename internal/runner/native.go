package runner

import (
	"context"
	"io"

	"github.com/itsmostafa/minipy/internal/interp"
)

// Native runs programs on the interpreter in package interp.
type Native struct {
	opts Options
	env  *interp.Env
}

// NewNative returns a native engine whose runs share env. A nil env gives
// every run a fresh table.
func NewNative(opts Options, env *interp.Env) *Native {
	n, _ := New(NameNative, opts)
	native := n.(*Native)
	native.env = env
	return native
}

func (n *Native) Name() string {
	return NameNative
}

func (n *Native) Run(ctx context.Context, source string, w io.Writer) error {
	ctx, cancel := withTimeout(ctx, n.opts.Timeout)
	defer cancel()

	opts := []interp.Option{
		interp.WithOutput(w),
		interp.WithLogger(n.opts.Logger.With("engine", NameNative)),
		interp.WithMaxSteps(n.opts.MaxSteps),
	}
	if n.env != nil {
		opts = append(opts, interp.WithEnv(n.env))
	}
	return interp.Exec(ctx, source, opts...)
}
