// Package runner provides the engines that can execute a minipy program: the
// native interpreter and a reference engine that runs a JavaScript
// translation of the program in goja.
package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Engine names accepted by New.
const (
	NameNative = "native"
	NameGoja   = "goja"
)

// Runner executes program source, writing print output to w.
type Runner interface {
	// Name returns the engine name (e.g., "native", "goja")
	Name() string

	// Run executes source to completion or to the first fatal error.
	// Output written before an error stays written.
	Run(ctx context.Context, source string, w io.Writer) error
}

// Options holds the host limits shared by every engine.
type Options struct {
	// MaxSteps bounds the native engine's dispatched lines (0 = unlimited)
	MaxSteps int

	// Timeout bounds a whole run (0 = none)
	Timeout time.Duration

	// Logger receives execution traces. Nil discards them.
	Logger *log.Logger
}

// ValidateName checks that name is a known engine.
func ValidateName(name string) error {
	switch name {
	case NameNative, NameGoja:
		return nil
	default:
		return fmt.Errorf("unknown engine: %q (valid options: native, goja)", name)
	}
}

// New returns the engine registered under name.
func New(name string, opts Options) (Runner, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	switch name {
	case NameGoja:
		return &Goja{opts: opts}, nil
	default:
		return &Native{opts: opts}, nil
	}
}

// withTimeout applies opts.Timeout to ctx when one is set.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
