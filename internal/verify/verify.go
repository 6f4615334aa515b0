// Package verify runs one program through several engines and reports
// whether they agree.
package verify

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/itsmostafa/minipy/internal/interp"
	"github.com/itsmostafa/minipy/internal/lexer"
	"github.com/itsmostafa/minipy/internal/runner"
)

// Check is the outcome of one engine.
type Check struct {
	Engine     string
	Output     string
	Err        error
	DurationMs int
}

// Report aggregates the checks for one program.
type Report struct {
	Name      string
	Checks    []Check
	Agreed    bool
	Timestamp time.Time
}

// Verifier runs programs through a fixed list of engines.
type Verifier struct {
	runners []runner.Runner
}

// NewVerifier creates a Verifier. With no runners it compares the native
// engine against the goja reference engine.
func NewVerifier(opts runner.Options, runners ...runner.Runner) *Verifier {
	if len(runners) == 0 {
		native, _ := runner.New(runner.NameNative, opts)
		reference, _ := runner.New(runner.NameGoja, opts)
		runners = []runner.Runner{native, reference}
	}
	return &Verifier{runners: runners}
}

// Run executes source on every engine and compares the results.
func (v *Verifier) Run(ctx context.Context, name, source string) Report {
	report := Report{
		Name:      name,
		Agreed:    true,
		Checks:    make([]Check, 0, len(v.runners)),
		Timestamp: time.Now(),
	}

	for _, r := range v.runners {
		check := v.runCheck(ctx, r, source)
		if len(report.Checks) > 0 && !agree(report.Checks[0], check) {
			report.Agreed = false
		}
		report.Checks = append(report.Checks, check)
	}

	return report
}

// runCheck executes source on a single engine
func (v *Verifier) runCheck(ctx context.Context, r runner.Runner, source string) Check {
	var out bytes.Buffer
	start := time.Now()
	err := r.Run(ctx, source, &out)
	return Check{
		Engine:     r.Name(),
		Output:     out.String(),
		Err:        err,
		DurationMs: int(time.Since(start).Milliseconds()),
	}
}

// agree reports whether two checks printed the same text and ended the same
// way: both cleanly or both with the same error kind.
func agree(a, b Check) bool {
	if a.Output != b.Output {
		return false
	}
	if (a.Err == nil) != (b.Err == nil) {
		return false
	}
	return ErrorClass(a.Err) == ErrorClass(b.Err)
}

// ErrorClass names the kind of err for comparison and display.
func ErrorClass(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, lexer.ErrUnexpectedChar) {
		return lexer.ErrUnexpectedChar.Error()
	}
	if kind := interp.Kind(err); kind != nil {
		return kind.Error()
	}
	return "other"
}
