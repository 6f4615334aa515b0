package interp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func run(t *testing.T, src string, opts ...Option) (string, error) {
	t.Helper()
	var out bytes.Buffer
	opts = append([]Option{WithOutput(&out)}, opts...)
	err := Exec(context.Background(), src, opts...)
	return out.String(), err
}

func TestRunScenarios(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "arithmetic",
			source: "x = 5\ny = 10\nz = x + y\nprint(z)\nz = z * 2\nprint(z)\n",
			want:   "15\n30\n",
		},
		{
			name:   "gcd",
			source: "a = 48\nb = 18\nwhile b != 0:\n    temp = b\n    b = a % b\n    a = temp\nprint(a)\n",
			want:   "6\n",
		},
		{
			name:   "factorial",
			source: "N = 5\nfact = 1\ni = 1\nwhile i <= N:\n    fact = fact * i\n    i = i + 1\nprint(fact)\n",
			want:   "120\n",
		},
		{
			name:   "malformed assignment",
			source: "x =\nprint(1)\n",
			want:   "1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.source)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIfElseRunsExactlyOneBranch(t *testing.T) {
	for cond := -2; cond <= 2; cond++ {
		assign := fmt.Sprintf("c = %d", cond)
		if cond < 0 {
			assign = fmt.Sprintf("c = 0 - %d", -cond)
		}
		src := assign + "\nif c:\n    print 1\nelse:\n    print 2\n"
		got, err := run(t, src)
		if err != nil {
			t.Fatalf("cond %d: unexpected error: %v", cond, err)
		}
		want := "1\n"
		if cond == 0 {
			want = "2\n"
		}
		if got != want {
			t.Errorf("cond %d: output = %q, want %q", cond, got, want)
		}
	}
}

func TestWhileUsesPostBlockBindings(t *testing.T) {
	// the condition reads a variable that only the block changes
	src := "limit = 3\ni = 0\nwhile i < limit:\n    i = i + 1\n    limit = limit - 1\nprint i\nprint limit\n"
	got, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2\n1\n" {
		t.Errorf("output = %q, want %q", got, "2\n1\n")
	}
}

func TestRuntimeErrorLine(t *testing.T) {
	_, err := run(t, "x = 1\n\nif x:\n    y = x / 0\n")

	var rerr *RuntimeError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *RuntimeError, got %T (%v)", err, err)
	}
	if rerr.Line != 4 {
		t.Errorf("Line = %d, want 4", rerr.Line)
	}
	if !strings.HasPrefix(err.Error(), "line 4: division by zero") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestSharedEnv(t *testing.T) {
	env := NewEnv()
	if _, err := run(t, "x = 20\n", WithEnv(env)); err != nil {
		t.Fatalf("first run: %v", err)
	}
	got, err := run(t, "print x + 1\n", WithEnv(env))
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if got != "21\n" {
		t.Errorf("output = %q, want %q", got, "21\n")
	}
}

func TestRunTwiceRestartsProgram(t *testing.T) {
	program, err := Compile("n = n + 1\nprint n\n")
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}

	var out bytes.Buffer
	in := New(program, WithOutput(&out))
	for range 2 {
		if err := in.Run(context.Background()); err != nil {
			t.Fatalf("Run() error: %v", err)
		}
	}
	if out.String() != "1\n2\n" {
		t.Errorf("output = %q, want %q", out.String(), "1\n2\n")
	}
	if in.Env().Get("n") != 2 {
		t.Errorf("n = %d, want 2", in.Env().Get("n"))
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Exec(ctx, "while 1:\n    x = x + 1\n")
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected wrapped context.Canceled, got %v", err)
	}
}

func TestMaxSteps(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "busy loop", source: "while 1:\n    x = x + 1\n"},
		{name: "empty loop body", source: "while 1:\nprint 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Exec(context.Background(), tt.source, WithMaxSteps(100))
			if !errors.Is(err, ErrStepLimit) {
				t.Errorf("expected ErrStepLimit, got %v", err)
			}
		})
	}

	if err := Exec(context.Background(), "x = 1\nprint x\n", WithMaxSteps(2)); err != nil {
		t.Errorf("program within the limit failed: %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPrintWriteError(t *testing.T) {
	err := Exec(context.Background(), "print 1\n", WithOutput(failingWriter{}))
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("expected write error, got %v", err)
	}
}

func TestTraceLogging(t *testing.T) {
	var logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})

	if _, err := run(t, "x = 1\nprint x\n", WithLogger(logger)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"run started", "stmt=assign", "stmt=print", "run finished", "run="} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("trace output missing %q:\n%s", want, logs.String())
		}
	}
}

func TestNilOptionsKeepDefaults(t *testing.T) {
	in := New(nil, WithOutput(nil), WithEnv(nil), WithLogger(nil))
	if in.Env() == nil {
		t.Fatal("Env() is nil after WithEnv(nil)")
	}

	program, err := Compile("x = 3\nprint x * 2\n")
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	in = New(program, WithOutput(nil), WithEnv(nil), WithLogger(nil))
	if err := in.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got := in.Env().Get("x"); got != 3 {
		t.Errorf("x = %d, want 3", got)
	}
}
