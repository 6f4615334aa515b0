package interp

import (
	"testing"

	"github.com/itsmostafa/minipy/internal/lexer"
)

func line(t *testing.T, src string) Line {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("Tokenize(%q) unexpected error: %v", src, err)
	}
	return Line{Tokens: toks[:len(toks)-1]}
}

func TestLineStatement(t *testing.T) {
	tests := []struct {
		src  string
		want Statement
	}{
		{"", StmtEmpty},
		{"x = 1", StmtAssign},
		{"x", StmtAssign},
		{"print x", StmtPrint},
		{"if x:", StmtIf},
		{"while x:", StmtWhile},
		{"else:", StmtElse},
		{"5 + 1", StmtOther},
		{"( x", StmtOther},
	}
	for _, tt := range tests {
		if got := line(t, tt.src).Statement(); got != tt.want {
			t.Errorf("Statement(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestLineAssignment(t *testing.T) {
	tests := []struct {
		src      string
		wantName string
		wantLen  int
		wantOk   bool
	}{
		{"x = 1", "x", 1, true},
		{"total = a + b", "total", 3, true},
		{"x =", "", 0, false},
		{"x", "", 0, false},
		{"x + 1", "", 0, false},
		{"x == 1", "", 0, false},
	}
	for _, tt := range tests {
		name, expr, ok := line(t, tt.src).Assignment()
		if ok != tt.wantOk || name != tt.wantName || len(expr) != tt.wantLen {
			t.Errorf("Assignment(%q) = %q, %d tokens, %v; want %q, %d, %v",
				tt.src, name, len(expr), ok, tt.wantName, tt.wantLen, tt.wantOk)
		}
	}
}

func TestLinePrintArgs(t *testing.T) {
	tests := []struct {
		src     string
		wantLen int
		wantOk  bool
	}{
		{"print x", 1, true},
		{"print(x)", 1, true},
		{"print(x + 1)", 3, true},
		{"print (x", 1, true},
		{"print x)", 1, true},
		{"print((x))", 3, true},
		{"print", 0, false},
		{"print()", 0, false},
		{"print(", 0, false},
		{"print)", 0, false},
	}
	for _, tt := range tests {
		expr, ok := line(t, tt.src).PrintArgs()
		if ok != tt.wantOk || len(expr) != tt.wantLen {
			t.Errorf("PrintArgs(%q) = %d tokens, %v; want %d, %v", tt.src, len(expr), ok, tt.wantLen, tt.wantOk)
		}
	}
}

func TestLineCondition(t *testing.T) {
	tests := []struct {
		src     string
		wantLen int
		wantOk  bool
	}{
		{"if x:", 1, true},
		{"while i < n:", 3, true},
		{"if :", 0, true},
		{"if x: y: z", 1, true},
		{"if x", 0, false},
	}
	for _, tt := range tests {
		expr, ok := line(t, tt.src).Condition()
		if ok != tt.wantOk || len(expr) != tt.wantLen {
			t.Errorf("Condition(%q) = %d tokens, %v; want %d, %v", tt.src, len(expr), ok, tt.wantLen, tt.wantOk)
		}
	}
}
