package token

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		ident string
		want  Kind
	}{
		{name: "if", ident: "if", want: If},
		{name: "else", ident: "else", want: Else},
		{name: "while", ident: "while", want: While},
		{name: "print", ident: "print", want: Print},
		{name: "plain identifier", ident: "total", want: Ident},
		{name: "keyword is case sensitive", ident: "If", want: Ident},
		{name: "keyword prefix", ident: "iffy", want: Ident},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lookup(tt.ident); got != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.ident, got, tt.want)
			}
		})
	}
}

func TestKindIsOperator(t *testing.T) {
	operators := []Kind{Plus, Minus, Star, Slash, Mod, Equal, NotEqual, Greater, GreaterEq, Less, LessEq}
	for _, k := range operators {
		if !k.IsOperator() {
			t.Errorf("%v.IsOperator() = false, want true", k)
		}
	}

	others := []Kind{LParen, RParen, Assign, Colon, Ident, Number, If, Else, While, Print, Newline, EOF}
	for _, k := range others {
		if k.IsOperator() {
			t.Errorf("%v.IsOperator() = true, want false", k)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := GreaterEq.String(); got != ">=" {
		t.Errorf("GreaterEq.String() = %q, want %q", got, ">=")
	}
	if got := Kind(200).String(); got != "Kind(200)" {
		t.Errorf("Kind(200).String() = %q", got)
	}
	tok := Token{Kind: Ident, Text: "x"}
	if got := tok.String(); got != "Token(IDENT, x)" {
		t.Errorf("Token.String() = %q", got)
	}
}
