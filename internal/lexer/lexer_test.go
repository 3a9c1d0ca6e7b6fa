package lexer

import (
	"testing"

	"github.com/kolkov/dudecheck/internal/token"
)

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		input string
		kinds []string
	}{
		{"(", []string{Punct}},
		{"[]", []string{Punct, Punct}},
		{"x", []string{Ident}},
		{"_tmp1", []string{Ident}},
		{"42", []string{Number}},
		{"-1.5", []string{Number}},
		{"1e+06", []string{Number}},
		{"-", []string{Operator}},
		{"<=", []string{Operator}},
		{`"hi \"there\""`, []string{String}},
		{`'c'`, []string{Char}},
		{`'\n'`, []string{Char}},
		{"(assign x 0)", []string{Punct, Ident, Ident, Number, Punct}},
		{"; only a comment", []string{}},
		{"(op +) ; trailing\n(null)", []string{Punct, Ident, Operator, Punct, Punct, Ident, Punct}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks, err := Tokenize("", tt.input)
			if err != nil {
				t.Fatalf("Tokenize: %v", err)
			}
			if len(toks) != len(tt.kinds) {
				t.Fatalf("got %d tokens %v, want %d", len(toks), toks, len(tt.kinds))
			}
			for i, kind := range tt.kinds {
				if toks[i].Kind != kind {
					t.Errorf("token[%d] %q: kind %s, want %s", i, toks[i].Value, toks[i].Kind, kind)
				}
			}
		})
	}
}

func TestTokenizePositions(t *testing.T) {
	toks, err := Tokenize("p.dast", "(assign x 0)\n  (return (ident x))")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	want := map[int]token.Position{
		0: {Filename: "p.dast", Line: 1, Column: 1, Offset: 0},
		2: {Filename: "p.dast", Line: 1, Column: 9, Offset: 8},
		5: {Filename: "p.dast", Line: 2, Column: 3, Offset: 15},
	}
	for i, pos := range want {
		if toks[i].Pos != pos {
			t.Errorf("token[%d] %q at %v, want %v", i, toks[i].Value, toks[i].Pos, pos)
		}
	}
}

func TestTokenizeError(t *testing.T) {
	if _, err := Tokenize("", "(assign x @)"); err == nil {
		t.Error("expected error for invalid character")
	}
}
