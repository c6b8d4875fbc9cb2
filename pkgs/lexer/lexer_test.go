package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func values(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Value
	}
	return out
}

func TestTokenizeBasics(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   \t\n  ", nil},
		{"single atom", "foo", []string{"foo"}},
		{"list", "(+ 1 2)", []string{"(", "+", "1", "2", ")"}},
		{"commas are whitespace", "(1,2,3)", []string{"(", "1", "2", "3", ")"}},
		{"vector and hash", "[1 2] {\"a\" 1}", []string{"[", "1", "2", "]", "{", "\"a\"", "1", "}"}},
		{"splice-unquote", "~@x", []string{"~@", "x"}},
		{"comment discarded", "1 ; a comment\n2", []string{"1", "2"}},
		{"comment only line", "; nothing here", nil},
		{"string with escapes", `"a\"b\\c\n"`, []string{`"a\"b\\c\n"`}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize(tc.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tc.input, err)
			}
			got := values(toks)
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize(`"abc`)
	if err == nil {
		t.Fatal("expected an UnterminatedStringError, got nil")
	}
	if _, ok := err.(*UnterminatedStringError); !ok {
		t.Fatalf("expected *UnterminatedStringError, got %T", err)
	}
}

func TestTokenizePositions(t *testing.T) {
	toks, err := Tokenize("(+ 1\n   2)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Token{
		{Type: TokenSpecial, Value: "(", Line: 1, Column: 1},
		{Type: TokenAtom, Value: "+", Line: 1, Column: 2},
		{Type: TokenAtom, Value: "1", Line: 1, Column: 4},
		{Type: TokenAtom, Value: "2", Line: 2, Column: 4},
		{Type: TokenSpecial, Value: ")", Line: 2, Column: 5},
	}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Errorf("Tokenize positions mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenClassification(t *testing.T) {
	toks, err := Tokenize(`~@ ( "s" atom`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantTypes := []TokenType{TokenSpliceUnquote, TokenSpecial, TokenString, TokenAtom}
	if len(toks) != len(wantTypes) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(wantTypes), toks)
	}
	for i, tok := range toks {
		if tok.Type != wantTypes[i] {
			t.Errorf("token %d: got type %v, want %v", i, tok.Type, wantTypes[i])
		}
	}
}
