package printer

import (
	"testing"

	"github.com/aledsdavies/malisp/pkgs/ast"
)

func TestPrStrScalars(t *testing.T) {
	cases := []struct {
		v    *ast.Value
		want string
	}{
		{ast.Nil(), "nil"},
		{ast.Bool(true), "true"},
		{ast.Bool(false), "false"},
		{ast.Integer(42), "42"},
		{ast.Integer(-7), "-7"},
		{ast.Symbol("foo"), "foo"},
	}
	for _, tc := range cases {
		if got := PrStr(tc.v, true); got != tc.want {
			t.Errorf("PrStr(%v, true) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestPrStrStringEscaping(t *testing.T) {
	v := ast.Str("a\"b\\c\nd")
	readable := PrStr(v, true)
	want := `"a\"b\\c\nd"`
	if readable != want {
		t.Errorf("readable PrStr = %q, want %q", readable, want)
	}
	raw := PrStr(v, false)
	if raw != "a\"b\\c\nd" {
		t.Errorf("raw PrStr = %q", raw)
	}
}

func TestPrStrSeqAndHash(t *testing.T) {
	list := ast.List([]*ast.Value{ast.Integer(1), ast.Integer(2)})
	if got := PrStr(list, true); got != "(1 2)" {
		t.Errorf("list PrStr = %q", got)
	}

	vec := ast.Vector([]*ast.Value{ast.Integer(1), ast.Integer(2)})
	if got := PrStr(vec, true); got != "[1 2]" {
		t.Errorf("vector PrStr = %q", got)
	}

	h := ast.Hash([]string{"a"}, []*ast.Value{ast.Integer(1)})
	if got := PrStr(h, true); got != `{"a" 1}` {
		t.Errorf("hash PrStr = %q", got)
	}
}

func TestPrStrCallablesAreDeterministic(t *testing.T) {
	arity := 2
	fn := ast.NativeFn("+", &arity, func(args []*ast.Value) (*ast.Value, error) { return ast.Nil(), nil })
	a := PrStr(fn, true)
	b := PrStr(fn, true)
	if a != b {
		t.Errorf("PrStr of a NativeFn is not deterministic: %q vs %q", a, b)
	}
}
