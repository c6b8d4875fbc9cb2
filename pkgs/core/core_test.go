package core

import (
	"testing"

	"github.com/aledsdavies/malisp/pkgs/ast"
)

func lookup(t *testing.T, ns *Namespace, name string) *ast.Value {
	t.Helper()
	for _, b := range ns.Bindings() {
		if b.Name == name {
			return b.Value
		}
	}
	t.Fatalf("namespace has no binding for %q", name)
	return nil
}

func TestArithmetic(t *testing.T) {
	ns := NewNamespace()
	add := lookup(t, ns, "+")
	got, err := ast.Apply(add, []*ast.Value{ast.Integer(1), ast.Integer(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Int() != 3 {
		t.Errorf("1+2 = %d, want 3", got.Int())
	}
}

func TestDivByZero(t *testing.T) {
	ns := NewNamespace()
	div := lookup(t, ns, "/")
	_, err := ast.Apply(div, []*ast.Value{ast.Integer(1), ast.Integer(0)})
	cerr, ok := err.(*Error)
	if !ok || cerr.Kind != ErrDivByZero {
		t.Fatalf("expected ErrDivByZero, got %#v", err)
	}
}

func TestTypeError(t *testing.T) {
	ns := NewNamespace()
	add := lookup(t, ns, "+")
	_, err := ast.Apply(add, []*ast.Value{ast.Integer(1), ast.Str("x")})
	cerr, ok := err.(*Error)
	if !ok || cerr.Kind != ErrTypeError {
		t.Fatalf("expected ErrTypeError, got %#v", err)
	}
}

func TestWrongArity(t *testing.T) {
	ns := NewNamespace()
	add := lookup(t, ns, "+")
	_, err := ast.Apply(add, []*ast.Value{ast.Integer(1)})
	if err == nil {
		t.Fatal("expected a wrong-arity error for 1 arg to a 2-arity native")
	}
	_, err = ast.Apply(add, []*ast.Value{ast.Integer(1), ast.Integer(2), ast.Integer(3)})
	if err == nil {
		t.Fatal("expected a wrong-arity error for 3 args to a 2-arity native")
	}
}

func TestListEmptyCount(t *testing.T) {
	ns := NewNamespace()
	list := lookup(t, ns, "list")
	listVal, err := ast.Apply(list, []*ast.Value{ast.Integer(1), ast.Integer(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !listVal.IsList() || len(listVal.Seq()) != 2 {
		t.Fatalf("expected (1 2), got %#v", listVal)
	}

	count := lookup(t, ns, "count")
	n, err := ast.Apply(count, []*ast.Value{listVal})
	if err != nil || n.Int() != 2 {
		t.Fatalf("count = %v, err = %v", n, err)
	}

	nilCount, err := ast.Apply(count, []*ast.Value{ast.Nil()})
	if err != nil || nilCount.Int() != 0 {
		t.Fatalf("count(nil) = %v, err = %v", nilCount, err)
	}

	emptyP := lookup(t, ns, "empty?")
	e, err := ast.Apply(emptyP, []*ast.Value{ast.List(nil)})
	if err != nil || !e.IsTrue() {
		t.Fatalf("empty?(()) = %v, err = %v", e, err)
	}
}

func TestEquals(t *testing.T) {
	ns := NewNamespace()
	eq := lookup(t, ns, "=")
	r, err := ast.Apply(eq, []*ast.Value{ast.Integer(1), ast.Integer(1)})
	if err != nil || !r.IsTrue() {
		t.Fatalf("1 = 1 should be true, got %v err=%v", r, err)
	}

	list := ast.List([]*ast.Value{ast.Integer(1)})
	vec := ast.Vector([]*ast.Value{ast.Integer(1)})
	r, err = ast.Apply(eq, []*ast.Value{list, vec})
	if err != nil || !r.IsFalse() {
		t.Fatalf("list and vector must never be cross-equal, got %v err=%v", r, err)
	}
}

func TestOverflow(t *testing.T) {
	ns := NewNamespace()
	div := lookup(t, ns, "/")
	_, err := ast.Apply(div, []*ast.Value{ast.Integer(-2147483648), ast.Integer(-1)})
	cerr, ok := err.(*Error)
	if !ok || cerr.Kind != ErrOverflow {
		t.Fatalf("expected ErrOverflow for INT_MIN / -1, got %#v", err)
	}
}
