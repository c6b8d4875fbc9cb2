// Package core provides the fixed set of host-implemented primitive
// functions seeded into the root environment, per spec.md §4.5. It is
// structured as a small registry, in the manner of the teacher's
// DecoratorRegistry (pkgs/stdlib/decorator.go): a name-to-signature map
// built once at startup. Unlike the teacher's registry this one needs no
// mutex, since spec.md §5 states the interpreter is single-threaded.
package core

import (
	"fmt"
	"math"

	"github.com/aledsdavies/malisp/pkgs/ast"
	"github.com/aledsdavies/malisp/pkgs/printer"
)

// Kind tags the structured errors core's primitives can produce.
type Kind int

const (
	ErrTypeError Kind = iota
	ErrDivByZero
	ErrOverflow
)

// Error is core's structured error type.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func typeErr(format string, args ...any) *Error {
	return &Error{Kind: ErrTypeError, Msg: fmt.Sprintf(format, args...)}
}

// entry is one registered primitive: a name, a fixed arity (nil means
// variadic), and the Go function implementing it.
type entry struct {
	name  string
	arity *int
	fn    ast.NativeFunc
}

func arityOf(n int) *int { return &n }

// Namespace is the ordered set of native bindings seeded into a root
// environment.
type Namespace struct {
	entries []entry
}

// NewNamespace builds the fixed core namespace described by spec.md §4.5.
func NewNamespace() *Namespace {
	ns := &Namespace{}
	ns.register("=", arityOf(2), primEquals)
	ns.register("list", nil, primList)
	ns.register("list?", arityOf(1), primListP)
	ns.register("empty?", arityOf(1), primEmptyP)
	ns.register("count", arityOf(1), primCount)
	ns.register("+", arityOf(2), intOp(func(a, b int64) int64 { return a + b }))
	ns.register("-", arityOf(2), intOp(func(a, b int64) int64 { return a - b }))
	ns.register("*", arityOf(2), intOp(func(a, b int64) int64 { return a * b }))
	ns.register("/", arityOf(2), primDiv)
	ns.register("<", arityOf(2), intCmp(func(a, b int64) bool { return a < b }))
	ns.register("<=", arityOf(2), intCmp(func(a, b int64) bool { return a <= b }))
	ns.register(">", arityOf(2), intCmp(func(a, b int64) bool { return a > b }))
	ns.register(">=", arityOf(2), intCmp(func(a, b int64) bool { return a >= b }))
	ns.register("prn", arityOf(1), primPrn)
	return ns
}

func (ns *Namespace) register(name string, arity *int, fn ast.NativeFunc) {
	ns.entries = append(ns.entries, entry{name: name, arity: arity, fn: fn})
}

// Bindings returns the (name, Value) pairs to seed into a root environment.
// Order matches registration order; callers that don't care about order can
// ignore it.
func (ns *Namespace) Bindings() []struct {
	Name  string
	Value *ast.Value
} {
	out := make([]struct {
		Name  string
		Value *ast.Value
	}, len(ns.entries))
	for i, e := range ns.entries {
		out[i] = struct {
			Name  string
			Value *ast.Value
		}{Name: e.name, Value: ast.NativeFn(e.name, e.arity, e.fn)}
	}
	return out
}

func primEquals(args []*ast.Value) (*ast.Value, error) {
	return ast.Bool(ast.Equal(args[0], args[1])), nil
}

func primList(args []*ast.Value) (*ast.Value, error) {
	elems := make([]*ast.Value, len(args))
	copy(elems, args)
	return ast.List(elems), nil
}

func primListP(args []*ast.Value) (*ast.Value, error) {
	return ast.Bool(args[0].IsList()), nil
}

func primEmptyP(args []*ast.Value) (*ast.Value, error) {
	v := args[0]
	if !v.IsSeq() {
		return nil, typeErr("empty?: expected a list or vector, got %s", v.Kind())
	}
	return ast.Bool(len(v.Seq()) == 0), nil
}

func primCount(args []*ast.Value) (*ast.Value, error) {
	v := args[0]
	switch {
	case v.IsNil():
		return ast.Integer(0), nil
	case v.IsSeq():
		return ast.Integer(int32(len(v.Seq()))), nil
	default:
		return nil, typeErr("count: expected a list, vector, or nil, got %s", v.Kind())
	}
}

func intOperands(args []*ast.Value) (int64, int64, error) {
	if args[0].Kind() != ast.KindInteger {
		return 0, 0, typeErr("expected an integer, got %s", args[0].Kind())
	}
	if args[1].Kind() != ast.KindInteger {
		return 0, 0, typeErr("expected an integer, got %s", args[1].Kind())
	}
	return int64(args[0].Int()), int64(args[1].Int()), nil
}

// intOp wraps a two-argument int64 operation as an ast.NativeFunc, checking
// operand types and 32-bit overflow of the result.
func intOp(f func(a, b int64) int64) ast.NativeFunc {
	return func(args []*ast.Value) (*ast.Value, error) {
		a, b, err := intOperands(args)
		if err != nil {
			return nil, err
		}
		result := f(a, b)
		if result > math.MaxInt32 || result < math.MinInt32 {
			return nil, &Error{Kind: ErrOverflow, Msg: "integer operation overflowed 32 bits"}
		}
		return ast.Integer(int32(result)), nil
	}
}

func primDiv(args []*ast.Value) (*ast.Value, error) {
	a, b, err := intOperands(args)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, &Error{Kind: ErrDivByZero, Msg: "division by zero"}
	}
	if a == math.MinInt32 && b == -1 {
		return nil, &Error{Kind: ErrOverflow, Msg: "division overflowed 32 bits (INT_MIN / -1)"}
	}
	return ast.Integer(int32(a / b)), nil
}

func intCmp(f func(a, b int64) bool) ast.NativeFunc {
	return func(args []*ast.Value) (*ast.Value, error) {
		a, b, err := intOperands(args)
		if err != nil {
			return nil, err
		}
		return ast.Bool(f(a, b)), nil
	}
}

// primPrn prints the readable form of its argument to standard output and
// returns Nil, per spec.md §9's resolution of the source's self-conflicting
// behavior.
func primPrn(args []*ast.Value) (*ast.Value, error) {
	fmt.Println(printer.PrStr(args[0], true))
	return ast.Nil(), nil
}
