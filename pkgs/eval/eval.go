// Package eval implements Eval, the special-form dispatcher and function
// applicator of spec.md §4.6.
package eval

import (
	"fmt"

	"github.com/aledsdavies/malisp/pkgs/ast"
	"github.com/aledsdavies/malisp/pkgs/env"
)

// Kind tags the evaluator's structured errors.
type Kind int

const (
	ErrBadSpecialForm Kind = iota
	ErrNotCallable
	ErrBadLetBindings
	ErrBadDef
	ErrBadFn
	ErrStackOverflow
)

// Error is eval's structured error type.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func badForm(name, detail string) *Error {
	return &Error{Kind: ErrBadSpecialForm, Msg: fmt.Sprintf("%s: %s", name, detail)}
}

// MaxDepth bounds recursive Eval nesting. Zero (the default) means no
// explicit limit, relying on the host stack's own limit instead. Set by
// internal/interpreter.New from the max_call_depth value that cmd/malisp
// loads through internal/config.
var MaxDepth int

var callDepth int

// Eval evaluates ast in env, dispatching on node shape and special forms,
// per spec.md §4.6. When MaxDepth is set, nesting past it fails with
// ErrStackOverflow instead of recursing further into the host stack.
func Eval(node *ast.Value, e ast.Env) (*ast.Value, error) {
	if MaxDepth > 0 {
		callDepth++
		defer func() { callDepth-- }()
		if callDepth > MaxDepth {
			return nil, &Error{Kind: ErrStackOverflow, Msg: fmt.Sprintf("exceeded max call depth of %d", MaxDepth)}
		}
	}

	switch node.Kind() {
	case ast.KindSymbol:
		return e.Get(node.Text())

	case ast.KindVector:
		elems := node.Seq()
		out := make([]*ast.Value, len(elems))
		for i, el := range elems {
			v, err := Eval(el, e)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return ast.Vector(out), nil

	case ast.KindHash:
		keys, vals := node.HashEntries()
		outVals := make([]*ast.Value, len(vals))
		for i, v := range vals {
			ev, err := Eval(v, e)
			if err != nil {
				return nil, err
			}
			outVals[i] = ev
		}
		outKeys := make([]string, len(keys))
		copy(outKeys, keys)
		return ast.Hash(outKeys, outVals), nil

	case ast.KindList:
		return evalList(node, e)

	default:
		return node, nil
	}
}

func evalList(list *ast.Value, e ast.Env) (*ast.Value, error) {
	elems := list.Seq()
	if len(elems) == 0 {
		return list, nil
	}

	head := elems[0]
	if head.IsSymbol() {
		switch head.Text() {
		case "def!":
			return evalDef(elems, e)
		case "let*":
			return evalLet(elems, e)
		case "do":
			return evalDo(elems, e)
		case "if":
			return evalIf(elems, e)
		case "fn*":
			return evalFn(elems, e)
		}
	}

	// Ordinary application: evaluate every element left to right, including
	// the head, then apply.
	evaluated := make([]*ast.Value, len(elems))
	for i, el := range elems {
		v, err := Eval(el, e)
		if err != nil {
			return nil, err
		}
		evaluated[i] = v
	}

	fn := evaluated[0]
	if !fn.IsCallable() {
		return nil, &Error{Kind: ErrNotCallable, Msg: fmt.Sprintf("not callable: %s", fn.Kind())}
	}
	return ast.Apply(fn, evaluated[1:])
}

func evalDef(elems []*ast.Value, e ast.Env) (*ast.Value, error) {
	if len(elems) != 3 {
		return nil, badForm("def!", "expected 2 arguments (key, expr)")
	}
	key := elems[1]
	if !key.IsSymbol() {
		return nil, &Error{Kind: ErrBadDef, Msg: "def!: key must be a symbol"}
	}
	value, err := Eval(elems[2], e)
	if err != nil {
		return nil, err
	}
	e.Set(key.Text(), value)
	return value, nil
}

func evalLet(elems []*ast.Value, e ast.Env) (*ast.Value, error) {
	if len(elems) != 3 {
		return nil, badForm("let*", "expected 2 arguments (bindings, body)")
	}
	bindings := elems[1]
	if !bindings.IsSeq() {
		return nil, &Error{Kind: ErrBadLetBindings, Msg: "let*: bindings must be a list or vector"}
	}
	pairs := bindings.Seq()
	if len(pairs)%2 != 0 {
		return nil, &Error{Kind: ErrBadLetBindings, Msg: "let*: bindings must have an even number of elements"}
	}

	inner := e.NewInner()
	for i := 0; i < len(pairs); i += 2 {
		sym := pairs[i]
		if !sym.IsSymbol() {
			return nil, &Error{Kind: ErrBadLetBindings, Msg: "let*: binding names must be symbols"}
		}
		val, err := Eval(pairs[i+1], inner)
		if err != nil {
			return nil, err
		}
		inner.Set(sym.Text(), val)
	}

	return Eval(elems[2], inner)
}

func evalDo(elems []*ast.Value, e ast.Env) (*ast.Value, error) {
	body := elems[1:]
	if len(body) == 0 {
		return ast.Nil(), nil
	}
	var result *ast.Value = ast.Nil()
	var err error
	for _, form := range body {
		result, err = Eval(form, e)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func evalIf(elems []*ast.Value, e ast.Env) (*ast.Value, error) {
	if len(elems) != 3 && len(elems) != 4 {
		return nil, badForm("if", "expected 2 or 3 arguments")
	}
	cond, err := Eval(elems[1], e)
	if err != nil {
		return nil, err
	}
	if cond.Truthy() {
		return Eval(elems[2], e)
	}
	if len(elems) == 4 {
		return Eval(elems[3], e)
	}
	return ast.Nil(), nil
}

func evalFn(elems []*ast.Value, e ast.Env) (*ast.Value, error) {
	if len(elems) != 3 {
		return nil, badForm("fn*", "expected 2 arguments (params, body)")
	}
	params := elems[1]
	if !params.IsSeq() {
		return nil, &Error{Kind: ErrBadFn, Msg: "fn*: parameters must be a list or vector"}
	}
	for _, p := range params.Seq() {
		if !p.IsSymbol() {
			return nil, &Error{Kind: ErrBadFn, Msg: "fn*: all parameters must be symbols"}
		}
	}
	return ast.Closure(params, elems[2], e, Eval), nil
}

// compile-time assertion that *env.Env satisfies ast.Env.
var _ ast.Env = (*env.Env)(nil)
