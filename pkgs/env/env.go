// Package env implements the lexically scoped environment of spec.md §4.4:
// a name-to-value mapping with an optional outer link, and the
// destructuring parameter binder used by closure application.
package env

import (
	"fmt"

	"github.com/aledsdavies/malisp/pkgs/ast"
)

// Kind tags the environment's structured errors.
type Kind int

const (
	ErrSymbolNotFound Kind = iota
	ErrNonSymbolBinding
	ErrMissingVariadic
	ErrNotEnoughArgs
)

// Error is env's structured error type.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Env is a single lexical scope. It implements ast.Env so that pkgs/ast can
// build call environments for closures without importing this package
// (which would create an import cycle, since Env holds *ast.Value).
type Env struct {
	bindings map[string]*ast.Value
	outer    *Env
}

// New creates a fresh environment with the given optional outer scope.
func New(outer *Env) *Env {
	return &Env{bindings: make(map[string]*ast.Value), outer: outer}
}

// NewInner creates a fresh environment whose outer is e. Satisfies
// ast.Env.
func (e *Env) NewInner() ast.Env { return New(e) }

// Set inserts or overwrites sym in this environment only (not outer scopes).
// Setting with a non-symbol key is a programming error in the spec; since
// Set's signature here only accepts a Go string there is no non-symbol case
// to reject, unlike the Bind path below which validates AST nodes.
func (e *Env) Set(sym string, v *ast.Value) {
	e.bindings[sym] = v
}

// find returns the innermost environment in the outer chain (starting at e)
// that directly binds sym, or nil if none does.
func (e *Env) find(sym string) *Env {
	for env := e; env != nil; env = env.outer {
		if _, ok := env.bindings[sym]; ok {
			return env
		}
	}
	return nil
}

// Get looks up sym via the outer chain, failing with ErrSymbolNotFound if
// no environment in the chain binds it.
func (e *Env) Get(sym string) (*ast.Value, error) {
	if found := e.find(sym); found != nil {
		return found.bindings[sym], nil
	}
	return nil, &Error{Kind: ErrSymbolNotFound, Msg: fmt.Sprintf("'%s' not found", sym)}
}

// Names returns the symbol names bound directly in this environment (not
// its outer chain), for use by pkgs/complete.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.bindings))
	for name := range e.bindings {
		names = append(names, name)
	}
	return names
}

// Root walks the outer chain to the top-level environment.
func (e *Env) Root() *Env {
	env := e
	for env.outer != nil {
		env = env.outer
	}
	return env
}

// Bind constructs a fresh inner environment (outer = e) and binds a
// parameter list destructuringly against exprs, per spec.md §4.4. binds
// must be a List or Vector of Symbols, optionally containing the literal
// symbol "&" to introduce a variadic tail; exprs must be a List or Vector of
// argument values. Satisfies ast.Env.
func (e *Env) Bind(binds, exprs *ast.Value) (ast.Env, error) {
	if !binds.IsSeq() {
		return nil, &Error{Kind: ErrNonSymbolBinding, Msg: "bind: binds must be a list or vector"}
	}
	if !exprs.IsSeq() {
		return nil, &Error{Kind: ErrNotEnoughArgs, Msg: "bind: exprs must be a list or vector"}
	}

	inner := New(e)
	bindSeq := binds.Seq()
	exprSeq := exprs.Seq()

	for i, b := range bindSeq {
		if !b.IsSymbol() {
			return nil, &Error{Kind: ErrNonSymbolBinding, Msg: "bind: non-symbol in parameter list"}
		}
		if b.Text() == "&" {
			if i+1 >= len(bindSeq) {
				return nil, &Error{Kind: ErrMissingVariadic, Msg: "bind: missing symbol after '&'"}
			}
			variadicSym := bindSeq[i+1]
			if !variadicSym.IsSymbol() {
				return nil, &Error{Kind: ErrNonSymbolBinding, Msg: "bind: variadic binding must be a symbol"}
			}
			var rest []*ast.Value
			if i < len(exprSeq) {
				rest = append(rest, exprSeq[i:]...)
			}
			inner.Set(variadicSym.Text(), ast.List(rest))
			return inner, nil
		}
		if i >= len(exprSeq) {
			return nil, &Error{Kind: ErrNotEnoughArgs, Msg: fmt.Sprintf("bind: not enough arguments, missing value for %q", b.Text())}
		}
		inner.Set(b.Text(), exprSeq[i])
	}

	return inner, nil
}
