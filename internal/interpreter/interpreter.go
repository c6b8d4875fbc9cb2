// Package interpreter wraps pkgs/reader, pkgs/eval, and pkgs/printer into
// the read-eval-print pipeline described at the REPL boundary in spec.md
// §6: Rep takes one line of input and returns either the printed result or
// an error, leaving the caller's prompt loop (out of core scope) to decide
// how to display it. This mirrors the teacher's internal/interpreter.Interpreter,
// which likewise wraps an execution engine behind a small, line-oriented API.
package interpreter

import (
	"github.com/aledsdavies/malisp/pkgs/ast"
	"github.com/aledsdavies/malisp/pkgs/core"
	"github.com/aledsdavies/malisp/pkgs/env"
	"github.com/aledsdavies/malisp/pkgs/eval"
	"github.com/aledsdavies/malisp/pkgs/printer"
	"github.com/aledsdavies/malisp/pkgs/reader"
)

// bootstrapForm seeds `not`, the one binding spec.md requires at startup
// beyond the core namespace itself.
const bootstrapForm = `(def! not (fn* (x) (if x false true)))`

// Interpreter holds the root environment a REPL session evaluates against.
type Interpreter struct {
	root *env.Env
}

// New builds an Interpreter with a fresh root environment, seeded with the
// core namespace (pkgs/core) and the `not` bootstrap form. maxDepth bounds
// recursive evaluation depth (see pkgs/eval.MaxDepth); 0 means no explicit
// limit.
func New(maxDepth int) (*Interpreter, error) {
	eval.MaxDepth = maxDepth
	root := env.New(nil)
	for _, b := range core.NewNamespace().Bindings() {
		root.Set(b.Name, b.Value)
	}

	form, err := reader.ReadStr(bootstrapForm)
	if err != nil {
		return nil, err
	}
	if _, err := eval.Eval(form, root); err != nil {
		return nil, err
	}

	return &Interpreter{root: root}, nil
}

// Root exposes the interpreter's top-level environment, e.g. for
// pkgs/complete-driven symbol lookups by an external line editor.
func (i *Interpreter) Root() *env.Env { return i.root }

// Rep reads one form from input, evaluates it in the root environment, and
// returns its readable printed form. A reader.Error with Kind ==
// reader.ErrEmptyLine is returned as-is so callers can distinguish "nothing
// to print, reprompt silently" from a genuine error, per spec.md §6's REPL
// line protocol.
func (i *Interpreter) Rep(input string) (string, error) {
	form, err := reader.ReadStr(input)
	if err != nil {
		return "", err
	}
	result, err := eval.Eval(form, i.root)
	if err != nil {
		return "", err
	}
	return printer.PrStr(result, true), nil
}

// RepAll reads every top-level form in input and evaluates them in order
// against the root environment, returning the printed form of the last
// result. Input holding no forms yields the reader's EmptyLine error, as
// ReadAll does. Used by the batch-file runner,
// which needs more than Rep's single-form pipeline.
func (i *Interpreter) RepAll(input string) (string, error) {
	forms, err := reader.ReadAll(input)
	if err != nil {
		return "", err
	}
	var result *ast.Value = ast.Nil()
	for _, form := range forms {
		result, err = eval.Eval(form, i.root)
		if err != nil {
			return "", err
		}
	}
	return printer.PrStr(result, true), nil
}

// IsEmptyLine reports whether err is the reader's EmptyLine sentinel, the
// one error the REPL boundary absorbs silently instead of printing
// "error: ...".
func IsEmptyLine(err error) bool {
	rerr, ok := err.(*reader.Error)
	return ok && rerr.Kind == reader.ErrEmptyLine
}
