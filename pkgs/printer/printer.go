// Package printer implements pr_str, the textual representation of a
// pkgs/ast.Value, per spec.md §4.3.
package printer

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/malisp/pkgs/ast"
)

// PrStr renders v as text. When readable is true, strings are re-escaped so
// that ReadStr(PrStr(v, true)) reconstructs an equal value (spec.md §8's
// round-trip property); when false, strings are emitted raw.
func PrStr(v *ast.Value, readable bool) string {
	var b strings.Builder
	writeValue(&b, v, readable)
	return b.String()
}

func writeValue(b *strings.Builder, v *ast.Value, readable bool) {
	switch v.Kind() {
	case ast.KindNil:
		b.WriteString("nil")
	case ast.KindTrue:
		b.WriteString("true")
	case ast.KindFalse:
		b.WriteString("false")
	case ast.KindInteger:
		fmt.Fprintf(b, "%d", v.Int())
	case ast.KindSymbol:
		b.WriteString(v.Text())
	case ast.KindStr:
		if readable {
			writeEscapedString(b, v.Text())
		} else {
			b.WriteString(v.Text())
		}
	case ast.KindList:
		writeSeq(b, v.Seq(), "(", ")", readable)
	case ast.KindVector:
		writeSeq(b, v.Seq(), "[", "]", readable)
	case ast.KindHash:
		writeHash(b, v, readable)
	case ast.KindNativeFn:
		arity := "variadic"
		if a := v.NativeArity(); a != nil {
			arity = fmt.Sprintf("%d", *a)
		}
		fmt.Fprintf(b, "#<fn:%s/%s>", v.NativeName(), arity)
	case ast.KindClosure:
		fmt.Fprintf(b, "#<closure %s %s>", PrStr(v.ClosureParams(), true), PrStr(v.ClosureBody(), true))
	default:
		b.WriteString("#<unknown>")
	}
}

func writeSeq(b *strings.Builder, elems []*ast.Value, open, close string, readable bool) {
	b.WriteString(open)
	for i, e := range elems {
		if i > 0 {
			b.WriteString(" ")
		}
		writeValue(b, e, readable)
	}
	b.WriteString(close)
}

func writeHash(b *strings.Builder, v *ast.Value, readable bool) {
	keys, vals := v.HashEntries()
	b.WriteString("{")
	for i := range keys {
		if i > 0 {
			b.WriteString(" ")
		}
		writeEscapedString(b, keys[i])
		b.WriteString(" ")
		writeValue(b, vals[i], readable)
	}
	b.WriteString("}")
}

// writeEscapedString implements spec.md §6's escape set: only \", \\, and
// \n are produced.
func writeEscapedString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}
