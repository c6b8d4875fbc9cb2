package ast

// Apply invokes a callable Value (NativeFn or Closure) with args, per
// spec.md §4.1. Any other Kind fails with ErrNotCallable.
func Apply(fn *Value, args []*Value) (*Value, error) {
	switch fn.kind {
	case KindNativeFn:
		if fn.nativeArity != nil && len(args) != *fn.nativeArity {
			return nil, wrongArity(fn.nativeName, *fn.nativeArity, len(args))
		}
		return fn.nativeFn(args)

	case KindClosure:
		callEnv, err := fn.closureEnv.Bind(fn.closureParams, List(args))
		if err != nil {
			return nil, err
		}
		return fn.closureEval(fn.closureBody, callEnv)

	default:
		return nil, notCallable(fn)
	}
}

// Equal implements the structural equality of spec.md §4.1: List and Vector
// are only equal within their own kind (never cross-equal), Hash compares by
// key-set and per-key value, and callables are never equal.
func Equal(a, b *Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil, KindTrue, KindFalse:
		return true
	case KindInteger:
		return a.integer == b.integer
	case KindStr, KindSymbol:
		return a.str == b.str
	case KindList, KindVector:
		if len(a.seq) != len(b.seq) {
			return false
		}
		for i := range a.seq {
			if !Equal(a.seq[i], b.seq[i]) {
				return false
			}
		}
		return true
	case KindHash:
		if len(a.hashKeys) != len(b.hashKeys) {
			return false
		}
		for i, k := range a.hashKeys {
			bv, ok := b.HashGet(k)
			if !ok || !Equal(a.hashVals[i], bv) {
				return false
			}
		}
		return true
	case KindNativeFn, KindClosure:
		return false
	default:
		return false
	}
}
