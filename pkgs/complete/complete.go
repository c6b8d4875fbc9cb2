// Package complete ranks an environment's bound symbol names against a
// prefix, for use by an external line editor's tab-completion (spec.md
// calls the line editor itself "out of scope... referenced only by
// interface" — this package is that interface's data source, not the editor
// itself).
package complete

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

// SymbolSource is the minimal view of an environment complete needs: the
// set of names bound directly in it, without walking the outer chain
// (matching spec.md's "find" semantics would require exposing env
// internals; callers that want outer-chain completion pass a
// pre-flattened name list instead).
type SymbolSource interface {
	Names() []string
}

// Complete returns the names in source ranked by fuzzy match quality
// against prefix, best match first. An empty prefix returns every name,
// alphabetically.
func Complete(source SymbolSource, prefix string) []string {
	names := source.Names()
	if prefix == "" {
		sorted := append([]string(nil), names...)
		sort.Strings(sorted)
		return sorted
	}

	matches := fuzzy.Find(prefix, names)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}
