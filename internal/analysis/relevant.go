package analysis

import (
	"github.com/overcall/overcall/internal/sig"
)

// RelevantParameters walks all candidate signatures and returns the set of
// parameter names whose declared type varies across candidates.
//
// Bookkeeping is by position for positional-eligible kinds and by name for
// keyword-eligible and variadic kinds; a position or name is relevant iff
// more than one distinct declared type was observed for it. An untyped
// parameter counts as its own distinct type.
//
// Special case: a variadic parameter declared as the unpack of a structured
// type cannot be disambiguated by position bookkeeping alone, so its
// presence anywhere degrades to marking every parameter name of every
// candidate as relevant. The common case stays cheap; the pathological case
// stays correct.
func RelevantParameters(sigs []*sig.Signature) map[string]struct{} {
	allNames := make(map[string]struct{})
	posNames := make(map[int]map[string]struct{})
	posTypes := make(map[int]map[string]struct{})
	kwTypes := make(map[string]map[string]struct{})
	unpackPresent := false

	for _, s := range sigs {
		for _, p := range s.Parameters() {
			allNames[p.Name] = struct{}{}

			if _, isUnpack := p.Type.(sig.Unpack); isUnpack {
				// We don't know yet which parameters this unpack might
				// conflict with, so we check all of them.
				unpackPresent = true
			}

			key := sig.KeyOf(p.Type)

			if p.Kind.PositionalEligible() {
				addTo(posNames, p.Position, p.Name)
				addTo(posTypes, p.Position, key)
			}

			switch p.Kind {
			case sig.PositionalOrKeyword, sig.KeywordOnly,
				sig.VariadicPositional, sig.VariadicKeyword:
				addTo(kwTypes, p.Name, key)
			}
		}
	}

	if unpackPresent {
		return allNames
	}

	relevant := make(map[string]struct{})
	for pos, types := range posTypes {
		if len(types) > 1 {
			for name := range posNames[pos] {
				relevant[name] = struct{}{}
			}
		}
	}
	for name, types := range kwTypes {
		if len(types) > 1 {
			relevant[name] = struct{}{}
		}
	}
	return relevant
}

func addTo[K comparable](m map[K]map[string]struct{}, k K, v string) {
	set := m[k]
	if set == nil {
		set = make(map[string]struct{})
		m[k] = set
	}
	set[v] = struct{}{}
}
