package binder

import (
	"github.com/overcall/overcall/internal/sig"
)

// ApplyDefaults back-fills stub-declared defaults into the raw call and
// re-derives the concrete argument lists for one candidate.
//
// The raw call is partially bound against the stub signature, unsupplied
// defaulted parameters are filled in, and every bound stub parameter is
// then routed into the candidate-facing positional or keyword list
// according to how the candidate classifies that parameter. A parameter may
// be positional-or-keyword on the stub but keyword-only in a particular
// candidate (or absent from it entirely, where it can still satisfy a
// variadic-keyword slot); the candidate's classification wins.
//
// Call-supplied values always flow through. A value that exists only
// because a stub default filled it in is routed only where the candidate
// can actually accept it; a candidate without the parameter (and without a
// variadic-keyword slot to absorb it) simply never sees that default.
//
// If the partial bind fails - for example required stub arguments are
// missing so defaults cannot be placed - the raw arguments are returned
// unchanged. That soft fail is deliberate: the candidate bind that follows
// will produce the real diagnosis.
func ApplyDefaults(args []any, kwargs map[string]any, stub, candidate *sig.Signature) ([]any, map[string]any) {
	bound, failure := bind(args, kwargs, stub, true)
	if failure != nil {
		return args, kwargs
	}

	supplied := make(map[string]bool, len(bound.values))
	for name := range bound.values {
		supplied[name] = true
	}
	for _, p := range stub.Parameters() {
		if p.HasDefault && !bound.Bound(p.Name) {
			bound.values[p.Name] = p.Default
		}
	}

	candidateVarKw := hasVarKw(candidate)
	outArgs := make([]any, 0, len(args))
	outKwargs := make(map[string]any, len(kwargs))

	routeKeyword := func(name string, v any) {
		if !supplied[name] && !acceptsKeyword(candidate, name) && !candidateVarKw {
			// Unacceptable default: the candidate has no slot for it.
			return
		}
		outKwargs[name] = v
	}

	for _, p := range stub.Parameters() {
		v, ok := bound.Value(p.Name)
		if !ok {
			continue
		}
		switch p.Kind {
		case sig.PositionalOnly:
			outArgs = append(outArgs, v)

		case sig.VariadicPositional:
			outArgs = append(outArgs, v.([]any)...)

		case sig.PositionalOrKeyword:
			if routePositional(candidate, p.Name) {
				outArgs = append(outArgs, v)
			} else {
				routeKeyword(p.Name, v)
			}

		case sig.KeywordOnly:
			routeKeyword(p.Name, v)

		case sig.VariadicKeyword:
			// Surplus keywords are call-supplied by construction.
			for name, kv := range v.(map[string]any) {
				outKwargs[name] = kv
			}
		}
	}

	return outArgs, outKwargs
}

// routePositional decides whether a stub positional-or-keyword parameter
// travels positionally for this candidate. It does iff the candidate
// declares the name as a positional-eligible parameter; a keyword-only or
// undeclared name travels as a keyword, where it can still match the
// candidate's keyword-only or variadic-keyword slots.
func routePositional(candidate *sig.Signature, name string) bool {
	p, ok := candidate.Lookup(name)
	return ok && p.Kind.PositionalEligible()
}

// acceptsKeyword reports whether the candidate can bind the name as a
// keyword argument through a declared parameter.
func acceptsKeyword(candidate *sig.Signature, name string) bool {
	p, ok := candidate.Lookup(name)
	return ok && p.Kind.KeywordEligible()
}
