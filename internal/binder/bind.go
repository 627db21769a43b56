package binder

import (
	"sort"

	"github.com/overcall/overcall/internal/diag"
	"github.com/overcall/overcall/internal/sig"
)

// BoundCall is the result of binding concrete arguments to one candidate's
// signature: parameter name to bound value, plus the concrete argument
// lists used to actually invoke the candidate.
//
// A variadic-positional parameter binds to an ordered []any, a
// variadic-keyword parameter to a map[string]any. Variadic parameters that
// collected nothing are left unbound.
type BoundCall struct {
	values map[string]any

	// Args and Kwargs are the (defaults-applied) call arguments the
	// winning candidate is invoked with.
	Args   []any
	Kwargs map[string]any
}

// Value returns the value bound to the named parameter. A parameter backed
// by an unsupplied default or an empty variadic slot is not bound.
func (b *BoundCall) Value(name string) (any, bool) {
	v, ok := b.values[name]
	return v, ok
}

// Bound reports whether the named parameter received a value.
func (b *BoundCall) Bound(name string) bool {
	_, ok := b.values[name]
	return ok
}

// Bind maps args/kwargs onto the candidate signature. The returned
// failure, if any, carries the conventional message for the first arity or
// name mismatch found ("too many positional arguments", "missing a
// required argument: 'x'", ...).
func Bind(args []any, kwargs map[string]any, candidate *sig.Signature) (*BoundCall, *diag.BindFailure) {
	bound, failure := bind(args, kwargs, candidate, false)
	if failure != nil {
		return nil, failure
	}
	bound.Args = args
	bound.Kwargs = kwargs
	return bound, nil
}

// bind is the shared binding loop. With partial set, missing required
// arguments are tolerated (the stub partial bind of ApplyDefaults); shape
// violations are still failures.
func bind(args []any, kwargs map[string]any, s *sig.Signature, partial bool) (*BoundCall, *diag.BindFailure) {
	values := make(map[string]any)
	usedKw := make(map[string]bool, len(kwargs))
	argIdx := 0
	sawVarPos := false
	sawVarKw := false

	for _, p := range s.Parameters() {
		switch p.Kind {
		case sig.PositionalOnly:
			if _, clash := kwargs[p.Name]; clash && !hasVarKw(s) {
				// A positional-only name arriving as a keyword can only be
				// absorbed by a **kwargs slot.
				return nil, failuref("got an unexpected keyword argument '%s'", p.Name)
			}
			if argIdx < len(args) {
				values[p.Name] = args[argIdx]
				argIdx++
			} else if !p.HasDefault && !partial {
				return nil, failuref("missing a required argument: '%s'", p.Name)
			}

		case sig.PositionalOrKeyword:
			if argIdx < len(args) {
				if _, clash := kwargs[p.Name]; clash {
					return nil, failuref("multiple values for argument '%s'", p.Name)
				}
				values[p.Name] = args[argIdx]
				argIdx++
			} else if v, ok := kwargs[p.Name]; ok {
				values[p.Name] = v
				usedKw[p.Name] = true
			} else if !p.HasDefault && !partial {
				return nil, failuref("missing a required argument: '%s'", p.Name)
			}

		case sig.VariadicPositional:
			sawVarPos = true
			if argIdx < len(args) {
				rest := make([]any, len(args)-argIdx)
				copy(rest, args[argIdx:])
				values[p.Name] = rest
				argIdx = len(args)
			}

		case sig.KeywordOnly:
			if v, ok := kwargs[p.Name]; ok {
				values[p.Name] = v
				usedKw[p.Name] = true
			} else if !p.HasDefault && !partial {
				return nil, failuref("missing a required keyword-only argument: '%s'", p.Name)
			}

		case sig.VariadicKeyword:
			sawVarKw = true
			surplus := make(map[string]any)
			for name, v := range kwargs {
				if !usedKw[name] && !consumedByName(s, name) {
					surplus[name] = v
					usedKw[name] = true
				}
			}
			if len(surplus) > 0 {
				values[p.Name] = surplus
			}
		}
	}

	if argIdx < len(args) && !sawVarPos {
		return nil, failuref("too many positional arguments")
	}
	if !sawVarKw {
		if name, ok := firstUnusedKeyword(kwargs, usedKw); ok {
			return nil, failuref("got an unexpected keyword argument '%s'", name)
		}
	}

	return &BoundCall{values: values}, nil
}

func failuref(format string, args ...any) *diag.BindFailure {
	f := diag.NewBindFailure(format, args...)
	return &f
}

func hasVarKw(s *sig.Signature) bool {
	for _, p := range s.Parameters() {
		if p.Kind == sig.VariadicKeyword {
			return true
		}
	}
	return false
}

// consumedByName reports whether the named keyword argument belongs to a
// keyword-eligible declared parameter (and so must not flow into **kwargs).
func consumedByName(s *sig.Signature, name string) bool {
	p, ok := s.Lookup(name)
	return ok && p.Kind.KeywordEligible()
}

// firstUnusedKeyword picks the alphabetically first surplus keyword for a
// deterministic failure message.
func firstUnusedKeyword(kwargs map[string]any, usedKw map[string]bool) (string, bool) {
	var names []string
	for name := range kwargs {
		if !usedKw[name] {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", false
	}
	sort.Strings(names)
	return names[0], true
}
