// Package overcall resolves, at call time, which of several declared
// alternative implementations of a function should run for a concrete set
// of arguments, and type-checks the chosen implementation's parameters
// against the supplied values.
//
// Alternatives are declared explicitly, each with a signature value built
// at program wiring time:
//
//	overcall.Declare("greet", greetByName, overcall.MustSignature(
//		overcall.PosOnly("name", overcall.Str),
//	))
//	overcall.Declare("greet", greetByID, overcall.MustSignature(
//		overcall.PosOnly("user_id", overcall.Int),
//	))
//
//	greet := overcall.New("greet", overcall.MustSignature(
//		overcall.PosOnly("name_or_id", nil),
//	))
//	out, err := greet.Call("Julie") // runs greetByName
//
// Resolution is first-match in declaration order: no scoring, no
// most-specific heuristic. A call that no candidate accepts fails with
// *CompatibleOverloadNotFoundError carrying one reason per candidate; a
// dispatch point with no declared alternatives fails on first call with
// *NoCandidatesError.
package overcall

import (
	"github.com/overcall/overcall/internal/registry"
	"github.com/overcall/overcall/internal/resolver"
)

// Func is the outward-facing callable of one dispatch point. Create it
// with New; it is safe for concurrent use.
type Func struct {
	dp *resolver.DispatchPoint
}

// New creates the dispatch wrapper for a declared overload set. The stub
// signature is the outward-facing declaration: its parameters are
// typically untyped placeholders and it is the sole source of default
// values. Candidate discovery is lazy; it happens on the first call and is
// cached for the process lifetime.
func New(name string, stub *Signature, opts ...Option) *Func {
	cfg := config{backend: BackendBasic, registry: registry.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Func{dp: resolver.New(name, stub, cfg.backend, cfg.registry)}
}

// Declare registers one alternative implementation for the named dispatch
// point on the process-wide registry, in declaration order.
func Declare(name string, impl Impl, s *Signature) {
	registry.Default().Declare(name, impl, s)
}

// Call resolves and invokes the first compatible candidate for a purely
// positional call.
func (f *Func) Call(args ...any) (any, error) {
	return f.dp.Call(args, nil)
}

// CallKw resolves and invokes the first compatible candidate for a call
// with positional and keyword arguments.
func (f *Func) CallKw(args []any, kwargs map[string]any) (any, error) {
	return f.dp.Call(args, kwargs)
}

// Explain runs the resolution decision procedure without invoking the
// winning candidate.
func (f *Func) Explain(args []any, kwargs map[string]any) (*Explanation, error) {
	return f.dp.Explain(args, kwargs)
}
