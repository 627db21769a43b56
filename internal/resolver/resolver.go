package resolver

import (
	"sync/atomic"

	"github.com/overcall/overcall/internal/analysis"
	"github.com/overcall/overcall/internal/binder"
	"github.com/overcall/overcall/internal/checker"
	"github.com/overcall/overcall/internal/diag"
	"github.com/overcall/overcall/internal/registry"
	"github.com/overcall/overcall/internal/sig"
)

// DispatchPoint is the call-time state of one overloaded function: the
// outward-facing stub signature, the backend selection, and the lazily
// computed inspection snapshot.
type DispatchPoint struct {
	name    string
	stub    *sig.Signature
	backend checker.Backend
	reg     *registry.Registry

	// snapshot is nil until the first call, then an atomically published,
	// immutable inspection reused for the process lifetime. There is no
	// invalidation path.
	snapshot atomic.Pointer[inspection]

	// checkAll disables the relevant-parameter optimization and checks
	// every typed parameter. Reference mode for equivalence tests only;
	// it must never change resolution outcome.
	checkAll bool
}

// inspection holds everything computed on first call: the discovered
// candidates, the relevant-parameter set and whether the stub declares
// defaults worth back-filling.
type inspection struct {
	candidates      []registry.Candidate
	relevant        map[string]struct{}
	stubHasDefaults bool
}

// New creates a dispatch point. Discovery is lazy: an empty candidate set
// only surfaces on the first call.
func New(name string, stub *sig.Signature, backend checker.Backend, reg *registry.Registry) *DispatchPoint {
	return &DispatchPoint{name: name, stub: stub, backend: backend, reg: reg}
}

// NewCheckAll creates a dispatch point in check-everything reference mode.
func NewCheckAll(name string, stub *sig.Signature, backend checker.Backend, reg *registry.Registry) *DispatchPoint {
	d := New(name, stub, backend, reg)
	d.checkAll = true
	return d
}

// Name returns the dispatch point's display name.
func (d *DispatchPoint) Name() string { return d.name }

// inspect returns the cached inspection, computing and publishing it on
// first use. Compute fully, then store: two goroutines racing the first
// call may both run the pure analysis, but neither can observe a
// half-built snapshot.
func (d *DispatchPoint) inspect() (*inspection, error) {
	if snap := d.snapshot.Load(); snap != nil {
		return snap, nil
	}

	candidates, err := d.reg.Discover(d.name)
	if err != nil {
		return nil, err
	}
	sigs := make([]*sig.Signature, len(candidates))
	for i, c := range candidates {
		sigs[i] = c.Sig
	}

	snap := &inspection{
		candidates:      candidates,
		relevant:        analysis.RelevantParameters(sigs),
		stubHasDefaults: d.stub != nil && d.stub.HasDefaults(),
	}
	d.snapshot.Store(snap)
	return snap, nil
}

// Call resolves and invokes the first compatible candidate, returning its
// result. It fails with the registry's no-candidates error on first call
// of an undeclared dispatch point, or with
// *CompatibleOverloadNotFoundError when every candidate rejects the call.
func (d *DispatchPoint) Call(args []any, kwargs map[string]any) (any, error) {
	insp, err := d.inspect()
	if err != nil {
		return nil, err
	}

	incompatibilities := make([]diag.CandidateIncompatibility, 0, len(insp.candidates))
	for _, cand := range insp.candidates {
		bound, reason := d.tryCandidate(insp, cand, args, kwargs)
		if reason != nil {
			incompatibilities = append(incompatibilities, diag.CandidateIncompatibility{
				Sig:    cand.Sig,
				Reason: reason,
			})
			continue
		}
		return cand.Impl(bound.Args, bound.Kwargs)
	}

	return nil, NewCompatibleOverloadNotFoundError(d.name, incompatibilities)
}

// Explanation is the outcome of a dry-run resolution.
type Explanation struct {
	// Matched is the declaration-order index of the winning candidate, or
	// -1 if resolution exhausted all candidates.
	Matched int

	// Sig is the winning candidate's signature when Matched >= 0.
	Sig *sig.Signature

	// Report carries every candidate's rejection reason when Matched < 0.
	Report *diag.Report
}

// Explain runs the exact resolution decision procedure without invoking
// the winning candidate.
func (d *DispatchPoint) Explain(args []any, kwargs map[string]any) (*Explanation, error) {
	insp, err := d.inspect()
	if err != nil {
		return nil, err
	}

	incompatibilities := make([]diag.CandidateIncompatibility, 0, len(insp.candidates))
	for i, cand := range insp.candidates {
		_, reason := d.tryCandidate(insp, cand, args, kwargs)
		if reason != nil {
			incompatibilities = append(incompatibilities, diag.CandidateIncompatibility{
				Sig:    cand.Sig,
				Reason: reason,
			})
			continue
		}
		return &Explanation{Matched: i, Sig: cand.Sig}, nil
	}

	return &Explanation{
		Matched: -1,
		Report:  &diag.Report{Func: d.name, Incompatibilities: incompatibilities},
	}, nil
}

// tryCandidate binds and type-checks one candidate. A nil reason means the
// candidate accepts the call; bound then carries the argument lists to
// invoke it with.
func (d *DispatchPoint) tryCandidate(insp *inspection, cand registry.Candidate, args []any, kwargs map[string]any) (*binder.BoundCall, diag.Reason) {
	if insp.stubHasDefaults {
		args, kwargs = binder.ApplyDefaults(args, kwargs, d.stub, cand.Sig)
	}

	bound, bindFailure := binder.Bind(args, kwargs, cand.Sig)
	if bindFailure != nil {
		return nil, *bindFailure
	}

	// Parameters are checked in the candidate's declaration order so the
	// first reported mismatch is deterministic.
	for _, p := range cand.Sig.Parameters() {
		if !d.checkAll {
			if _, relevant := insp.relevant[p.Name]; !relevant {
				continue
			}
		}
		value, ok := bound.Value(p.Name)
		if !ok {
			continue
		}
		t := effectiveType(p)
		if t == nil {
			// Untyped parameters are automatically compatible.
			continue
		}
		if mismatch := checker.Check(value, t, p.Name, d.backend); mismatch != nil {
			// First mismatch rejects the candidate; later parameters are
			// not checked.
			return nil, *mismatch
		}
	}

	return bound, nil
}

// effectiveType resolves the type a bound value is checked against. A
// variadic-positional parameter collects an ordered sequence, so its
// declared element type T becomes sequence-of-T, and an unpacked tuple is
// checked as that tuple. A variadic-keyword parameter collects a string
// mapping, so T becomes mapping-of-T and an unpacked record is checked as
// that record.
func effectiveType(p sig.Parameter) sig.TypeExpr {
	if p.Type == nil {
		return nil
	}

	switch p.Kind {
	case sig.VariadicPositional:
		if unpack, ok := p.Type.(sig.Unpack); ok {
			if tuple, ok := unpack.Inner.(sig.TupleOf); ok {
				return tuple
			}
			return sig.SequenceOf{Elem: unpack.Inner}
		}
		return sig.SequenceOf{Elem: p.Type}

	case sig.VariadicKeyword:
		if unpack, ok := p.Type.(sig.Unpack); ok {
			return unpack.Inner
		}
		return sig.MappingOf{Value: p.Type}

	default:
		return p.Type
	}
}
