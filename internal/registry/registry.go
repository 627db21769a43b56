package registry

import (
	"sync"

	"github.com/overcall/overcall/internal/sig"
)

// Impl is one alternative implementation of an overloaded function. The
// resolver invokes it with the reconstituted positional and keyword
// argument lists of the winning bind.
type Impl func(args []any, kwargs map[string]any) (any, error)

// Candidate pairs an implementation with its declared signature.
type Candidate struct {
	Impl Impl
	Sig  *sig.Signature
}

// Mechanism identifies a revision of the declaration mechanism. Candidates
// declared under an older revision are invisible to Discover; the error
// hint tells the author to re-declare through the current mechanism.
type Mechanism int

// CurrentMechanism is the declaration mechanism revision this runtime
// understands.
const CurrentMechanism Mechanism = 2

type entry struct {
	candidates []Candidate
	mechanism  Mechanism
}

// Registry owns the declaration-ordered candidate lists, keyed by dispatch
// point name. The zero value is not usable; call NewRegistry.
//
// Declarations happen at program wiring time, discovery on first call of a
// dispatch point; the mutex makes the check-then-create patterns of callers
// safe under concurrent first calls.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry

	// discoverCount tracks Discover calls per name. Resolution memoizes
	// discovery, so tests assert this stays at one per dispatch point.
	discoverCount map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries:       make(map[string]*entry),
		discoverCount: make(map[string]int),
	}
}

// Declare registers one alternative implementation for the named dispatch
// point, appended in declaration order.
func (r *Registry) Declare(name string, impl Impl, s *sig.Signature) {
	r.declare(name, impl, s, CurrentMechanism)
}

// DeclareUnder registers a candidate under an explicit mechanism revision.
// Exists for forward/backward compatibility shims and for tests of the
// discovery error hints; normal code uses Declare.
func (r *Registry) DeclareUnder(name string, impl Impl, s *sig.Signature, m Mechanism) {
	r.declare(name, impl, s, m)
}

func (r *Registry) declare(name string, impl Impl, s *sig.Signature, m Mechanism) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.entries[name]
	if e == nil {
		e = &entry{}
		r.entries[name] = e
	}
	if m > e.mechanism {
		e.mechanism = m
	}
	if m == CurrentMechanism {
		e.candidates = append(e.candidates, Candidate{Impl: impl, Sig: s})
	}
	// Declarations under an older mechanism are recorded (for the hint in
	// Discover) but never enumerated.
}

// Discover returns the declared candidates for the named dispatch point in
// declaration order. An empty candidate set is an error: the hint
// distinguishes declarations made through an unsupported mechanism revision
// from a missing declaration.
func (r *Registry) Discover(name string) ([]Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.discoverCount[name]++

	e := r.entries[name]
	if e == nil || len(e.candidates) == 0 {
		staleMechanism := e != nil && e.mechanism != 0 && e.mechanism < CurrentMechanism
		return nil, NewNoCandidatesError(name, staleMechanism)
	}

	out := make([]Candidate, len(e.candidates))
	copy(out, e.candidates)
	return out, nil
}

// DiscoverCount returns how many times Discover ran for the named dispatch
// point. Observable for idempotence tests.
func (r *Registry) DiscoverCount(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.discoverCount[name]
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }
