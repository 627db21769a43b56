package sig

import (
	"fmt"
	"strings"
)

// Signature is the ordered parameter list of one callable, plus an optional
// declared result type. Signatures are immutable after construction.
//
// The result type is carried for display only. Overload resolution never
// infers or checks return types.
type Signature struct {
	params []Parameter
	byName map[string]int // name -> index into params
	result TypeExpr
}

// kindRank enforces declaration ordering: positional-only first, then
// positional-or-keyword, one optional variadic-positional, keyword-only,
// and finally one optional variadic-keyword.
var kindRank = map[ParameterKind]int{
	PositionalOnly:      0,
	PositionalOrKeyword: 1,
	VariadicPositional:  2,
	KeywordOnly:         3,
	VariadicKeyword:     4,
}

// NewSignature validates and constructs a signature. Parameter positions
// are assigned from declaration order.
func NewSignature(params ...Parameter) (*Signature, error) {
	s := &Signature{
		params: make([]Parameter, len(params)),
		byName: make(map[string]int, len(params)),
	}

	lastRank := -1
	seenVarPos := false
	seenVarKw := false
	defaultSeen := false

	for i, p := range params {
		if p.Name == "" {
			return nil, fmt.Errorf("parameter %d has no name", i)
		}
		if _, dup := s.byName[p.Name]; dup {
			return nil, fmt.Errorf("duplicate parameter name %q", p.Name)
		}

		rank, ok := kindRank[p.Kind]
		if !ok {
			return nil, fmt.Errorf("parameter %q has invalid kind", p.Name)
		}
		if rank < lastRank {
			return nil, fmt.Errorf("parameter %q (%s) declared after a %s parameter",
				p.Name, p.Kind, kindNames[lastRankKind(lastRank)])
		}
		lastRank = rank

		switch p.Kind {
		case VariadicPositional:
			if seenVarPos {
				return nil, fmt.Errorf("multiple variadic-positional parameters (%q)", p.Name)
			}
			seenVarPos = true
			if p.HasDefault {
				return nil, fmt.Errorf("variadic parameter %q cannot have a default", p.Name)
			}
		case VariadicKeyword:
			if seenVarKw {
				return nil, fmt.Errorf("multiple variadic-keyword parameters (%q)", p.Name)
			}
			seenVarKw = true
			if p.HasDefault {
				return nil, fmt.Errorf("variadic parameter %q cannot have a default", p.Name)
			}
		case PositionalOnly, PositionalOrKeyword:
			// A required positional parameter cannot follow one with a
			// default.
			if p.HasDefault {
				defaultSeen = true
			} else if defaultSeen {
				return nil, fmt.Errorf("parameter %q without default follows a parameter with one", p.Name)
			}
		}

		p.Position = i
		s.params[i] = p
		s.byName[p.Name] = i
	}

	return s, nil
}

func lastRankKind(rank int) ParameterKind {
	for k, r := range kindRank {
		if r == rank {
			return k
		}
	}
	return PositionalOrKeyword
}

// MustSignature is NewSignature that panics on invalid input. Intended for
// statically-known signatures built at program wiring time.
func MustSignature(params ...Parameter) *Signature {
	s, err := NewSignature(params...)
	if err != nil {
		panic(fmt.Sprintf("sig: invalid signature: %v", err))
	}
	return s
}

// WithResult returns a copy of the signature carrying a declared result
// type for display.
func (s *Signature) WithResult(t TypeExpr) *Signature {
	out := *s
	out.result = t
	return &out
}

// Parameters returns the parameter list in declaration order. The returned
// slice must not be mutated.
func (s *Signature) Parameters() []Parameter { return s.params }

// Lookup returns the named parameter.
func (s *Signature) Lookup(name string) (Parameter, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Parameter{}, false
	}
	return s.params[i], true
}

// Has reports whether the signature declares the named parameter.
func (s *Signature) Has(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Result returns the declared result type, or nil.
func (s *Signature) Result() TypeExpr { return s.result }

// HasDefaults reports whether any parameter declares a default value.
func (s *Signature) HasDefaults() bool {
	for _, p := range s.params {
		if p.HasDefault {
			return true
		}
	}
	return false
}

// String renders the signature in the conventional form quoted by
// incompatibility reports, e.g.
//
//	(name: str, /, n: int = 3, *rest: int, flag: bool, **opts: int) -> int
func (s *Signature) String() string {
	var b strings.Builder
	b.WriteByte('(')

	wrote := 0
	emit := func(text string) {
		if wrote > 0 {
			b.WriteString(", ")
		}
		b.WriteString(text)
		wrote++
	}

	posOnlyOpen := false
	starEmitted := false
	for _, p := range s.params {
		if posOnlyOpen && p.Kind != PositionalOnly {
			// Close the positional-only section before this parameter and
			// before any keyword-only star.
			emit("/")
			posOnlyOpen = false
		}

		switch p.Kind {
		case PositionalOnly:
			posOnlyOpen = true
		case VariadicPositional:
			starEmitted = true
		case KeywordOnly:
			if !starEmitted {
				emit("*")
				starEmitted = true
			}
		}

		var t strings.Builder
		switch p.Kind {
		case VariadicPositional:
			t.WriteByte('*')
		case VariadicKeyword:
			t.WriteString("**")
		}
		t.WriteString(p.Name)
		if p.Type != nil {
			t.WriteString(": ")
			t.WriteString(p.Type.String())
		}
		if p.HasDefault {
			if p.Type != nil {
				t.WriteString(" = ")
			} else {
				t.WriteString("=")
			}
			t.WriteString(renderValue(p.Default))
		}
		emit(t.String())
	}
	if posOnlyOpen {
		emit("/")
	}

	b.WriteByte(')')
	if s.result != nil {
		b.WriteString(" -> ")
		b.WriteString(s.result.String())
	}
	return b.String()
}

// renderValue renders a default value for display.
func renderValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
