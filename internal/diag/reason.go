package diag

import (
	"fmt"

	"github.com/overcall/overcall/internal/sig"
)

// Reason is a sealed interface over the ways one candidate can reject a
// call. Only BindFailure and TypeMismatch implement it.
type Reason interface {
	reason() // Sealed - only these types implement it

	// Describe returns the "because ..." clause of the rendered report.
	Describe() string
}

// BindFailure records an arity or name mismatch found while mapping call
// arguments onto a candidate's parameters.
type BindFailure struct {
	Message string
}

func (BindFailure) reason() {}

// Describe implements Reason.
func (r BindFailure) Describe() string { return r.Message }

// NewBindFailure creates a BindFailure.
func NewBindFailure(format string, args ...any) BindFailure {
	return BindFailure{Message: fmt.Sprintf(format, args...)}
}

// TypeMismatch records a relevant parameter whose bound value violates its
// declared type.
type TypeMismatch struct {
	// Parameter is the violating parameter's name.
	Parameter string

	// Declared is the effective type the value was checked against.
	Declared sig.TypeExpr

	// Value is the display form of the offending value.
	Value string

	// Detail is the backend-specific explanation, empty if the backend has
	// nothing beyond the declared/actual pair.
	Detail string
}

func (TypeMismatch) reason() {}

// Describe implements Reason.
func (r TypeMismatch) Describe() string {
	msg := fmt.Sprintf("There is a type hint mismatch for argument %s: value %s is not compatible with %s",
		r.Parameter, r.Value, typeString(r.Declared))
	if r.Detail != "" {
		msg += " (" + r.Detail + ")"
	}
	return msg
}

func typeString(t sig.TypeExpr) string {
	if t == nil {
		return "<untyped>"
	}
	return t.String()
}

// FormatValue renders a bound value for inclusion in a TypeMismatch.
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// CandidateIncompatibility pairs one candidate's signature with the reason
// it rejected the call.
type CandidateIncompatibility struct {
	Sig    *sig.Signature
	Reason Reason
}
