package checker

import (
	"fmt"

	"github.com/overcall/overcall/internal/diag"
	"github.com/overcall/overcall/internal/sig"
)

// Backend selects one of the interchangeable type-checking backends. The
// enumeration is closed: a dispatch point fixes its backend at wrapper
// construction time and never changes it.
type Backend uint8

const (
	// BackendBasic is the minimal structural checker.
	BackendBasic Backend = iota

	// BackendCUE validates through CUE schema unification.
	BackendCUE

	// BackendJSONSchema validates the value's JSON image against a
	// generated JSON Schema.
	BackendJSONSchema
)

var backendNames = [...]string{
	BackendBasic:      "basic",
	BackendCUE:        "cue",
	BackendJSONSchema: "jsonschema",
}

func (b Backend) String() string {
	if int(b) < len(backendNames) {
		return backendNames[b]
	}
	return "unknown"
}

// ParseBackend resolves a backend name from configuration input.
func ParseBackend(name string) (Backend, error) {
	for b, n := range backendNames {
		if n == name {
			return Backend(b), nil
		}
	}
	return 0, fmt.Errorf("unknown type-checking backend %q (want one of basic, cue, jsonschema)", name)
}

// Check reports whether value is compatible with the declared type under
// the selected backend. A nil result means compatible. An untyped
// parameter (nil TypeExpr) and the any type are compatible with every
// value.
func Check(value any, t sig.TypeExpr, paramName string, backend Backend) *diag.TypeMismatch {
	if t == nil || isAny(t) {
		return nil
	}

	var ok bool
	var detail string
	switch backend {
	case BackendCUE:
		ok, detail = checkCUE(value, t)
	case BackendJSONSchema:
		ok, detail = checkJSONSchema(value, t)
	default:
		ok, detail = checkBasic(value, t)
	}
	if ok {
		return nil
	}

	return &diag.TypeMismatch{
		Parameter: paramName,
		Declared:  t,
		Value:     diag.FormatValue(value),
		Detail:    detail,
	}
}

func isAny(t sig.TypeExpr) bool {
	p, ok := t.(sig.Prim)
	return ok && p.Name == sig.Any.Name
}
