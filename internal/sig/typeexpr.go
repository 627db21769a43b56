package sig

import (
	"strings"
)

// TypeExpr is a sealed interface representing declared parameter types.
// Only Prim, SequenceOf, MappingOf, TupleOf, RecordOf and Unpack implement
// it. A nil TypeExpr means the parameter is untyped and is never checked.
type TypeExpr interface {
	typeExpr() // Sealed - only these types implement it

	// Key returns a canonical, collision-free encoding of the type.
	// Two TypeExprs denote the same declared type iff their keys are equal.
	// The relevant-parameter analysis builds its distinct-type sets over
	// these keys.
	Key() string

	// String returns the display rendering used in signature reprs and
	// incompatibility reports.
	String() string
}

// Prim is a primitive (or otherwise atomic, nominal) type such as int,
// str, float, bool or any.
type Prim struct {
	Name string
}

func (Prim) typeExpr() {}

func (t Prim) Key() string { return "prim:" + t.Name }

func (t Prim) String() string { return t.Name }

// Predeclared primitives. Any is compatible with every value.
var (
	Int   = Prim{Name: "int"}
	Float = Prim{Name: "float"}
	Str   = Prim{Name: "str"}
	Bool  = Prim{Name: "bool"}
	Any   = Prim{Name: "any"}
)

// SequenceOf is a homogeneous ordered sequence type.
type SequenceOf struct {
	Elem TypeExpr
}

func (SequenceOf) typeExpr() {}

func (t SequenceOf) Key() string { return "seq[" + keyOf(t.Elem) + "]" }

func (t SequenceOf) String() string { return "Sequence[" + stringOf(t.Elem) + "]" }

// MappingOf is a mapping from string keys to one value type.
type MappingOf struct {
	Value TypeExpr
}

func (MappingOf) typeExpr() {}

func (t MappingOf) Key() string { return "map[" + keyOf(t.Value) + "]" }

func (t MappingOf) String() string { return "Mapping[str, " + stringOf(t.Value) + "]" }

// TupleOf is a heterogeneous fixed-arity tuple type.
type TupleOf struct {
	Elems []TypeExpr
}

func (TupleOf) typeExpr() {}

func (t TupleOf) Key() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = keyOf(e)
	}
	return "tuple[" + strings.Join(parts, ",") + "]"
}

func (t TupleOf) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = stringOf(e)
	}
	return "tuple[" + strings.Join(parts, ", ") + "]"
}

// Field is one named field of a RecordOf type. Field order is the
// declaration order and is part of the display rendering, but not of type
// identity: Key() sorts fields by name.
type Field struct {
	Name string
	Type TypeExpr
}

// RecordOf is a closed record type with named, typed fields. Every field is
// required.
type RecordOf struct {
	Fields []Field
}

func (RecordOf) typeExpr() {}

func (t RecordOf) Key() string {
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		parts[i] = f.Name + ":" + keyOf(f.Type)
	}
	// Sort for identity: {a: int, b: str} and {b: str, a: int} are the
	// same record type.
	for i := 1; i < len(parts); i++ {
		for j := i; j > 0 && parts[j] < parts[j-1]; j-- {
			parts[j], parts[j-1] = parts[j-1], parts[j]
		}
	}
	return "record{" + strings.Join(parts, ",") + "}"
}

func (t RecordOf) String() string {
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		parts[i] = f.Name + ": " + stringOf(f.Type)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// FieldType returns the declared type of the named field.
func (t RecordOf) FieldType(name string) (TypeExpr, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}

// Unpack marks a variadic parameter's type as the spread of a structured
// type: Unpack{TupleOf{...}} on a variadic-positional parameter binds the
// tuple's element types position by position; Unpack{RecordOf{...}} on a
// variadic-keyword parameter binds the record's field types by name.
type Unpack struct {
	Inner TypeExpr
}

func (Unpack) typeExpr() {}

func (t Unpack) Key() string { return "unpack[" + keyOf(t.Inner) + "]" }

func (t Unpack) String() string { return "Unpack[" + stringOf(t.Inner) + "]" }

// UntypedKey is the distinct-type bucket entry for parameters with no
// declared type. An untyped parameter and a typed one still count as two
// distinct declared types for relevance analysis.
const UntypedKey = "<untyped>"

func keyOf(t TypeExpr) string {
	if t == nil {
		return UntypedKey
	}
	return t.Key()
}

func stringOf(t TypeExpr) string {
	if t == nil {
		return "<untyped>"
	}
	return t.String()
}

// KeyOf returns t.Key(), or UntypedKey for a nil TypeExpr.
func KeyOf(t TypeExpr) string { return keyOf(t) }
