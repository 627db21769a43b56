package checker

import (
	"fmt"
	"reflect"

	"github.com/overcall/overcall/internal/sig"
)

// checkBasic is the minimal structural backend. Primitives are matched by
// reflection kind, containers are walked recursively, and any other
// primitive name falls back to a nominal match against the value's Go type
// name.
func checkBasic(value any, t sig.TypeExpr) (bool, string) {
	if value == nil {
		return false, "value is nil"
	}

	switch t := t.(type) {
	case sig.Prim:
		return checkBasicPrim(value, t)

	case sig.SequenceOf:
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return false, fmt.Sprintf("%T is not a sequence", value)
		}
		for i := 0; i < rv.Len(); i++ {
			if ok, detail := checkBasic(rv.Index(i).Interface(), t.Elem); !ok {
				return false, fmt.Sprintf("element %d: %s", i, detail)
			}
		}
		return true, ""

	case sig.MappingOf:
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
			return false, fmt.Sprintf("%T is not a string-keyed mapping", value)
		}
		iter := rv.MapRange()
		for iter.Next() {
			if ok, detail := checkBasic(iter.Value().Interface(), t.Value); !ok {
				return false, fmt.Sprintf("key %q: %s", iter.Key().String(), detail)
			}
		}
		return true, ""

	case sig.TupleOf:
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return false, fmt.Sprintf("%T is not a sequence", value)
		}
		if rv.Len() != len(t.Elems) {
			return false, fmt.Sprintf("expected %d elements, got %d", len(t.Elems), rv.Len())
		}
		for i, elem := range t.Elems {
			if ok, detail := checkBasic(rv.Index(i).Interface(), elem); !ok {
				return false, fmt.Sprintf("element %d: %s", i, detail)
			}
		}
		return true, ""

	case sig.RecordOf:
		m, ok := value.(map[string]any)
		if !ok {
			return false, fmt.Sprintf("%T is not a record", value)
		}
		for _, f := range t.Fields {
			fv, present := m[f.Name]
			if !present {
				return false, fmt.Sprintf("missing field %q", f.Name)
			}
			if ok, detail := checkBasic(fv, f.Type); !ok {
				return false, fmt.Sprintf("field %q: %s", f.Name, detail)
			}
		}
		// The record is closed: stray fields are violations.
		for name := range m {
			if _, declared := t.FieldType(name); !declared {
				return false, fmt.Sprintf("unexpected field %q", name)
			}
		}
		return true, ""

	case sig.Unpack:
		// Effective-type resolution normally strips the marker before the
		// oracle runs; be permissive if one slips through.
		return checkBasic(value, t.Inner)

	default:
		return false, "unsupported type expression"
	}
}

func checkBasicPrim(value any, t sig.Prim) (bool, string) {
	rv := reflect.ValueOf(value)
	kind := rv.Kind()

	switch t.Name {
	case "int":
		if isIntKind(kind) {
			return true, ""
		}
	case "float":
		if kind == reflect.Float32 || kind == reflect.Float64 {
			return true, ""
		}
	case "str":
		if kind == reflect.String {
			return true, ""
		}
	case "bool":
		if kind == reflect.Bool {
			return true, ""
		}
	default:
		// Nominal fallback for user-defined primitives: match the Go type
		// name.
		rt := rv.Type()
		if rt.Name() == t.Name || rt.String() == t.Name {
			return true, ""
		}
	}
	return false, fmt.Sprintf("%T is not %s", value, t.Name)
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
