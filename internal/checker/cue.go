package checker

import (
	"fmt"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/overcall/overcall/internal/sig"
)

// cueCtx is the process-wide CUE context. A cue.Context is safe for
// concurrent use, and schemas cached from it stay usable for the process
// lifetime.
var cueCtx = cuecontext.New()

// cueSchemaCache memoizes compiled schemas by TypeExpr key, mirroring the
// JSON Schema backend: checks run on every call, compilation must not.
var cueSchemaCache sync.Map // string -> cue.Value

// checkCUE validates the value by unifying it with a CUE schema compiled
// from the declared type. Uses the CUE SDK's Go API directly (not a CLI
// subprocess).
func checkCUE(value any, t sig.TypeExpr) (bool, string) {
	schema, err := compiledCUESchema(t)
	if err != nil {
		return false, fmt.Sprintf("invalid schema for %s: %v", t, err)
	}

	var encoded cue.Value
	if value == nil {
		encoded = cueCtx.CompileString("null")
	} else {
		encoded = cueCtx.Encode(value)
	}
	if err := encoded.Err(); err != nil {
		return false, fmt.Sprintf("value cannot be encoded: %v", err)
	}

	if err := schema.Unify(encoded).Validate(cue.Concrete(true)); err != nil {
		return false, err.Error()
	}
	return true, ""
}

func compiledCUESchema(t sig.TypeExpr) (cue.Value, error) {
	key := t.Key()
	if cached, ok := cueSchemaCache.Load(key); ok {
		return cached.(cue.Value), nil
	}

	schema := cueCtx.CompileString(cueSource(t))
	if err := schema.Err(); err != nil {
		return cue.Value{}, err
	}
	cueSchemaCache.Store(key, schema)
	return schema, nil
}

// cueSource renders a TypeExpr as CUE schema source. Primitive names
// without a CUE equivalent render as top (the backend then accepts any
// value for them; backends are allowed to differ in strictness).
func cueSource(t sig.TypeExpr) string {
	switch t := t.(type) {
	case sig.Prim:
		switch t.Name {
		case "int":
			return "int"
		case "float":
			return "number"
		case "str":
			return "string"
		case "bool":
			return "bool"
		default:
			return "_"
		}

	case sig.SequenceOf:
		return "[..." + cueSource(t.Elem) + "]"

	case sig.MappingOf:
		return "{[string]: " + cueSource(t.Value) + "}"

	case sig.TupleOf:
		parts := make([]string, len(t.Elems))
		for i, e := range t.Elems {
			parts[i] = cueSource(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"

	case sig.RecordOf:
		parts := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			parts[i] = fmt.Sprintf("%s!: %s", f.Name, cueSource(f.Type))
		}
		return "close({" + strings.Join(parts, ", ") + "})"

	case sig.Unpack:
		return cueSource(t.Inner)

	default:
		return "_"
	}
}
