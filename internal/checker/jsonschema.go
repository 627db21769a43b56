package checker

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/overcall/overcall/internal/sig"
)

// schemaCache memoizes compiled schemas by TypeExpr key. Checks run on
// every call; schema compilation must not.
var schemaCache sync.Map // string -> *jsonschema.Schema

// checkJSONSchema validates the value's JSON image against a JSON Schema
// generated from the declared type. JSON has one number type, so numeric
// coercion int<->float follows JSON semantics; this is the most lenient
// backend.
func checkJSONSchema(value any, t sig.TypeExpr) (bool, string) {
	schema, err := compiledSchema(t)
	if err != nil {
		return false, fmt.Sprintf("invalid schema for %s: %v", t, err)
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Sprintf("value cannot be serialized: %v", err)
	}
	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return false, fmt.Sprintf("value cannot be serialized: %v", err)
	}

	if err := schema.Validate(instance); err != nil {
		return false, err.Error()
	}
	return true, ""
}

func compiledSchema(t sig.TypeExpr) (*jsonschema.Schema, error) {
	key := t.Key()
	if cached, ok := schemaCache.Load(key); ok {
		return cached.(*jsonschema.Schema), nil
	}

	doc, err := json.Marshal(schemaDoc(t))
	if err != nil {
		return nil, err
	}
	schema, err := jsonschema.CompileString("overcall.json", string(doc))
	if err != nil {
		return nil, err
	}
	schemaCache.Store(key, schema)
	return schema, nil
}

// schemaDoc renders a TypeExpr as a JSON Schema (draft 2020-12) document.
// Primitive names without a JSON equivalent render as the empty schema,
// which accepts anything.
func schemaDoc(t sig.TypeExpr) map[string]any {
	switch t := t.(type) {
	case sig.Prim:
		switch t.Name {
		case "int":
			return map[string]any{"type": "integer"}
		case "float":
			return map[string]any{"type": "number"}
		case "str":
			return map[string]any{"type": "string"}
		case "bool":
			return map[string]any{"type": "boolean"}
		default:
			return map[string]any{}
		}

	case sig.SequenceOf:
		return map[string]any{"type": "array", "items": schemaDoc(t.Elem)}

	case sig.MappingOf:
		return map[string]any{"type": "object", "additionalProperties": schemaDoc(t.Value)}

	case sig.TupleOf:
		prefix := make([]any, len(t.Elems))
		for i, e := range t.Elems {
			prefix[i] = schemaDoc(e)
		}
		return map[string]any{
			"type":        "array",
			"prefixItems": prefix,
			"items":       false,
			"minItems":    len(t.Elems),
		}

	case sig.RecordOf:
		props := make(map[string]any, len(t.Fields))
		required := make([]any, len(t.Fields))
		for i, f := range t.Fields {
			props[f.Name] = schemaDoc(f.Type)
			required[i] = f.Name
		}
		return map[string]any{
			"type":                 "object",
			"properties":           props,
			"required":             required,
			"additionalProperties": false,
		}

	case sig.Unpack:
		return schemaDoc(t.Inner)

	default:
		return map[string]any{}
	}
}
