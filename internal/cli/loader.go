package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/overcall/overcall/internal/checker"
	"github.com/overcall/overcall/internal/diag"
	"github.com/overcall/overcall/internal/registry"
	"github.com/overcall/overcall/internal/sig"
)

// CaseFile is the YAML description of one dispatch point plus the call (or
// values) to inspect.
//
//	function: find_user_balance
//	backend: basic
//	stub:
//	  params:
//	    - {name: user_id, kind: keyword-only, default: ~}
//	    - {name: name, kind: keyword-only, default: ~}
//	overloads:
//	  - params: [{name: name, kind: keyword-only, type: str}]
//	    result: int
//	  - params: [{name: user_id, kind: keyword-only, type: int}]
//	    result: int
//	call:
//	  kwargs: {name: Julie}
type CaseFile struct {
	Function  string          `yaml:"function"`
	Backend   string          `yaml:"backend"`
	Stub      SignatureSpec   `yaml:"stub"`
	Overloads []SignatureSpec `yaml:"overloads"`
	Call      CallSpec        `yaml:"call"`
	Checks    []CheckSpec     `yaml:"checks"`
}

// SignatureSpec describes one signature in a case file.
type SignatureSpec struct {
	Params []ParamSpec `yaml:"params"`
	Result string      `yaml:"result"`
}

// ParamSpec describes one parameter. Kind defaults to
// positional-or-keyword; a present default key (including an explicit
// null) marks the parameter as defaulted.
type ParamSpec struct {
	Name    string    `yaml:"name"`
	Kind    string    `yaml:"kind"`
	Type    string    `yaml:"type"`
	Default yaml.Node `yaml:"default"`
}

// CallSpec describes the concrete call to resolve.
type CallSpec struct {
	Args   []any          `yaml:"args"`
	Kwargs map[string]any `yaml:"kwargs"`
}

// CheckSpec is one value/type pair for the check command.
type CheckSpec struct {
	Value any    `yaml:"value"`
	Type  string `yaml:"type"`
}

// LoadedCase is a CaseFile compiled into model values: the stub and
// overload signatures, the selected backend, and a registry populated with
// inert implementations suitable for dry-run resolution.
type LoadedCase struct {
	Function  string
	Backend   checker.Backend
	Stub      *sig.Signature
	Overloads []*sig.Signature
	Call      CallSpec
	Checks    []CheckSpec
	Registry  *registry.Registry
}

// LoadCase reads and compiles a case file.
func LoadCase(path string) (*LoadedCase, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading case file: %w", err)
	}

	var file CaseFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing case file: %w", err)
	}
	if file.Function == "" {
		return nil, fmt.Errorf("case file is missing 'function'")
	}

	backend := checker.BackendBasic
	if file.Backend != "" {
		backend, err = checker.ParseBackend(file.Backend)
		if err != nil {
			return nil, err
		}
	}

	stub, err := compileSignature(file.Stub)
	if err != nil {
		return nil, fmt.Errorf("stub: %w", err)
	}

	// Normalize the display name so a case file saved with decomposed
	// Unicode renders the same report as one saved composed.
	name := diag.QualifiedName("", file.Function)

	loaded := &LoadedCase{
		Function: name,
		Backend:  backend,
		Stub:     stub,
		Call:     file.Call,
		Checks:   file.Checks,
		Registry: registry.NewRegistry(),
	}

	for i, spec := range file.Overloads {
		s, err := compileSignature(spec)
		if err != nil {
			return nil, fmt.Errorf("overload %d: %w", i+1, err)
		}
		loaded.Overloads = append(loaded.Overloads, s)
		// Inert implementation: dry-run resolution never invokes it.
		loaded.Registry.Declare(name, inertImpl, s)
	}

	return loaded, nil
}

func inertImpl(args []any, kwargs map[string]any) (any, error) {
	return nil, nil
}

func compileSignature(spec SignatureSpec) (*sig.Signature, error) {
	params := make([]sig.Parameter, 0, len(spec.Params))
	for _, ps := range spec.Params {
		p, err := compileParam(ps)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	s, err := sig.NewSignature(params...)
	if err != nil {
		return nil, err
	}
	if spec.Result != "" {
		result, err := sig.ParseType(spec.Result)
		if err != nil {
			return nil, fmt.Errorf("result: %w", err)
		}
		s = s.WithResult(result)
	}
	return s, nil
}

func compileParam(ps ParamSpec) (sig.Parameter, error) {
	if ps.Name == "" {
		return sig.Parameter{}, fmt.Errorf("parameter is missing 'name'")
	}

	kind := sig.PositionalOrKeyword
	if ps.Kind != "" {
		parsed, err := parseKind(ps.Kind)
		if err != nil {
			return sig.Parameter{}, err
		}
		kind = parsed
	}

	p := sig.Parameter{Name: ps.Name, Kind: kind}

	if ps.Type != "" {
		t, err := sig.ParseType(ps.Type)
		if err != nil {
			return sig.Parameter{}, fmt.Errorf("parameter %q: %w", ps.Name, err)
		}
		p.Type = t
	}

	// A default key that is present in the YAML (even as an explicit null)
	// marks the parameter as defaulted.
	if !ps.Default.IsZero() {
		var v any
		if err := ps.Default.Decode(&v); err != nil {
			return sig.Parameter{}, fmt.Errorf("parameter %q default: %w", ps.Name, err)
		}
		p = p.WithDefault(v)
	}

	return p, nil
}

var kindsByName = map[string]sig.ParameterKind{
	"positional-only":       sig.PositionalOnly,
	"positional-or-keyword": sig.PositionalOrKeyword,
	"keyword-only":          sig.KeywordOnly,
	"variadic-positional":   sig.VariadicPositional,
	"variadic-keyword":      sig.VariadicKeyword,
}

func parseKind(name string) (sig.ParameterKind, error) {
	k, ok := kindsByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown parameter kind %q", name)
	}
	return k, nil
}
