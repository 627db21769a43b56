package sig

// ParameterKind classifies how a parameter may be bound at a call site.
type ParameterKind uint8

const (
	// PositionalOnly parameters bind from positional arguments only.
	PositionalOnly ParameterKind = iota

	// PositionalOrKeyword parameters bind positionally or by name.
	PositionalOrKeyword

	// VariadicPositional collects all surplus positional arguments.
	VariadicPositional

	// KeywordOnly parameters bind by name only.
	KeywordOnly

	// VariadicKeyword collects all surplus keyword arguments.
	VariadicKeyword
)

var kindNames = [...]string{
	PositionalOnly:      "positional-only",
	PositionalOrKeyword: "positional-or-keyword",
	VariadicPositional:  "variadic-positional",
	KeywordOnly:         "keyword-only",
	VariadicKeyword:     "variadic-keyword",
}

func (k ParameterKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// PositionalEligible reports whether the parameter kind can consume a
// positional argument.
func (k ParameterKind) PositionalEligible() bool {
	return k == PositionalOnly || k == PositionalOrKeyword
}

// KeywordEligible reports whether the parameter kind can consume a keyword
// argument.
func (k ParameterKind) KeywordEligible() bool {
	return k == PositionalOrKeyword || k == KeywordOnly
}

// Parameter is one declared parameter of a signature.
//
// Position is assigned by NewSignature and is stable within one signature.
// It is used only for positional matching, never for cross-candidate
// identity (the relevant-parameter analysis buckets positional kinds by
// position and everything else by name).
type Parameter struct {
	Name       string
	Position   int
	Kind       ParameterKind
	Type       TypeExpr // nil = untyped, never checked
	HasDefault bool
	Default    any
}

// PosOnly builds a positional-only parameter.
func PosOnly(name string, t TypeExpr) Parameter {
	return Parameter{Name: name, Kind: PositionalOnly, Type: t}
}

// PosOrKw builds a positional-or-keyword parameter.
func PosOrKw(name string, t TypeExpr) Parameter {
	return Parameter{Name: name, Kind: PositionalOrKeyword, Type: t}
}

// KwOnly builds a keyword-only parameter.
func KwOnly(name string, t TypeExpr) Parameter {
	return Parameter{Name: name, Kind: KeywordOnly, Type: t}
}

// VarPos builds a variadic-positional parameter (the *args slot).
func VarPos(name string, t TypeExpr) Parameter {
	return Parameter{Name: name, Kind: VariadicPositional, Type: t}
}

// VarKw builds a variadic-keyword parameter (the **kwargs slot).
func VarKw(name string, t TypeExpr) Parameter {
	return Parameter{Name: name, Kind: VariadicKeyword, Type: t}
}

// WithDefault returns a copy of the parameter carrying a default value.
// Defaults are meaningful on stub signatures; candidate signatures normally
// omit them and the binder back-fills from the stub.
func (p Parameter) WithDefault(v any) Parameter {
	p.HasDefault = true
	p.Default = v
	return p
}
