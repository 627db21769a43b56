package overcall

import (
	"github.com/overcall/overcall/internal/checker"
	"github.com/overcall/overcall/internal/registry"
	"github.com/overcall/overcall/internal/resolver"
	"github.com/overcall/overcall/internal/sig"
)

// The signature model lives in internal/sig; these aliases and forwards
// are the public face of it, so consumers never import internal packages.

// TypeExpr is a declared parameter type. See the sig package for the
// closed set of forms.
type TypeExpr = sig.TypeExpr

// Concrete TypeExpr forms.
type (
	Prim       = sig.Prim
	SequenceOf = sig.SequenceOf
	MappingOf  = sig.MappingOf
	TupleOf    = sig.TupleOf
	RecordOf   = sig.RecordOf
	Field      = sig.Field
	Unpack     = sig.Unpack
)

// Predeclared primitive types.
var (
	Int   = sig.Int
	Float = sig.Float
	Str   = sig.Str
	Bool  = sig.Bool
	Any   = sig.Any
)

// ParameterKind classifies how a parameter binds at a call site.
type ParameterKind = sig.ParameterKind

// Parameter kinds.
const (
	PositionalOnly      = sig.PositionalOnly
	PositionalOrKeyword = sig.PositionalOrKeyword
	KeywordOnly         = sig.KeywordOnly
	VariadicPositional  = sig.VariadicPositional
	VariadicKeyword     = sig.VariadicKeyword
)

// Parameter is one declared parameter of a Signature.
type Parameter = sig.Parameter

// Signature is the ordered, immutable parameter list of one callable.
type Signature = sig.Signature

// Parameter constructors.
var (
	PosOnly = sig.PosOnly
	PosOrKw = sig.PosOrKw
	KwOnly  = sig.KwOnly
	VarPos  = sig.VarPos
	VarKw   = sig.VarKw
)

// Signature constructors.
var (
	NewSignature  = sig.NewSignature
	MustSignature = sig.MustSignature
)

// Type-literal parsing.
var (
	ParseType     = sig.ParseType
	MustParseType = sig.MustParseType
)

// Backend selects the type-checking backend for a dispatch point.
type Backend = checker.Backend

// Available backends.
const (
	BackendBasic      = checker.BackendBasic
	BackendCUE        = checker.BackendCUE
	BackendJSONSchema = checker.BackendJSONSchema
)

// ParseBackend resolves a backend name ("basic", "cue", "jsonschema").
var ParseBackend = checker.ParseBackend

// Impl is one alternative implementation of an overloaded function.
type Impl = registry.Impl

// Registry owns declaration-ordered overload sets. Most programs use the
// process-wide default through Declare; tests inject their own via
// WithRegistry.
type Registry = registry.Registry

// NewRegistry creates an empty registry.
var NewRegistry = registry.NewRegistry

// Explanation is the outcome of a dry-run resolution.
type Explanation = resolver.Explanation

// NoCandidatesError reports a dispatch point with no visible declared
// alternatives, raised on first call.
type NoCandidatesError = registry.NoCandidatesError

// CompatibleOverloadNotFoundError reports an exhausted resolution with one
// reason per candidate.
type CompatibleOverloadNotFoundError = resolver.CompatibleOverloadNotFoundError

// Error classification helpers.
var (
	IsNoCandidates               = registry.IsNoCandidates
	IsCompatibleOverloadNotFound = resolver.IsCompatibleOverloadNotFound
)
