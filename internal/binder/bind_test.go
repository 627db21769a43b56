package binder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/overcall/overcall/internal/sig"
)

func TestBind_PositionalAndKeyword(t *testing.T) {
	s := sig.MustSignature(
		sig.PosOnly("name", sig.Str),
		sig.PosOrKw("n", sig.Int),
		sig.KwOnly("flag", sig.Bool),
	)

	bound, failure := Bind([]any{"alice", 3}, map[string]any{"flag": true}, s)
	require.Nil(t, failure)

	v, ok := bound.Value("name")
	require.True(t, ok)
	assert.Equal(t, "alice", v)

	v, ok = bound.Value("n")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = bound.Value("flag")
	require.True(t, ok)
	assert.Equal(t, true, v)
}

func TestBind_PosOrKwByName(t *testing.T) {
	s := sig.MustSignature(sig.PosOrKw("n", sig.Int))

	bound, failure := Bind(nil, map[string]any{"n": 7}, s)
	require.Nil(t, failure)
	assert.True(t, bound.Bound("n"))
}

func TestBind_TooManyPositional(t *testing.T) {
	s := sig.MustSignature(sig.PosOrKw("x", sig.Int))

	_, failure := Bind([]any{1, 2}, nil, s)
	require.NotNil(t, failure)
	assert.Equal(t, "too many positional arguments", failure.Message)
}

func TestBind_MissingRequired(t *testing.T) {
	s := sig.MustSignature(sig.PosOrKw("x", sig.Int), sig.PosOrKw("y", sig.Int))

	_, failure := Bind([]any{1}, nil, s)
	require.NotNil(t, failure)
	assert.Equal(t, "missing a required argument: 'y'", failure.Message)
}

func TestBind_MissingRequiredKeywordOnly(t *testing.T) {
	s := sig.MustSignature(sig.KwOnly("flag", sig.Bool))

	_, failure := Bind(nil, nil, s)
	require.NotNil(t, failure)
	assert.Equal(t, "missing a required keyword-only argument: 'flag'", failure.Message)
}

func TestBind_UnexpectedKeyword(t *testing.T) {
	s := sig.MustSignature(sig.PosOrKw("x", sig.Int))

	_, failure := Bind([]any{1}, map[string]any{"zeta": 1, "alpha": 2}, s)
	require.NotNil(t, failure)
	// Deterministic: the alphabetically first surplus keyword is reported.
	assert.Equal(t, "got an unexpected keyword argument 'alpha'", failure.Message)
}

func TestBind_MultipleValues(t *testing.T) {
	s := sig.MustSignature(sig.PosOrKw("x", sig.Int))

	_, failure := Bind([]any{1}, map[string]any{"x": 2}, s)
	require.NotNil(t, failure)
	assert.Equal(t, "multiple values for argument 'x'", failure.Message)
}

func TestBind_PositionalOnlyNameAsKeyword(t *testing.T) {
	s := sig.MustSignature(sig.PosOnly("x", sig.Int))

	_, failure := Bind(nil, map[string]any{"x": 1}, s)
	require.NotNil(t, failure)
	assert.Equal(t, "got an unexpected keyword argument 'x'", failure.Message)
}

func TestBind_PositionalOnlyNameIntoVarKw(t *testing.T) {
	s := sig.MustSignature(
		sig.PosOnly("x", sig.Int),
		sig.VarKw("opts", nil),
	)

	bound, failure := Bind([]any{1}, map[string]any{"x": 2}, s)
	require.Nil(t, failure)

	v, ok := bound.Value("opts")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"x": 2}, v)
}

func TestBind_VariadicPositionalCollects(t *testing.T) {
	s := sig.MustSignature(sig.PosOrKw("x", sig.Int), sig.VarPos("rest", sig.Int))

	bound, failure := Bind([]any{1, 2, 3}, nil, s)
	require.Nil(t, failure)

	v, ok := bound.Value("rest")
	require.True(t, ok)
	assert.Equal(t, []any{2, 3}, v)
}

func TestBind_EmptyVariadicUnbound(t *testing.T) {
	s := sig.MustSignature(sig.VarPos("rest", sig.Int), sig.VarKw("opts", sig.Str))

	bound, failure := Bind(nil, nil, s)
	require.Nil(t, failure)
	assert.False(t, bound.Bound("rest"))
	assert.False(t, bound.Bound("opts"))
}

func TestBind_VariadicKeywordCollects(t *testing.T) {
	s := sig.MustSignature(sig.KwOnly("flag", sig.Bool), sig.VarKw("opts", sig.Str))

	bound, failure := Bind(nil, map[string]any{"flag": true, "a": "x", "b": "y"}, s)
	require.Nil(t, failure)

	v, ok := bound.Value("opts")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"a": "x", "b": "y"}, v)
}

func TestBind_DefaultLeavesParameterUnbound(t *testing.T) {
	s := sig.MustSignature(sig.PosOrKw("x", sig.Int).WithDefault(4))

	bound, failure := Bind(nil, nil, s)
	require.Nil(t, failure)
	assert.False(t, bound.Bound("x"))
}
