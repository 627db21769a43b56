package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/overcall/overcall/internal/sig"
)

func makeImpl(tag string) Impl {
	return func(args []any, kwargs map[string]any) (any, error) {
		return tag, nil
	}
}

func TestDiscover_PreservesDeclarationOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Declare("f", makeImpl("first"), sig.MustSignature(sig.PosOrKw("x", sig.Int)))
	reg.Declare("f", makeImpl("second"), sig.MustSignature(sig.PosOrKw("x", sig.Str)))
	reg.Declare("f", makeImpl("third"), sig.MustSignature(sig.PosOrKw("x", sig.Float)))

	candidates, err := reg.Discover("f")
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	for i, want := range []string{"first", "second", "third"} {
		got, err := candidates[i].Impl(nil, nil)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestDiscover_MissingDeclaration(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Discover("ghost")
	require.Error(t, err)
	assert.True(t, IsNoCandidates(err))
	assert.Contains(t, err.Error(), "could not find the overloads for the function 'ghost'")
	assert.Contains(t, err.Error(), "Did you forget to declare the overloads?")
}

func TestDiscover_StaleMechanismHint(t *testing.T) {
	reg := NewRegistry()
	reg.DeclareUnder("f", makeImpl("old"), sig.MustSignature(sig.PosOrKw("x", nil)), CurrentMechanism-1)

	_, err := reg.Discover("f")
	require.Error(t, err)
	assert.True(t, IsNoCandidates(err))
	assert.Contains(t, err.Error(), "older registration mechanism")
	assert.NotContains(t, err.Error(), "forget")
}

func TestDiscover_CountsCalls(t *testing.T) {
	reg := NewRegistry()
	reg.Declare("f", makeImpl("only"), sig.MustSignature(sig.PosOrKw("x", nil)))

	assert.Equal(t, 0, reg.DiscoverCount("f"))
	_, err := reg.Discover("f")
	require.NoError(t, err)
	_, err = reg.Discover("f")
	require.NoError(t, err)
	assert.Equal(t, 2, reg.DiscoverCount("f"))
}

func TestDiscover_ReturnsCopy(t *testing.T) {
	reg := NewRegistry()
	reg.Declare("f", makeImpl("a"), sig.MustSignature(sig.PosOrKw("x", nil)))

	first, err := reg.Discover("f")
	require.NoError(t, err)
	first[0] = Candidate{}

	second, err := reg.Discover("f")
	require.NoError(t, err)
	require.NotNil(t, second[0].Impl)
}
