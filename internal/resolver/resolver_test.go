package resolver

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/overcall/overcall/internal/checker"
	"github.com/overcall/overcall/internal/registry"
	"github.com/overcall/overcall/internal/sig"
)

func tagImpl(tag string) registry.Impl {
	return func(args []any, kwargs map[string]any) (any, error) {
		return tag, nil
	}
}

func TestCall_DispatchesByArgumentType(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Declare("f", tagImpl("int"), sig.MustSignature(sig.PosOrKw("x", sig.Int)))
	reg.Declare("f", tagImpl("str"), sig.MustSignature(sig.PosOrKw("x", sig.Str)))

	d := New("f", sig.MustSignature(sig.PosOrKw("x", nil)), checker.BackendBasic, reg)

	got, err := d.Call([]any{42}, nil)
	require.NoError(t, err)
	assert.Equal(t, "int", got)

	got, err = d.Call([]any{"hello"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "str", got)
}

func TestCall_DeclarationOrderWins(t *testing.T) {
	// Both candidates accept the call; the one declared first is invoked.
	reg := registry.NewRegistry()
	reg.Declare("f", tagImpl("first"), sig.MustSignature(sig.PosOrKw("x", sig.Int)))
	reg.Declare("f", tagImpl("second"), sig.MustSignature(sig.PosOrKw("x", sig.Any)))

	d := New("f", sig.MustSignature(sig.PosOrKw("x", nil)), checker.BackendBasic, reg)

	got, err := d.Call([]any{1}, nil)
	require.NoError(t, err)
	assert.Equal(t, "first", got)
}

func TestCall_DispatchesByArity(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Declare("f", tagImpl("one"), sig.MustSignature(sig.PosOrKw("x", sig.Int)))
	reg.Declare("f", tagImpl("two"), sig.MustSignature(sig.PosOrKw("x", sig.Int), sig.PosOrKw("y", sig.Int)))

	d := New("f", sig.MustSignature(sig.PosOrKw("x", nil), sig.PosOrKw("y", nil).WithDefault(0)), checker.BackendBasic, reg)

	got, err := d.Call([]any{1, 2}, nil)
	require.NoError(t, err)
	// The stub's default for y back-fills, so both calls bind both
	// candidates; declaration order decides.
	assert.Equal(t, "two", got)
}

func TestCall_KeywordOnlyDisambiguation(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Declare("find_user_balance", tagImpl("by_id"), sig.MustSignature(sig.KwOnly("user_id", sig.Int)))
	reg.Declare("find_user_balance", tagImpl("by_name"), sig.MustSignature(sig.KwOnly("name", sig.Str)))

	stub := sig.MustSignature(
		sig.KwOnly("user_id", nil).WithDefault(nil),
		sig.KwOnly("name", nil).WithDefault(nil),
	)
	d := New("find_user_balance", stub, checker.BackendBasic, reg)

	got, err := d.Call(nil, map[string]any{"user_id": 7})
	require.NoError(t, err)
	assert.Equal(t, "by_id", got)

	got, err = d.Call(nil, map[string]any{"name": "bob"})
	require.NoError(t, err)
	assert.Equal(t, "by_name", got)
}

func TestCall_PositionalDisambiguationByType(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Declare("f", tagImpl("by_id"), sig.MustSignature(sig.PosOnly("user_id", sig.Int)))
	reg.Declare("f", tagImpl("by_name"), sig.MustSignature(sig.PosOnly("name", sig.Str)))

	d := New("f", sig.MustSignature(sig.PosOnly("key", nil)), checker.BackendBasic, reg)

	got, err := d.Call([]any{42}, nil)
	require.NoError(t, err)
	assert.Equal(t, "by_id", got)

	got, err = d.Call([]any{"bob"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "by_name", got)
}

func TestCall_VariadicEffectiveType(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Declare("sum", tagImpl("ints"), sig.MustSignature(sig.VarPos("values", sig.Int)))
	reg.Declare("sum", tagImpl("strs"), sig.MustSignature(sig.VarPos("values", sig.Str)))

	d := New("sum", sig.MustSignature(sig.VarPos("values", nil)), checker.BackendBasic, reg)

	got, err := d.Call([]any{1, 2, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, "ints", got)

	got, err = d.Call([]any{"a", "b"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "strs", got)
}

func TestCall_UnpackedTupleVariadic(t *testing.T) {
	pair := sig.Unpack{Inner: sig.TupleOf{Elems: []sig.TypeExpr{sig.Int, sig.Str}}}
	reg := registry.NewRegistry()
	reg.Declare("f", tagImpl("pair"), sig.MustSignature(sig.VarPos("rest", pair)))
	reg.Declare("f", tagImpl("ints"), sig.MustSignature(sig.VarPos("rest", sig.Int)))

	d := New("f", sig.MustSignature(sig.VarPos("rest", nil)), checker.BackendBasic, reg)

	got, err := d.Call([]any{1, "x"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "pair", got)

	got, err = d.Call([]any{1, 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, "ints", got)
}

func TestCall_ExhaustionMessage(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Declare("find_user_balance", tagImpl("a"),
		sig.MustSignature(sig.PosOrKw("my_var", sig.Int)).WithResult(sig.Int))
	reg.Declare("find_user_balance", tagImpl("b"),
		sig.MustSignature(sig.PosOrKw("my_var", sig.Int), sig.PosOrKw("other_var", sig.Int)).WithResult(sig.Int))
	reg.Declare("find_user_balance", tagImpl("c"),
		sig.MustSignature(sig.PosOrKw("my_var", sig.Int), sig.PosOrKw("other_var", sig.Str)).WithResult(sig.Int))

	stub := sig.MustSignature(sig.PosOrKw("my_var", nil), sig.PosOrKw("other_var", nil))
	d := New("find_user_balance", stub, checker.BackendBasic, reg)

	_, err := d.Call([]any{1, 438.15}, nil)
	require.Error(t, err)
	assert.True(t, IsCompatibleOverloadNotFound(err))

	want := "No compatible overload found for function 'find_user_balance', here is why:\n" +
		"Incompatible with '(my_var: int) -> int' because too many positional arguments\n" +
		"Incompatible with '(my_var: int, other_var: int) -> int' because There is a type hint mismatch for argument other_var: value 438.15 is not compatible with int (float64 is not int)\n" +
		"Incompatible with '(my_var: int, other_var: str) -> int' because There is a type hint mismatch for argument other_var: value 438.15 is not compatible with str (float64 is not str)"
	assert.Equal(t, want, err.Error())
}

func TestCall_UndeclaredDispatchPoint(t *testing.T) {
	d := New("ghost", sig.MustSignature(sig.PosOrKw("x", nil)), checker.BackendBasic, registry.NewRegistry())

	_, err := d.Call([]any{1}, nil)
	require.Error(t, err)
	assert.True(t, registry.IsNoCandidates(err))
}

func TestCall_ImplementationErrorPropagates(t *testing.T) {
	reg := registry.NewRegistry()
	boom := fmt.Errorf("backing store unavailable")
	reg.Declare("f", func(args []any, kwargs map[string]any) (any, error) {
		return nil, boom
	}, sig.MustSignature(sig.PosOrKw("x", sig.Int)))

	d := New("f", sig.MustSignature(sig.PosOrKw("x", nil)), checker.BackendBasic, reg)

	// A matched candidate's own failure is not an incompatibility; it
	// surfaces as-is and resolution does not fall through to later
	// candidates.
	_, err := d.Call([]any{1}, nil)
	assert.Equal(t, boom, err)
}

func TestCall_InspectionRunsOnce(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Declare("f", tagImpl("only"), sig.MustSignature(sig.PosOrKw("x", sig.Int)))

	d := New("f", sig.MustSignature(sig.PosOrKw("x", nil)), checker.BackendBasic, reg)

	for i := 0; i < 3; i++ {
		_, err := d.Call([]any{1}, nil)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, reg.DiscoverCount("f"))
}

func TestCall_ConcurrentFirstCall(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Declare("f", tagImpl("only"), sig.MustSignature(sig.PosOrKw("x", sig.Int)))

	d := New("f", sig.MustSignature(sig.PosOrKw("x", nil)), checker.BackendBasic, reg)

	const workers = 8
	results := make([]any, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = d.Call([]any{1}, nil)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "only", results[i])
	}

	// The snapshot is published after the racing first calls; later calls
	// never rediscover.
	after := reg.DiscoverCount("f")
	_, err := d.Call([]any{1}, nil)
	require.NoError(t, err)
	assert.Equal(t, after, reg.DiscoverCount("f"))
}

func TestExplain(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Declare("f", tagImpl("int"), sig.MustSignature(sig.PosOrKw("x", sig.Int)))
	reg.Declare("f", tagImpl("str"), sig.MustSignature(sig.PosOrKw("x", sig.Str)))

	d := New("f", sig.MustSignature(sig.PosOrKw("x", nil)), checker.BackendBasic, reg)

	exp, err := d.Explain([]any{"hello"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, exp.Matched)
	assert.Equal(t, "(x: str)", exp.Sig.String())
	assert.Nil(t, exp.Report)

	exp, err = d.Explain([]any{true}, nil)
	require.NoError(t, err)
	assert.Equal(t, -1, exp.Matched)
	require.NotNil(t, exp.Report)
	assert.Len(t, exp.Report.Incompatibilities, 2)
}

// TestCall_OptimizedMatchesReference drives the same random calls through a
// normal dispatch point and a check-everything reference one. Parameters
// whose type never varies across candidates are declared untyped here, so
// skipping them is provably outcome-neutral and the two modes must agree on
// every call.
func TestCall_OptimizedMatchesReference(t *testing.T) {
	buildRegistry := func() *registry.Registry {
		reg := registry.NewRegistry()
		reg.Declare("f", tagImpl("c0"), sig.MustSignature(
			sig.PosOrKw("x", sig.Int), sig.PosOrKw("y", nil)))
		reg.Declare("f", tagImpl("c1"), sig.MustSignature(
			sig.PosOrKw("x", sig.Str), sig.PosOrKw("y", nil)))
		reg.Declare("f", tagImpl("c2"), sig.MustSignature(
			sig.PosOrKw("x", sig.Int), sig.PosOrKw("y", nil), sig.KwOnly("flag", sig.Bool)))
		reg.Declare("f", tagImpl("c3"), sig.MustSignature(
			sig.PosOrKw("x", sig.Float), sig.KwOnly("flag", sig.Int)))
		return reg
	}
	stub := func() *sig.Signature {
		return sig.MustSignature(
			sig.PosOrKw("x", nil),
			sig.PosOrKw("y", nil).WithDefault(0),
			sig.KwOnly("flag", nil).WithDefault(nil),
		)
	}

	optimized := New("f", stub(), checker.BackendBasic, buildRegistry())
	reference := NewCheckAll("f", stub(), checker.BackendBasic, buildRegistry())

	pool := []any{1, "s", true, 2.5, -3, "t", false}
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 300; i++ {
		args := make([]any, rng.Intn(3))
		for j := range args {
			args[j] = pool[rng.Intn(len(pool))]
		}
		var kwargs map[string]any
		if rng.Intn(2) == 0 {
			kwargs = map[string]any{"flag": pool[rng.Intn(len(pool))]}
		}

		got, err1 := optimized.Explain(args, kwargs)
		want, err2 := reference.Explain(args, kwargs)
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, want.Matched, got.Matched, "args=%v kwargs=%v", args, kwargs)
	}
}

func TestIsCompatibleOverloadNotFound(t *testing.T) {
	err := NewCompatibleOverloadNotFoundError("f", nil)
	assert.True(t, IsCompatibleOverloadNotFound(err))
	assert.False(t, IsCompatibleOverloadNotFound(fmt.Errorf("other")))
	assert.False(t, IsCompatibleOverloadNotFound(nil))
}
