package diag

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/overcall/overcall/internal/sig"
)

func TestReport_Render(t *testing.T) {
	report := &Report{
		Func: "find_user_balance",
		Incompatibilities: []CandidateIncompatibility{
			{
				Sig:    sig.MustSignature(sig.PosOrKw("my_var", sig.Int)).WithResult(sig.Int),
				Reason: BindFailure{Message: "too many positional arguments"},
			},
			{
				Sig: sig.MustSignature(
					sig.PosOrKw("my_var", sig.Int),
					sig.PosOrKw("other_var", sig.Int),
				).WithResult(sig.Int),
				Reason: TypeMismatch{
					Parameter: "other_var",
					Declared:  sig.Int,
					Value:     "438.15",
					Detail:    "float64 is not int",
				},
			},
			{
				Sig: sig.MustSignature(
					sig.PosOrKw("my_var", sig.Int),
					sig.PosOrKw("other_var", sig.Str),
				).WithResult(sig.Int),
				Reason: TypeMismatch{
					Parameter: "other_var",
					Declared:  sig.Str,
					Value:     "438.15",
					Detail:    "float64 is not str",
				},
			},
		},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "report_exhausted", []byte(report.Render()))
}

func TestReport_RenderNoCandidateLines(t *testing.T) {
	report := &Report{Func: "f"}
	assert.Equal(t, "No compatible overload found for function 'f', here is why:", report.Render())
}

func TestBindFailure_Describe(t *testing.T) {
	r := NewBindFailure("missing a required argument: '%s'", "x")
	assert.Equal(t, "missing a required argument: 'x'", r.Describe())
}

func TestTypeMismatch_Describe(t *testing.T) {
	r := TypeMismatch{Parameter: "n", Declared: sig.Int, Value: `"five"`, Detail: "string is not int"}
	assert.Equal(t,
		`There is a type hint mismatch for argument n: value "five" is not compatible with int (string is not int)`,
		r.Describe())

	r.Detail = ""
	assert.Equal(t,
		`There is a type hint mismatch for argument n: value "five" is not compatible with int`,
		r.Describe())
}

func TestTypeMismatch_DescribeUntyped(t *testing.T) {
	r := TypeMismatch{Parameter: "x", Value: "1"}
	assert.Equal(t,
		"There is a type hint mismatch for argument x: value 1 is not compatible with <untyped>",
		r.Describe())
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "nil", FormatValue(nil))
	assert.Equal(t, `"bob"`, FormatValue("bob"))
	assert.Equal(t, "438.15", FormatValue(438.15))
	assert.Equal(t, "[1 2]", FormatValue([]any{1, 2}))
}

func TestQualifiedName(t *testing.T) {
	assert.Equal(t, "find_user_balance", QualifiedName("", "find_user_balance"))
	assert.Equal(t, "billing.find_user_balance", QualifiedName("billing", "find_user_balance"))

	// Composed and decomposed forms of the same name normalize identically.
	composed := QualifiedName("", "résumé")
	decomposed := QualifiedName("", "résumé")
	assert.Equal(t, composed, decomposed)
}
