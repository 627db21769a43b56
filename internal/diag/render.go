package diag

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Report aggregates every candidate's rejection reason for one exhausted
// call, in declaration order.
type Report struct {
	// Func is the dispatch point's display name.
	Func string

	// Incompatibilities holds one entry per candidate, in declaration
	// order. Never partially populated: the resolver only builds a Report
	// after every candidate has been tried.
	Incompatibilities []CandidateIncompatibility
}

// Render produces the aggregate message:
//
//	No compatible overload found for function '<name>', here is why:
//	Incompatible with '<signature 1>' because <reason 1>
//	Incompatible with '<signature 2>' because <reason 2>
//
// One line per candidate, newline separated, no trailing newline. The exact
// prefix text is a stable contract.
func (r *Report) Render() string {
	var b strings.Builder
	b.WriteString("No compatible overload found for function '")
	b.WriteString(r.Func)
	b.WriteString("', here is why:")
	for _, inc := range r.Incompatibilities {
		b.WriteString("\nIncompatible with '")
		b.WriteString(inc.Sig.String())
		b.WriteString("' because ")
		b.WriteString(inc.Reason.Describe())
	}
	return b.String()
}

// QualifiedName builds the stable fully-qualified display name for a
// dispatch point. Both parts are NFC-normalized so that visually identical
// names declared and called from different sources render identically.
func QualifiedName(pkgPath, funcName string) string {
	funcName = norm.NFC.String(funcName)
	if pkgPath == "" {
		return funcName
	}
	return norm.NFC.String(pkgPath) + "." + funcName
}
