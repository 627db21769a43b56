package resolver

import (
	"errors"

	"github.com/overcall/overcall/internal/diag"
)

// CompatibleOverloadNotFoundError is returned when every candidate's
// bind-or-check step rejected the call. It always carries the full,
// declaration-ordered reason list; resolution never reports partially.
type CompatibleOverloadNotFoundError struct {
	Report *diag.Report
}

// Error implements the error interface with the rendered aggregate report.
func (e *CompatibleOverloadNotFoundError) Error() string {
	return e.Report.Render()
}

// NewCompatibleOverloadNotFoundError creates the exhaustion error for a
// dispatch point.
func NewCompatibleOverloadNotFoundError(name string, incompatibilities []diag.CandidateIncompatibility) *CompatibleOverloadNotFoundError {
	return &CompatibleOverloadNotFoundError{
		Report: &diag.Report{Func: name, Incompatibilities: incompatibilities},
	}
}

// IsCompatibleOverloadNotFound returns true if the error reports an
// exhausted resolution. Uses errors.As to handle wrapped errors.
func IsCompatibleOverloadNotFound(err error) bool {
	var e *CompatibleOverloadNotFoundError
	return errors.As(err, &e)
}
