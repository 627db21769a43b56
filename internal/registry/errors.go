package registry

import (
	"errors"
	"fmt"
)

// NoCandidatesError is returned by Discover when a dispatch point has no
// visible candidates. It is raised once, at first invocation, and is fatal
// to the call.
type NoCandidatesError struct {
	// Name is the dispatch point's display name.
	Name string

	// StaleMechanism is true when declarations exist but were made through
	// an older mechanism revision than this runtime supports.
	StaleMechanism bool
}

const (
	hintStaleMechanism = "Overloads were declared through an older registration" +
		" mechanism that this runtime no longer reads. Re-declare them through" +
		" the current Declare API."
	hintMissingDeclaration = "Did you forget to declare the overloads?"
)

// Error implements the error interface.
func (e *NoCandidatesError) Error() string {
	hint := hintMissingDeclaration
	if e.StaleMechanism {
		hint = hintStaleMechanism
	}
	return fmt.Sprintf("could not find the overloads for the function '%s'. %s", e.Name, hint)
}

// NewNoCandidatesError creates a NoCandidatesError.
func NewNoCandidatesError(name string, staleMechanism bool) *NoCandidatesError {
	return &NoCandidatesError{Name: name, StaleMechanism: staleMechanism}
}

// IsNoCandidates returns true if the error is a NoCandidatesError.
// Uses errors.As to handle wrapped errors.
func IsNoCandidates(err error) bool {
	var e *NoCandidatesError
	return errors.As(err, &e)
}
