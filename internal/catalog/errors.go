package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by store mutations.
var (
	// ErrPermissionDenied is returned when a mutation is attempted while
	// admin mode is off. No state changes.
	ErrPermissionDenied = errors.New("admin mode is not active")

	// ErrNotFound is returned by Update for an id not present in the
	// catalog.
	ErrNotFound = errors.New("course not found")
)

// ValidationError reports a draft field that blocks a save. The form stays
// open so the user can correct it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
