package services

import "fmt"

// InvalidStateError is raised before any network call when a requested
// transition or mutation violates the lifecycle rules.
type InvalidStateError struct {
	Op      string
	Current string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: cannot %s in status %q", e.Op, e.Current)
}

// ValidationError is a client-side rejection: the request never leaves the
// process.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Msg)
}
