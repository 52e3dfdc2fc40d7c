package tool

import "fmt"

// RejectedError is returned when the permission ruleset denies a tool.
type RejectedError struct {
	Tool     string
	Resource string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("permission denied for tool %q", e.Tool)
}

// IsRejected checks whether an error is a permission rejection.
func IsRejected(err error) bool {
	_, ok := err.(*RejectedError)
	return ok
}

// ConfirmationError is returned when a tool needs user confirmation and the
// invocation was not pre-approved. The caller asks the user, then retries
// with Context.Approved set.
type ConfirmationError struct {
	Tool     string
	Resource string
}

func (e *ConfirmationError) Error() string {
	return fmt.Sprintf("tool %q requires confirmation", e.Tool)
}

// NeedsConfirmation checks whether an error is a confirmation request.
func NeedsConfirmation(err error) bool {
	_, ok := err.(*ConfirmationError)
	return ok
}
