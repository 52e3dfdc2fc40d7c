package config

import "fmt"

// ValidationError reports that the merged configuration violates the schema.
// It is fatal to resolution: no cache is populated.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Message)
}

// Stable SaveError codes.
const (
	SaveCodeMkdirFailed  = "mkdir_failed"
	SaveCodeEncodeFailed = "encode_failed"
	SaveCodeWriteFailed  = "write_failed"
)

// SaveError reports a failure to persist the global config document. The
// resolver cache is left untouched when a SaveError is returned, since no
// write happened.
type SaveError struct {
	Code string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("config save failed (%s): %v", e.Code, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
