package request

import "fmt"

// ValidationError is returned when a request, view, or property set is
// configured inconsistently. The caller recovers by reconfiguring before
// retrying; it is never retried automatically.
type ValidationError struct {
	Reason string
}

func (err ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", err.Reason)
}

// VersionError is returned when a configuration requires protocol
// features the request's target version does not support.
type VersionError struct {
	Feature  string
	Required Version
	Actual   Version
}

func (err VersionError) Error() string {
	return fmt.Sprintf("%s requires version %s or later, request targets %s",
		err.Feature, err.Required, err.Actual)
}
