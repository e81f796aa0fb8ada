package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *Error {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *Error {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// CatalogNotFound creates a catalog manifest not found error
func CatalogNotFound(path string) *Error {
	return New(ErrCodeCatalogNotFound, fmt.Sprintf("catalog manifest not found: %s", path)).
		WithDetail("path", path)
}

// CatalogInvalid creates an invalid catalog manifest error
func CatalogInvalid(path string, reason string) *Error {
	return New(ErrCodeCatalogInvalid, fmt.Sprintf("invalid catalog manifest: %s", reason)).
		WithDetail("path", path)
}

// StateInvalid creates an invalid state snapshot error
func StateInvalid(path string, err error) *Error {
	return Wrap(err, ErrCodeStateInvalid, "failed to decode state snapshot").
		WithDetail("path", path)
}

// UnknownJob creates an error for a job that is not part of the console state
func UnknownJob(job string) *Error {
	return New(ErrCodeUnknownJob, fmt.Sprintf("job '%s' is not managed by this console", job)).
		WithDetail("job", job)
}

// UnknownAdjustment creates an error for an unrecognized adjustment kind
func UnknownAdjustment(kind string) *Error {
	return New(ErrCodeUnknownAdjustment, fmt.Sprintf("unknown adjustment '%s'", kind)).
		WithDetail("kind", kind)
}
