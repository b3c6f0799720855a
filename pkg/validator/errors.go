package validator

import "errors"

var (
	// ErrValidationFailed matches every ValidationErrors value under errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownKind is returned when a check kind tag is not recognised.
	ErrUnknownKind = errors.New("unknown validation kind")

	// ErrCheckFailed wraps an error returned by a context-aware custom check.
	// Validation stops at the failing rule.
	ErrCheckFailed = errors.New("custom check returned an error")
)
