package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyCommand    = errors.New("no command provided")
	ErrEmptyMessage    = errors.New("no message provided")
	ErrMissingField    = errors.New("missing required field")
	ErrFeatureDisabled = errors.New("feature is disabled")
	ErrInvalidImage    = errors.New("invalid image")
)
