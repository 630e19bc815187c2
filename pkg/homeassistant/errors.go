package homeassistant

import (
	"errors"
	"fmt"
)

var (
	ErrMissingURL      = errors.New("homeassistant: url is required")
	ErrMissingToken    = errors.New("homeassistant: token is required")
	ErrInvalidArgument = errors.New("homeassistant: invalid argument")
	ErrDecodeResponse  = errors.New("homeassistant: failed to decode response")
	ErrFrameTooLarge   = errors.New("homeassistant: camera frame too large")
)

// APIError is returned when Home Assistant answers with a non-2xx status.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("homeassistant: %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}
