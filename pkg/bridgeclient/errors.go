package bridgeclient

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAddr    = errors.New("bridgeclient: address is required")
	ErrDecodeResponse = errors.New("bridgeclient: failed to decode response")
)

// APIError is returned for every non-2xx answer.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bridge returned %d: %s", e.StatusCode, e.Message)
}
