package openai

import (
	"errors"
	"fmt"
)

// ErrDecodeResponse is returned when a 200 body is not a chat completion.
var ErrDecodeResponse = errors.New("openai: failed to decode response")

// APIError is a non-200 answer from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openai: API error %d: %s", e.StatusCode, e.Message)
}
