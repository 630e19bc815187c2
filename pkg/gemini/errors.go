package gemini

import (
	"errors"
	"fmt"
)

// ErrDecodeResponse is returned when the API answered 200 with a body that is not a Gemini response.
var ErrDecodeResponse = errors.New("gemini: failed to decode response")

// APIError is a non-200 answer from the API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Body)
}
