package response

import "time"

const (
	// DateTimeFormat is the wire format of every timestamp the API emits.
	DateTimeFormat = time.RFC3339

	DefaultErrorMessage = "internal server error"
)
