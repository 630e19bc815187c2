package intent

import "errors"

var (
	// ErrUpstreamUnavailable means the AI service could not be reached in time.
	ErrUpstreamUnavailable = errors.New("AI service unavailable")

	// ErrUpstreamMalformed means the AI service answered with something we cannot use.
	ErrUpstreamMalformed = errors.New("AI service response malformed")

	// ErrEmptyImage is returned by AnalyzeImage when no image bytes are given.
	ErrEmptyImage = errors.New("image is empty")
)
