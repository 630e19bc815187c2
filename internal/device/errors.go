package device

import "errors"

var (
	// ErrRegistryUnavailable is returned when no snapshot has ever been fetched
	// and the current fetch failed.
	ErrRegistryUnavailable = errors.New("device registry unavailable")
)
