package device

import (
	"context"
	"time"
)

// Fetcher loads a fresh snapshot from the platform registry.
type Fetcher interface {
	Fetch(ctx context.Context) (Snapshot, error)
}

// Registry is the read side of the cache used by the orchestrator.
type Registry interface {
	// Get returns the held snapshot, refreshing first if it is older than maxAge.
	Get(ctx context.Context, maxAge time.Duration) (Snapshot, error)
	// Peek returns the held snapshot without fetching.
	Peek() (Snapshot, bool)
}
