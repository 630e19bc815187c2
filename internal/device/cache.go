package device

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"ha-ai-bridge/pkg/log"
)

const (
	refreshKey          = "registry"
	defaultFetchTimeout = 10 * time.Second
)

// Cache holds the most recent snapshot and refreshes it lazily on access.
// There is no background refresh.
type Cache struct {
	fetcher      Fetcher
	logger       log.Logger
	now          func() time.Time
	fetchTimeout time.Duration

	current atomic.Pointer[Snapshot]
	group   singleflight.Group
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithFetchTimeout bounds a single shared refresh. Non-positive values
// keep the default.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.fetchTimeout = d
		}
	}
}

// NewCache creates an empty cache.
func NewCache(fetcher Fetcher, logger log.Logger, opts ...Option) *Cache {
	c := &Cache{
		fetcher:      fetcher,
		logger:       logger,
		now:          time.Now,
		fetchTimeout: defaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get implements Registry. Concurrent stale callers share one refresh.
// A failed refresh keeps the previous snapshot; ErrRegistryUnavailable is
// returned only when nothing has ever been fetched.
//
// The shared refresh is detached from any single caller's cancellation
// and bounded by the fetch timeout instead. A caller that gives up waiting
// gets its own ctx.Err() without affecting the others.
func (c *Cache) Get(ctx context.Context, maxAge time.Duration) (Snapshot, error) {
	if snap := c.current.Load(); snap != nil && c.now().Sub(snap.FetchedAt) <= maxAge {
		return snap.clone(), nil
	}

	ch := c.group.DoChan(refreshKey, func() (any, error) {
		// Another caller may have refreshed while we waited to enter.
		if snap := c.current.Load(); snap != nil && c.now().Sub(snap.FetchedAt) <= maxAge {
			return snap, nil
		}
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
		defer cancel()
		return c.refresh(fctx)
	})

	var err error
	select {
	case res := <-ch:
		if res.Err == nil {
			return res.Val.(*Snapshot).clone(), nil
		}
		err = res.Err
	case <-ctx.Done():
		err = ctx.Err()
	}

	if snap := c.current.Load(); snap != nil {
		c.logger.Warnf(ctx, "device.Cache.Get: refresh failed, serving snapshot from %s: %v",
			snap.FetchedAt.Format(time.RFC3339), err)
		return snap.clone(), nil
	}
	return Snapshot{}, fmt.Errorf("%w: %w", ErrRegistryUnavailable, err)
}

// Peek implements Registry.
func (c *Cache) Peek() (Snapshot, bool) {
	snap := c.current.Load()
	if snap == nil {
		return Snapshot{}, false
	}
	return snap.clone(), true
}

func (c *Cache) refresh(ctx context.Context) (*Snapshot, error) {
	fetched, err := c.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if fetched.Entities == nil {
		fetched.Entities = map[string]Entity{}
	}
	fetched.FetchedAt = c.now()

	c.current.Store(&fetched)
	c.logger.Debugf(ctx, "device.Cache.refresh: %d entities", len(fetched.Entities))
	return &fetched, nil
}
