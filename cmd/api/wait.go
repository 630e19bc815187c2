package main

import (
	"context"
	"fmt"
	"time"

	"ha-ai-bridge/pkg/log"
)

const (
	startupPingAttempts = 10
	startupPingInterval = 3 * time.Second
)

type pinger interface {
	Ping(ctx context.Context) error
}

// waitForHomeAssistant pings until Home Assistant answers. Add-ons often start
// before the core is accepting API calls.
func waitForHomeAssistant(ctx context.Context, p pinger, logger log.Logger) error {
	var lastErr error
	for attempt := 1; attempt <= startupPingAttempts; attempt++ {
		if lastErr = p.Ping(ctx); lastErr == nil {
			logger.Infof(ctx, "Home Assistant reachable (attempt %d)", attempt)
			return nil
		}
		logger.Debugf(ctx, "Home Assistant ping attempt %d/%d failed: %v", attempt, startupPingAttempts, lastErr)

		if attempt < startupPingAttempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(startupPingInterval):
			}
		}
	}
	return fmt.Errorf("home assistant not reachable after %d attempts: %w", startupPingAttempts, lastErr)
}
