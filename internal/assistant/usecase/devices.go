package usecase

import (
	"context"
	"fmt"

	"ha-ai-bridge/internal/assistant"
)

// Devices returns the snapshot, refreshing it if it is older than the cache max age.
func (uc *implUseCase) Devices(ctx context.Context) (assistant.DevicesOutput, error) {
	snap, err := uc.registry.Get(ctx, uc.cfg.CacheMaxAge)
	if err != nil {
		return assistant.DevicesOutput{}, fmt.Errorf("load devices: %w", err)
	}
	return assistant.DevicesOutput{Snapshot: snap}, nil
}

// Status reports without touching the platform.
func (uc *implUseCase) Status(ctx context.Context) assistant.StatusOutput {
	count := 0
	if snap, ok := uc.registry.Peek(); ok {
		count = snap.Len()
	}
	return assistant.StatusOutput{
		Version:      uc.cfg.Version,
		Features:     uc.cfg.Features,
		DevicesCount: count,
	}
}
