package device

import (
	"context"
	"fmt"

	"ha-ai-bridge/pkg/homeassistant"
)

// StatesGetter is the part of the platform client the fetcher needs.
type StatesGetter interface {
	GetStates(ctx context.Context) ([]homeassistant.State, error)
}

type homeAssistantFetcher struct {
	states StatesGetter
}

// NewHomeAssistantFetcher adapts the platform states endpoint to a Fetcher.
func NewHomeAssistantFetcher(states StatesGetter) Fetcher {
	return &homeAssistantFetcher{states: states}
}

func (f *homeAssistantFetcher) Fetch(ctx context.Context) (Snapshot, error) {
	states, err := f.states.GetStates(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetch states: %w", err)
	}

	entities := make(map[string]Entity, len(states))
	for _, s := range states {
		attrs := s.Attributes
		if attrs == nil {
			attrs = map[string]any{}
		}
		entities[s.EntityID] = Entity{State: s.State, Attributes: attrs}
	}
	return Snapshot{Entities: entities}, nil
}
