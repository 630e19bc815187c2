package usecase

import (
	"context"
	"time"

	"ha-ai-bridge/internal/action"
	"ha-ai-bridge/internal/assistant"
	"ha-ai-bridge/internal/conversation"
	"ha-ai-bridge/internal/device"
	"ha-ai-bridge/internal/intent"
	"ha-ai-bridge/pkg/homeassistant"
	pkgLog "ha-ai-bridge/pkg/log"
)

// Invoker dispatches one action intent.
type Invoker interface {
	Invoke(ctx context.Context, in action.Intent) action.Outcome
}

// CameraSource provides still images for camera entities.
type CameraSource interface {
	CameraSnapshot(ctx context.Context, entityID string) (homeassistant.Image, error)
}

const defaultPublishTimeout = 5 * time.Second

// Config holds orchestration knobs.
type Config struct {
	Version        string
	HistoryWindow  int
	CacheMaxAge    time.Duration
	Features       assistant.Features
	// PublishTimeout bounds the result event publish; zero means 5s.
	PublishTimeout time.Duration
}

type implUseCase struct {
	l             pkgLog.Logger
	registry      device.Registry
	intents       intent.Client
	invoker       Invoker
	conversations *conversation.Store
	cameras       CameraSource
	publisher     assistant.ResultPublisher
	cfg           Config
	now           func() time.Time
}

// New creates a new assistant UseCase instance. cameras and publisher may be nil.
func New(
	l pkgLog.Logger,
	registry device.Registry,
	intents intent.Client,
	invoker Invoker,
	conversations *conversation.Store,
	cameras CameraSource,
	publisher assistant.ResultPublisher,
	cfg Config,
) assistant.UseCase {
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = defaultPublishTimeout
	}
	return &implUseCase{
		l:             l,
		registry:      registry,
		intents:       intents,
		invoker:       invoker,
		conversations: conversations,
		cameras:       cameras,
		publisher:     publisher,
		cfg:           cfg,
		now:           time.Now,
	}
}
