package intent

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"ha-ai-bridge/internal/conversation"
	"ha-ai-bridge/pkg/llmprovider"
	"ha-ai-bridge/pkg/log"
)

// Client talks to the external reasoning service. Every method is one
// upstream call and fails with ErrUpstreamUnavailable or ErrUpstreamMalformed.
type Client interface {
	InterpretCommand(ctx context.Context, in InterpretInput) (Interpretation, error)
	Converse(ctx context.Context, utterance string, history []conversation.Turn) (string, error)
	AnalyzeImage(ctx context.Context, entityID, prompt string, img Image) (string, error)
	SuggestAutomation(ctx context.Context, trigger, action string) (Suggestion, error)
}

// Config tunes the client.
type Config struct {
	// Timeout bounds each upstream call. Zero means 30s.
	Timeout time.Duration
	// RequestsPerMinute paces upstream calls; zero disables pacing.
	RequestsPerMinute int
}

// New creates a Client on top of an LLM generator.
func New(gen llmprovider.Generator, cfg Config, l log.Logger) (Client, error) {
	schemas, err := compileSchemas()
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), cfg.RequestsPerMinute)
	}

	return &client{
		gen:     gen,
		l:       l,
		timeout: timeout,
		limiter: limiter,
		schemas: schemas,
	}, nil
}
