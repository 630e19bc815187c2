package log_test

import (
	"context"
	"testing"

	"ha-ai-bridge/pkg/log"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	if got := log.RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := log.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestInitDoesNotPanicOnUnknownLevel(t *testing.T) {
	l := log.Init(log.ZapConfig{Level: "loud", Mode: log.ModeProduction, Encoding: log.EncodingJSON})
	l.Infof(log.WithRequestID(context.Background(), "abc"), "hello %s", "world")
	log.NewNop().Error(context.Background(), "discarded")
}
