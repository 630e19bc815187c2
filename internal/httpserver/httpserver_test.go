package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ha-ai-bridge/internal/assistant"
	"ha-ai-bridge/internal/conversation"
	"ha-ai-bridge/internal/model"
	"ha-ai-bridge/pkg/log"
)

type stubUseCase struct{ assistant.UseCase }

func (stubUseCase) Status(ctx context.Context) assistant.StatusOutput {
	return assistant.StatusOutput{Version: "1.0.0"}
}

func (stubUseCase) History(ctx context.Context, sc model.Scope) []conversation.Turn { return nil }

type pinger struct{ err error }

func (p pinger) Ping(ctx context.Context) error { return p.err }

func newServer(t *testing.T, platform Pinger) *HTTPServer {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Port:             8099,
		Mode:             "test",
		Environment:      model.EnvironmentDevelopment,
		Version:          "1.0.0",
		AssistantUseCase: stubUseCase{},
		Platform:         platform,
	})
	require.NoError(t, err)
	return srv
}

func get(srv *HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: "test", Port: 1})
	assert.Error(t, err)

	_, err = New(log.NewNop(), Config{Mode: "test", AssistantUseCase: stubUseCase{}})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, pinger{})

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := get(srv, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}
}

func TestReady_PlatformDown(t *testing.T) {
	srv := newServer(t, pinger{err: errors.New("connection refused")})

	w := get(srv, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestDomainRoutesMounted(t *testing.T) {
	srv := newServer(t, nil)

	w := get(srv, "/api/status")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"running"`)

	w = get(srv, "/api/conversation")
	assert.Equal(t, http.StatusOK, w.Code)
}
