package http

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ha-ai-bridge/internal/action"
	"ha-ai-bridge/internal/assistant"
	"ha-ai-bridge/internal/conversation"
	"ha-ai-bridge/internal/device"
	"ha-ai-bridge/internal/intent"
	"ha-ai-bridge/internal/model"
	"ha-ai-bridge/pkg/homeassistant"
	"ha-ai-bridge/pkg/log"
)

type fakeUseCase struct {
	err         error
	result      assistant.CommandResult
	lastScope   model.Scope
	lastAnalyze assistant.AnalyzeInput
	status      assistant.StatusOutput
	devices     assistant.DevicesOutput
	history     []conversation.Turn
}

func (f *fakeUseCase) Control(ctx context.Context, sc model.Scope, in assistant.ControlInput) (assistant.CommandResult, error) {
	f.lastScope = sc
	if f.err != nil {
		return assistant.CommandResult{}, f.err
	}
	r := f.result
	r.Command = in.Command
	r.SessionID = sc.SessionID
	return r, nil
}

func (f *fakeUseCase) Converse(ctx context.Context, sc model.Scope, in assistant.ConverseInput) (assistant.ConverseOutput, error) {
	f.lastScope = sc
	if f.err != nil {
		return assistant.ConverseOutput{}, f.err
	}
	return assistant.ConverseOutput{Message: in.Message, Response: "hi", SessionID: sc.SessionID, HistoryLength: 2}, nil
}

func (f *fakeUseCase) AnalyzeImage(ctx context.Context, sc model.Scope, in assistant.AnalyzeInput) (assistant.AnalyzeOutput, error) {
	f.lastAnalyze = in
	if f.err != nil {
		return assistant.AnalyzeOutput{}, f.err
	}
	return assistant.AnalyzeOutput{EntityID: in.EntityID, Prompt: in.Prompt, Analysis: "a cat"}, nil
}

func (f *fakeUseCase) SuggestAutomation(ctx context.Context, sc model.Scope, in assistant.SuggestInput) (assistant.SuggestOutput, error) {
	if f.err != nil {
		return assistant.SuggestOutput{}, f.err
	}
	return assistant.SuggestOutput{Trigger: in.Trigger, Action: in.Action, Suggestion: intent.Suggestion{Name: "n", AutomationYAML: "alias: n\n"}}, nil
}

func (f *fakeUseCase) Devices(ctx context.Context) (assistant.DevicesOutput, error) {
	return f.devices, f.err
}

func (f *fakeUseCase) Status(ctx context.Context) assistant.StatusOutput { return f.status }

func (f *fakeUseCase) History(ctx context.Context, sc model.Scope) []conversation.Turn {
	f.lastScope = sc
	return f.history
}

func newTestRouter(uc assistant.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), New(log.NewNop(), uc))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestControl(t *testing.T) {
	uc := &fakeUseCase{result: assistant.CommandResult{
		Outcomes: []action.Outcome{
			{EntityID: "light.living_room", Action: "light.turn_on", Success: true},
			{EntityID: "cover.blinds", Action: "cover.close_cover", Error: "timed out"},
		},
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}}
	r := newTestRouter(uc)

	w := do(r, http.MethodPost, "/api/control", `{"command":"lights on and blinds closed","session_id":"kitchen"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "kitchen", body["session_id"])
	assert.Equal(t, "2026-01-02T03:04:05Z", body["timestamp"])
	outcomes := body["outcomes"].([]any)
	require.Len(t, outcomes, 2)
	assert.Equal(t, "light.living_room", outcomes[0].(map[string]any)["entity_id"])
	assert.Equal(t, false, outcomes[1].(map[string]any)["success"])
	assert.Equal(t, "timed out", outcomes[1].(map[string]any)["error"])
}

func TestControl_DefaultSessionAndEmptyOutcomes(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w := do(r, http.MethodPost, "/api/control", `{"command":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, conversation.DefaultSession, uc.lastScope.SessionID)
	assert.Contains(t, w.Body.String(), `"outcomes":[]`)
}

func TestErrorMapping(t *testing.T) {
	tests := map[string]struct {
		err    error
		status int
	}{
		"empty command":        {assistant.ErrEmptyCommand, http.StatusBadRequest},
		"missing field":        {fmt.Errorf("%w: x", assistant.ErrMissingField), http.StatusBadRequest},
		"feature disabled":     {fmt.Errorf("%w: x", assistant.ErrFeatureDisabled), http.StatusForbidden},
		"registry unavailable": {fmt.Errorf("load devices: %w", device.ErrRegistryUnavailable), http.StatusServiceUnavailable},
		"upstream unavailable": {fmt.Errorf("interpret command: %w", intent.ErrUpstreamUnavailable), http.StatusBadGateway},
		"upstream malformed":   {intent.ErrUpstreamMalformed, http.StatusBadGateway},
		"platform error":       {fmt.Errorf("camera snapshot: %w", &homeassistant.APIError{StatusCode: 404}), http.StatusBadGateway},
		"unknown":              {errors.New("boom"), http.StatusInternalServerError},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			r := newTestRouter(&fakeUseCase{err: tc.err})
			w := do(r, http.MethodPost, "/api/control", `{"command":"x"}`)

			assert.Equal(t, tc.status, w.Code)
			body := decode(t, w)
			assert.NotEmpty(t, body["error"])
			assert.NotEmpty(t, body["timestamp"])
			if tc.status == http.StatusInternalServerError {
				assert.NotContains(t, body["error"], "boom")
			}
		})
	}
}

func TestInvalidJSON(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})
	w := do(r, http.MethodPost, "/api/conversation", `{"message":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConverseAndHistory(t *testing.T) {
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{history: []conversation.Turn{
		{Role: conversation.RoleUser, Text: "hello", Timestamp: ts},
		{Role: conversation.RoleAssistant, Text: "hi", Timestamp: ts},
	}}
	r := newTestRouter(uc)

	w := do(r, http.MethodPost, "/api/conversation", `{"message":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "hi", body["response"])
	assert.Equal(t, float64(2), body["history_length"])
	assert.NotEmpty(t, body["timestamp"])

	w = do(r, http.MethodGet, "/api/conversation?session_id=s1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "s1", uc.lastScope.SessionID)
	body = decode(t, w)
	assert.Equal(t, float64(2), body["count"])
}

func TestAnalyze(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	img := base64.StdEncoding.EncodeToString([]byte("\x89PNG\r\n\x1a\n"))
	w := do(r, http.MethodPost, "/api/analyze", `{"entity_id":"camera.porch","prompt":"who?","image_base64":"`+img+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a cat", decode(t, w)["analysis"])
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), uc.lastAnalyze.Image)

	w = do(r, http.MethodPost, "/api/analyze", `{"entity_id":"camera.porch","prompt":"who?","image_base64":"!!!"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyze_ImageTooLarge(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	img := strings.Repeat("A", base64.StdEncoding.EncodedLen(maxImageSize)+4)
	w := do(r, http.MethodPost, "/api/analyze", `{"entity_id":"camera.porch","prompt":"who?","image_base64":"`+img+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.lastAnalyze.Image)

	body := strings.Repeat(" ", maxAnalyzeBodySize) + `{"entity_id":"camera.porch","prompt":"who?"}`
	w = do(r, http.MethodPost, "/api/analyze", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSuggestAutomation(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})
	w := do(r, http.MethodPost, "/api/automation-suggest", `{"trigger":"sunset","action":"lights on"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	suggestion := body["suggestion"].(map[string]any)
	assert.Equal(t, "alias: n\n", suggestion["automation_yaml"])
}

func TestDevicesAndStatus(t *testing.T) {
	uc := &fakeUseCase{
		devices: assistant.DevicesOutput{Snapshot: device.Snapshot{
			Entities:  map[string]device.Entity{"light.a": {State: "on"}},
			FetchedAt: time.Now(),
		}},
		status: assistant.StatusOutput{Version: "1.0.0", Features: assistant.Features{VoiceControl: true}, DevicesCount: 1},
	}
	r := newTestRouter(uc)

	w := do(r, http.MethodGet, "/api/devices", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(1), body["count"])
	assert.NotEmpty(t, body["fetched_at"])

	w = do(r, http.MethodGet, "/api/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	assert.Equal(t, "running", body["status"])
	assert.Equal(t, "1.0.0", body["version"])
	assert.Equal(t, true, body["features"].(map[string]any)["voice_control"])
	assert.Equal(t, float64(1), body["devices_count"])
}

func TestDevices_RegistryUnavailable(t *testing.T) {
	r := newTestRouter(&fakeUseCase{err: device.ErrRegistryUnavailable})
	w := do(r, http.MethodGet, "/api/devices", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
