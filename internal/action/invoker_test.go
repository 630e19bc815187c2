package action

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	domain, service string
	data            map[string]any
}

type fakeCaller struct {
	mu    sync.Mutex
	calls []call
	fn    func(ctx context.Context) error
}

func (f *fakeCaller) CallService(ctx context.Context, domain, service string, data map[string]any) error {
	f.mu.Lock()
	f.calls = append(f.calls, call{domain, service, data})
	f.mu.Unlock()
	if f.fn != nil {
		return f.fn(ctx)
	}
	return nil
}

func TestInvoke_Success(t *testing.T) {
	caller := &fakeCaller{}
	inv := NewInvoker(caller, time.Second)

	params := map[string]any{"brightness": 128}
	out := inv.Invoke(context.Background(), Intent{
		EntityID:   "light.living_room",
		Domain:     "light",
		Service:    "turn_on",
		Parameters: params,
	})

	assert.Equal(t, Outcome{EntityID: "light.living_room", Action: "light.turn_on", Success: true}, out)
	require.Len(t, caller.calls, 1)
	assert.Equal(t, "light", caller.calls[0].domain)
	assert.Equal(t, "turn_on", caller.calls[0].service)
	assert.Equal(t, map[string]any{"brightness": 128, "entity_id": "light.living_room"}, caller.calls[0].data)
	_, leaked := params["entity_id"]
	assert.False(t, leaked, "intent parameters must not be mutated")
}

func TestInvoke_PlatformErrorIsData(t *testing.T) {
	caller := &fakeCaller{fn: func(context.Context) error { return errors.New("homeassistant: POST /api/services/cover/close_cover returned 500") }}
	out := NewInvoker(caller, time.Second).Invoke(context.Background(), Intent{EntityID: "cover.blinds", Domain: "cover", Service: "close_cover"})

	assert.False(t, out.Success)
	assert.Contains(t, out.Error, "500")
	assert.Equal(t, "cover.close_cover", out.Action)
	assert.Len(t, caller.calls, 1, "exactly one attempt")
}

func TestInvoke_Timeout(t *testing.T) {
	caller := &fakeCaller{fn: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}}
	start := time.Now()
	out := NewInvoker(caller, 20*time.Millisecond).Invoke(context.Background(), Intent{EntityID: "cover.blinds", Domain: "cover", Service: "close_cover"})

	assert.False(t, out.Success)
	assert.Contains(t, out.Error, "timed out")
	assert.Less(t, time.Since(start), time.Second)
}

func TestInvoke_InvalidIntentMakesNoCall(t *testing.T) {
	caller := &fakeCaller{}
	inv := NewInvoker(caller, 0)

	for _, intent := range []Intent{
		{Domain: "light", Service: "turn_on"},
		{EntityID: "light.x", Service: "turn_on"},
		{EntityID: "light.x", Domain: "light"},
	} {
		out := inv.Invoke(context.Background(), intent)
		assert.False(t, out.Success)
		assert.NotEmpty(t, out.Error)
	}
	assert.Empty(t, caller.calls)
}
