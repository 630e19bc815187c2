package action

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Caller performs one service call on the platform.
type Caller interface {
	CallService(ctx context.Context, domain, service string, data map[string]any) error
}

// Invoker turns Intents into single platform calls.
type Invoker struct {
	caller  Caller
	timeout time.Duration
}

// NewInvoker creates an Invoker. A zero timeout leaves the caller's deadline in charge.
func NewInvoker(caller Caller, timeout time.Duration) *Invoker {
	return &Invoker{caller: caller, timeout: timeout}
}

// Invoke performs exactly one attempt and never returns an error: every
// failure is reported in the Outcome.
func (inv *Invoker) Invoke(ctx context.Context, intent Intent) Outcome {
	out := Outcome{EntityID: intent.EntityID, Action: intent.Name()}

	if err := validate(intent); err != nil {
		out.Error = err.Error()
		return out
	}

	if inv.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, inv.timeout)
		defer cancel()
	}

	data := make(map[string]any, len(intent.Parameters)+1)
	for k, v := range intent.Parameters {
		data[k] = v
	}
	data["entity_id"] = intent.EntityID

	if err := inv.caller.CallService(ctx, intent.Domain, intent.Service, data); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			out.Error = fmt.Sprintf("timed out: %v", err)
		} else {
			out.Error = err.Error()
		}
		return out
	}

	out.Success = true
	return out
}

func validate(intent Intent) error {
	switch {
	case intent.EntityID == "":
		return errors.New("invalid action: missing entity_id")
	case intent.Domain == "":
		return errors.New("invalid action: missing domain")
	case intent.Service == "":
		return errors.New("invalid action: missing service")
	}
	return nil
}
