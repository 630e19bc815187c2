package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"ha-ai-bridge/internal/action"
	"ha-ai-bridge/internal/assistant"
	"ha-ai-bridge/internal/conversation"
	"ha-ai-bridge/internal/intent"
	"ha-ai-bridge/internal/model"
)

// Control runs the command pipeline: context assembly, interpretation,
// concurrent dispatch, aggregation, history update. Failures before dispatch
// abort the command; failures of individual actions are reported per outcome.
func (uc *implUseCase) Control(ctx context.Context, sc model.Scope, input assistant.ControlInput) (assistant.CommandResult, error) {
	command := strings.TrimSpace(input.Command)
	if command == "" {
		return assistant.CommandResult{}, assistant.ErrEmptyCommand
	}

	uc.l.Infof(ctx, "Control: session=%s command=%q", sc.SessionID, command)

	// Step 1: context assembly
	snap, err := uc.registry.Get(ctx, uc.cfg.CacheMaxAge)
	if err != nil {
		return assistant.CommandResult{}, fmt.Errorf("load devices: %w", err)
	}
	history := uc.conversations.Window(sc.SessionID, uc.cfg.HistoryWindow)

	// Step 2: interpretation
	interp, err := uc.intents.InterpretCommand(ctx, intent.InterpretInput{
		Utterance: command,
		Devices:   snap,
		History:   history,
	})
	if err != nil {
		return assistant.CommandResult{}, fmt.Errorf("interpret command: %w", err)
	}

	// Steps 3-4: dispatch and aggregate in intent order
	outcomes := uc.dispatch(ctx, interp.Actions)

	result := assistant.CommandResult{
		Command:   command,
		SessionID: sc.SessionID,
		Outcomes:  outcomes,
		Reply:     interp.Reply,
		Timestamp: uc.now(),
	}

	// Step 5: history update
	uc.conversations.Append(sc.SessionID,
		conversation.Turn{Role: conversation.RoleUser, Text: command, Timestamp: result.Timestamp},
		conversation.Turn{Role: conversation.RoleAssistant, Text: summarize(interp.Reply, outcomes), Timestamp: result.Timestamp},
	)

	uc.publish(ctx, result)

	uc.l.Infof(ctx, "Control: session=%s dispatched=%d failed=%d", sc.SessionID, len(outcomes), countFailed(outcomes))
	return result, nil
}

// dispatch invokes every intent concurrently and waits for all of them.
// Each goroutine writes only its own slot, so no result can be lost or reordered.
func (uc *implUseCase) dispatch(ctx context.Context, intents []action.Intent) []action.Outcome {
	outcomes := make([]action.Outcome, len(intents))

	var g errgroup.Group
	for i, in := range intents {
		g.Go(func() error {
			outcomes[i] = uc.invoker.Invoke(ctx, in)
			if !outcomes[i].Success {
				uc.l.Warnf(ctx, "Control: %s on %s failed: %s", outcomes[i].Action, outcomes[i].EntityID, outcomes[i].Error)
			}
			return nil
		})
	}
	_ = g.Wait() // goroutines never return an error

	return outcomes
}

func (uc *implUseCase) publish(ctx context.Context, result assistant.CommandResult) {
	if uc.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.PublishTimeout)
	defer cancel()
	if err := uc.publisher.PublishCommandResult(ctx, result); err != nil {
		uc.l.Warnf(ctx, "Control: publish result: %v", err)
	}
}
