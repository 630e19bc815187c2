package usecase

import (
	"context"
	"fmt"
	"strings"

	"ha-ai-bridge/internal/assistant"
	"ha-ai-bridge/internal/conversation"
	"ha-ai-bridge/internal/model"
)

// SuggestAutomation asks the AI for an automation matching trigger and action.
func (uc *implUseCase) SuggestAutomation(ctx context.Context, sc model.Scope, input assistant.SuggestInput) (assistant.SuggestOutput, error) {
	trigger := strings.TrimSpace(input.Trigger)
	act := strings.TrimSpace(input.Action)
	if trigger == "" || act == "" {
		return assistant.SuggestOutput{}, fmt.Errorf("%w: trigger and action are required", assistant.ErrMissingField)
	}
	if !uc.cfg.Features.Automations {
		return assistant.SuggestOutput{}, fmt.Errorf("%w: automation suggestions", assistant.ErrFeatureDisabled)
	}

	suggestion, err := uc.intents.SuggestAutomation(ctx, trigger, act)
	if err != nil {
		return assistant.SuggestOutput{}, fmt.Errorf("suggest automation: %w", err)
	}

	now := uc.now()
	uc.conversations.Append(sc.SessionID,
		conversation.Turn{Role: conversation.RoleUser, Text: fmt.Sprintf("Suggest an automation: when %s, %s", trigger, act), Timestamp: now},
		conversation.Turn{Role: conversation.RoleAssistant, Text: "Suggested automation: " + suggestion.Name, Timestamp: now},
	)

	return assistant.SuggestOutput{Trigger: trigger, Action: act, Suggestion: suggestion}, nil
}
