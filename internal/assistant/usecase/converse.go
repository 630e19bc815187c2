package usecase

import (
	"context"
	"fmt"
	"strings"

	"ha-ai-bridge/internal/assistant"
	"ha-ai-bridge/internal/conversation"
	"ha-ai-bridge/internal/model"
)

// Converse sends the message with the recent window and records both turns on success.
func (uc *implUseCase) Converse(ctx context.Context, sc model.Scope, input assistant.ConverseInput) (assistant.ConverseOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return assistant.ConverseOutput{}, assistant.ErrEmptyMessage
	}

	history := uc.conversations.Window(sc.SessionID, uc.cfg.HistoryWindow)
	reply, err := uc.intents.Converse(ctx, message, history)
	if err != nil {
		return assistant.ConverseOutput{}, fmt.Errorf("converse: %w", err)
	}

	now := uc.now()
	uc.conversations.Append(sc.SessionID,
		conversation.Turn{Role: conversation.RoleUser, Text: message, Timestamp: now},
		conversation.Turn{Role: conversation.RoleAssistant, Text: reply, Timestamp: now},
	)

	return assistant.ConverseOutput{
		Message:       message,
		Response:      reply,
		SessionID:     sc.SessionID,
		HistoryLength: uc.conversations.Len(sc.SessionID),
	}, nil
}

// History returns the full transcript for local inspection.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope) []conversation.Turn {
	return uc.conversations.History(sc.SessionID)
}
