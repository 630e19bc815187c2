package assistant

import (
	"context"

	"ha-ai-bridge/internal/conversation"
	"ha-ai-bridge/internal/model"
)

// UseCase is the command orchestrator.
type UseCase interface {
	// Control interprets a command, dispatches the resulting actions concurrently
	// and aggregates their outcomes in intent order.
	Control(ctx context.Context, sc model.Scope, input ControlInput) (CommandResult, error)

	// Converse runs one free-text conversational exchange.
	Converse(ctx context.Context, sc model.Scope, input ConverseInput) (ConverseOutput, error)

	// AnalyzeImage analyses a supplied image or the entity's current camera snapshot.
	AnalyzeImage(ctx context.Context, sc model.Scope, input AnalyzeInput) (AnalyzeOutput, error)

	// SuggestAutomation proposes an automation for a trigger/action pair.
	SuggestAutomation(ctx context.Context, sc model.Scope, input SuggestInput) (SuggestOutput, error)

	// Devices returns the current device snapshot.
	Devices(ctx context.Context) (DevicesOutput, error)

	// Status reports version, feature flags and the cached device count. It never fetches.
	Status(ctx context.Context) StatusOutput

	// History returns the full retained transcript of a session.
	History(ctx context.Context, sc model.Scope) []conversation.Turn
}

// ResultPublisher receives every completed CommandResult.
type ResultPublisher interface {
	PublishCommandResult(ctx context.Context, result CommandResult) error
}
