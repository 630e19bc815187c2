package assistant

import (
	"time"

	"ha-ai-bridge/internal/action"
	"ha-ai-bridge/internal/device"
	"ha-ai-bridge/internal/intent"
)

// Features are the optional capabilities toggled by configuration.
type Features struct {
	VoiceControl     bool
	Automations      bool
	ImageRecognition bool
}

// ControlInput is the input for Control.
type ControlInput struct {
	Command string
}

// CommandResult is built fresh per request and never mutated after return.
// Outcomes are in the order of the intents that produced them.
type CommandResult struct {
	Command   string
	SessionID string
	Outcomes  []action.Outcome
	Reply     string
	Timestamp time.Time
}

// ConverseInput is the input for Converse.
type ConverseInput struct {
	Message string
}

// ConverseOutput is the result of one conversational exchange.
type ConverseOutput struct {
	Message       string
	Response      string
	SessionID     string
	HistoryLength int
}

// AnalyzeInput is the input for AnalyzeImage. Without Image the camera entity is snapshotted.
type AnalyzeInput struct {
	EntityID string
	Prompt   string
	Image    []byte
	MIMEType string
}

// AnalyzeOutput is the analysis text.
type AnalyzeOutput struct {
	EntityID string
	Prompt   string
	Analysis string
}

// SuggestInput is the input for SuggestAutomation.
type SuggestInput struct {
	Trigger string
	Action  string
}

// SuggestOutput wraps the suggestion with its request.
type SuggestOutput struct {
	Trigger    string
	Action     string
	Suggestion intent.Suggestion
}

// DevicesOutput is the current snapshot.
type DevicesOutput struct {
	Snapshot device.Snapshot
}

// StatusOutput is the service status.
type StatusOutput struct {
	Version      string
	Features     Features
	DevicesCount int
}
