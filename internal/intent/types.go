package intent

import (
	"ha-ai-bridge/internal/action"
	"ha-ai-bridge/internal/conversation"
	"ha-ai-bridge/internal/device"
)

// InterpretInput is everything sent upstream to interpret one utterance.
type InterpretInput struct {
	Utterance string
	Devices   device.Snapshot
	History   []conversation.Turn
}

// Interpretation is the structured intent for one utterance.
// Zero actions is a valid answer, not an error.
type Interpretation struct {
	Actions []action.Intent
	Reply   string
}

// Image is raw image bytes with their MIME type.
type Image struct {
	Data     []byte
	MIMEType string
}

// Suggestion is a proposed automation.
type Suggestion struct {
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	Trigger        []map[string]any `json:"trigger"`
	Conditions     []map[string]any `json:"conditions,omitempty"`
	Actions        []map[string]any `json:"actions"`
	AutomationYAML string           `json:"automation_yaml"`
}

type interpretationPayload struct {
	Actions []action.Intent `json:"actions"`
	Reply   string          `json:"reply"`
}

type suggestionPayload struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Trigger     []map[string]any `json:"trigger"`
	Condition   []map[string]any `json:"condition"`
	Action      []map[string]any `json:"action"`
}

// automationDoc is the YAML layout Home Assistant expects in automations.yaml.
type automationDoc struct {
	Alias       string           `yaml:"alias"`
	Description string           `yaml:"description,omitempty"`
	Mode        string           `yaml:"mode"`
	Trigger     []map[string]any `yaml:"trigger"`
	Condition   []map[string]any `yaml:"condition"`
	Action      []map[string]any `yaml:"action"`
}
