package bridgeclient

import "time"

// Outcome is the result of one dispatched action.
type Outcome struct {
	EntityID string `json:"entity_id"`
	Action   string `json:"action"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// CommandResult is returned by Control.
type CommandResult struct {
	Command   string    `json:"command"`
	SessionID string    `json:"session_id"`
	Outcomes  []Outcome `json:"outcomes"`
	Reply     string    `json:"reply,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ConversationReply is returned by SendMessage.
type ConversationReply struct {
	Message       string    `json:"message"`
	Response      string    `json:"response"`
	SessionID     string    `json:"session_id"`
	HistoryLength int       `json:"history_length"`
	Timestamp     time.Time `json:"timestamp"`
}

// AnalyzeRequest asks for an image analysis. Without Image the camera is snapshotted.
type AnalyzeRequest struct {
	EntityID string
	Prompt   string
	Image    []byte
	MIMEType string
}

// Analysis is returned by AnalyzeImage.
type Analysis struct {
	EntityID  string    `json:"entity_id"`
	Prompt    string    `json:"prompt"`
	Analysis  string    `json:"analysis"`
	Timestamp time.Time `json:"timestamp"`
}

// Suggestion is the proposed automation.
type Suggestion struct {
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	Trigger        []map[string]any `json:"trigger"`
	Conditions     []map[string]any `json:"conditions,omitempty"`
	Actions        []map[string]any `json:"actions"`
	AutomationYAML string           `json:"automation_yaml"`
}

// SuggestionResult is returned by SuggestAutomation.
type SuggestionResult struct {
	Trigger    string     `json:"trigger"`
	Action     string     `json:"action"`
	Suggestion Suggestion `json:"suggestion"`
	Timestamp  time.Time  `json:"timestamp"`
}

// Device is one entity of the snapshot.
type Device struct {
	State      string         `json:"state"`
	Attributes map[string]any `json:"attributes"`
}

// Devices is returned by Devices.
type Devices struct {
	Devices   map[string]Device `json:"devices"`
	Count     int               `json:"count"`
	FetchedAt *time.Time        `json:"fetched_at,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Features mirrors the bridge feature flags.
type Features struct {
	VoiceControl     bool `json:"voice_control"`
	Automations      bool `json:"automations"`
	ImageRecognition bool `json:"image_recognition"`
}

// Status is returned by Status.
type Status struct {
	Status       string    `json:"status"`
	Version      string    `json:"version"`
	Features     Features  `json:"features"`
	DevicesCount int       `json:"devices_count"`
	Timestamp    time.Time `json:"timestamp"`
}

// Turn is one entry of a session transcript.
type Turn struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// History is returned by History.
type History struct {
	SessionID string    `json:"session_id"`
	Turns     []Turn    `json:"turns"`
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}
