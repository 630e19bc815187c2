package http

import (
	"time"

	"ha-ai-bridge/internal/action"
	"ha-ai-bridge/internal/assistant"
	"ha-ai-bridge/internal/conversation"
	"ha-ai-bridge/internal/intent"
	"ha-ai-bridge/internal/model"
	"ha-ai-bridge/pkg/response"
)

const statusRunning = "running"

// --- Request DTOs ---

type controlReq struct {
	Command   string `json:"command"`
	SessionID string `json:"session_id"`
}

func (r controlReq) scope() model.Scope { return model.NewScope(r.SessionID) }

func (r controlReq) toInput() assistant.ControlInput {
	return assistant.ControlInput{Command: r.Command}
}

type converseReq struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

func (r converseReq) scope() model.Scope { return model.NewScope(r.SessionID) }

func (r converseReq) toInput() assistant.ConverseInput {
	return assistant.ConverseInput{Message: r.Message}
}

type analyzeReq struct {
	EntityID    string `json:"entity_id"`
	Prompt      string `json:"prompt"`
	ImageBase64 string `json:"image_base64"`
	MIMEType    string `json:"mime_type"`
	SessionID   string `json:"session_id"`
}

func (r analyzeReq) scope() model.Scope { return model.NewScope(r.SessionID) }

func (r analyzeReq) toInput(img []byte) assistant.AnalyzeInput {
	return assistant.AnalyzeInput{
		EntityID: r.EntityID,
		Prompt:   r.Prompt,
		Image:    img,
		MIMEType: r.MIMEType,
	}
}

type suggestReq struct {
	Trigger   string `json:"trigger"`
	Action    string `json:"action"`
	SessionID string `json:"session_id"`
}

func (r suggestReq) scope() model.Scope { return model.NewScope(r.SessionID) }

func (r suggestReq) toInput() assistant.SuggestInput {
	return assistant.SuggestInput{Trigger: r.Trigger, Action: r.Action}
}

// --- Response DTOs ---

type controlResp struct {
	Command   string            `json:"command"`
	SessionID string            `json:"session_id"`
	Outcomes  []action.Outcome  `json:"outcomes"`
	Reply     string            `json:"reply,omitempty"`
	Timestamp response.DateTime `json:"timestamp"`
}

func newControlResp(out assistant.CommandResult) controlResp {
	outcomes := out.Outcomes
	if outcomes == nil {
		outcomes = []action.Outcome{}
	}
	return controlResp{
		Command:   out.Command,
		SessionID: out.SessionID,
		Outcomes:  outcomes,
		Reply:     out.Reply,
		Timestamp: response.DateTime(out.Timestamp),
	}
}

type converseResp struct {
	Message       string            `json:"message"`
	Response      string            `json:"response"`
	SessionID     string            `json:"session_id"`
	HistoryLength int               `json:"history_length"`
	Timestamp     response.DateTime `json:"timestamp"`
}

func newConverseResp(out assistant.ConverseOutput) converseResp {
	return converseResp{
		Message:       out.Message,
		Response:      out.Response,
		SessionID:     out.SessionID,
		HistoryLength: out.HistoryLength,
		Timestamp:     response.Now(),
	}
}

type turnResp struct {
	Role      string            `json:"role"`
	Text      string            `json:"text"`
	Timestamp response.DateTime `json:"timestamp"`
}

type historyResp struct {
	SessionID string            `json:"session_id"`
	Turns     []turnResp        `json:"turns"`
	Count     int               `json:"count"`
	Timestamp response.DateTime `json:"timestamp"`
}

func newHistoryResp(sessionID string, turns []conversation.Turn) historyResp {
	items := make([]turnResp, len(turns))
	for i, t := range turns {
		items[i] = turnResp{Role: t.Role, Text: t.Text, Timestamp: response.DateTime(t.Timestamp)}
	}
	return historyResp{
		SessionID: sessionID,
		Turns:     items,
		Count:     len(items),
		Timestamp: response.Now(),
	}
}

type analyzeResp struct {
	EntityID  string            `json:"entity_id"`
	Prompt    string            `json:"prompt"`
	Analysis  string            `json:"analysis"`
	Timestamp response.DateTime `json:"timestamp"`
}

func newAnalyzeResp(out assistant.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		EntityID:  out.EntityID,
		Prompt:    out.Prompt,
		Analysis:  out.Analysis,
		Timestamp: response.Now(),
	}
}

type suggestResp struct {
	Trigger    string            `json:"trigger"`
	Action     string            `json:"action"`
	Suggestion intent.Suggestion `json:"suggestion"`
	Timestamp  response.DateTime `json:"timestamp"`
}

func newSuggestResp(out assistant.SuggestOutput) suggestResp {
	return suggestResp{
		Trigger:    out.Trigger,
		Action:     out.Action,
		Suggestion: out.Suggestion,
		Timestamp:  response.Now(),
	}
}

type deviceResp struct {
	State      string         `json:"state"`
	Attributes map[string]any `json:"attributes"`
}

type devicesResp struct {
	Devices   map[string]deviceResp `json:"devices"`
	Count     int                   `json:"count"`
	FetchedAt *response.DateTime    `json:"fetched_at,omitempty"`
	Timestamp response.DateTime     `json:"timestamp"`
}

func newDevicesResp(out assistant.DevicesOutput) devicesResp {
	devices := make(map[string]deviceResp, out.Snapshot.Len())
	for id, e := range out.Snapshot.Entities {
		attrs := e.Attributes
		if attrs == nil {
			attrs = map[string]any{}
		}
		devices[id] = deviceResp{State: e.State, Attributes: attrs}
	}
	resp := devicesResp{
		Devices:   devices,
		Count:     len(devices),
		Timestamp: response.Now(),
	}
	if !out.Snapshot.FetchedAt.IsZero() {
		fetched := response.DateTime(out.Snapshot.FetchedAt)
		resp.FetchedAt = &fetched
	}
	return resp
}

type featuresResp struct {
	VoiceControl     bool `json:"voice_control"`
	Automations      bool `json:"automations"`
	ImageRecognition bool `json:"image_recognition"`
}

type statusResp struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Features     featuresResp      `json:"features"`
	DevicesCount int               `json:"devices_count"`
	Timestamp    response.DateTime `json:"timestamp"`
}

func newStatusResp(out assistant.StatusOutput, now time.Time) statusResp {
	return statusResp{
		Status:  statusRunning,
		Version: out.Version,
		Features: featuresResp{
			VoiceControl:     out.Features.VoiceControl,
			Automations:      out.Features.Automations,
			ImageRecognition: out.Features.ImageRecognition,
		},
		DevicesCount: out.DevicesCount,
		Timestamp:    response.DateTime(now),
	}
}
