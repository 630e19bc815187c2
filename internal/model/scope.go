package model

import "ha-ai-bridge/internal/conversation"

// Scope carries per-request caller identity.
type Scope struct {
	SessionID string
}

// NewScope builds a Scope, falling back to the default session.
func NewScope(sessionID string) Scope {
	if sessionID == "" {
		sessionID = conversation.DefaultSession
	}
	return Scope{SessionID: sessionID}
}
