// Package conversation keeps per-session transcripts for the lifetime of the process.
package conversation

import (
	"sync"
	"time"
)

// DefaultSession is used when the caller supplies no session id.
const DefaultSession = "default"

// Roles of a Turn.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message in a transcript.
type Turn struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Store maps session ids to append-only transcripts. Nothing is persisted.
type Store struct {
	mu       sync.RWMutex
	sessions map[string][]Turn
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{sessions: make(map[string][]Turn)}
}

// Append adds turns to the end of a session's transcript.
func (s *Store) Append(sessionID string, turns ...Turn) {
	sessionID = normalize(sessionID)
	s.mu.Lock()
	s.sessions[sessionID] = append(s.sessions[sessionID], turns...)
	s.mu.Unlock()
}

// Window returns at most n of the most recent turns, oldest first.
func (s *Store) Window(sessionID string, n int) []Turn {
	if n <= 0 {
		return []Turn{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.sessions[normalize(sessionID)]
	if len(turns) > n {
		turns = turns[len(turns)-n:]
	}
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out
}

// History returns the full retained transcript.
func (s *Store) History(sessionID string) []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.sessions[normalize(sessionID)]
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out
}

// Len returns the number of retained turns.
func (s *Store) Len(sessionID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions[normalize(sessionID)])
}

func normalize(sessionID string) string {
	if sessionID == "" {
		return DefaultSession
	}
	return sessionID
}
