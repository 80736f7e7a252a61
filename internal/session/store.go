// Package session models the per-tab, session-scoped key-value state the
// wizard threads through its stages. Keys are plain strings with no schema
// versioning; missing keys read as "". Each session has a single writer by
// construction, the store itself is safe for concurrent use across
// sessions.
package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Defined keys. Everything the wizard persists between stages lives under
// one of these (answers are indexed via AnswerKey).
const (
	KeyGoal      = "goal"
	KeyTaskType  = "task_type"
	KeyLanguage  = "language"
	KeyQuestions = "questions" // JSON-serialized question list
	KeyPrompt    = "prompt"
	KeyVariants  = "variants" // JSON-serialized variation list
)

// AnswerKey is the key for the answer to question index i.
func AnswerKey(i int) string {
	return fmt.Sprintf("answer_%d", i)
}

type Store struct {
	mu       sync.RWMutex
	sessions map[string]map[string]string
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]map[string]string)}
}

// New creates a fresh session and returns its id.
func (s *Store) New() string {
	id := uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = make(map[string]string)
	return id
}

// Get returns the value for key in the given session, "" when the session
// or key does not exist.
func (s *Store) Get(id, key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id][key]
}

func (s *Store) Set(id, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kv, ok := s.sessions[id]
	if !ok {
		kv = make(map[string]string)
		s.sessions[id] = kv
	}
	kv[key] = value
}

// Clear drops a session entirely, the equivalent of the tab closing.
func (s *Store) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
