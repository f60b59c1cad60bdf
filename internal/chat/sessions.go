package chat

import (
	"sync"

	"github.com/google/uuid"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SessionStore keeps conversation history in memory. It is the only
// stateful part of the chat service and is safe for concurrent use.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string][]Message
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string][]Message)}
}

// GetOrCreate returns the given session id when it exists, otherwise it
// creates a fresh session and returns its id.
func (s *SessionStore) GetOrCreate(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if _, ok := s.sessions[id]; ok {
			return id
		}
	}
	newID := uuid.New().String()
	s.sessions[newID] = []Message{}
	return newID
}

func (s *SessionStore) History(id string) ([]Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out, true
}

func (s *SessionStore) Append(id string, msgs ...Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = append(s.sessions[id], msgs...)
}

func (s *SessionStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}
