package handler

import (
	"sync"

	"ClotureBot/model"
)

// SessionStore keeps one wizard session per chat in memory.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*model.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*model.Session)}
}

// Get returns the chat's session, creating it with defaults when missing.
func (s *SessionStore) Get(chatID int64) *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[chatID]
	if !ok {
		sess = model.NewSession(chatID)
		s.sessions[chatID] = sess
	}
	return sess
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
