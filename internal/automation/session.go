package automation

import (
	"sync"
	"time"
)

// Session is a diagnostic record of an apparently successful site login.
// Sessions live only in process memory and are lost on restart.
type Session struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	LastLogin time.Time `json:"lastLogin"`
	Active    bool      `json:"active"`
}

// SessionStore keeps one session per email, overwritten on repeat
// bookings. It is constructor-injected wherever it is needed rather than
// living as package state.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]Session),
	}
}

func (s *SessionStore) Put(session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Email] = session
}

func (s *SessionStore) Get(email string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[email]
	return session, ok
}

func (s *SessionStore) List() []Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	return sessions
}
