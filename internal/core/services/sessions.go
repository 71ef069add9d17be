package services

import (
	"log"
	"sync"

	"ytaudio/internal/core/domain"
)

// sessionStore keeps in-flight download sessions in memory. Sessions exist
// for progress feedback only and die with the process.
type sessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.DownloadSession
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*domain.DownloadSession)}
}

func (s *sessionStore) Put(sess *domain.DownloadSession) {
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
}

// Get returns a copy so callers never race with in-flight updates.
func (s *sessionStore) Get(id string) (domain.DownloadSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return domain.DownloadSession{}, false
	}
	return *sess, true
}

func (s *sessionStore) Advance(id string, next domain.SessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return
	}
	if err := sess.Transition(next); err != nil {
		log.Printf("session %s: %v", id, err)
	}
}

func (s *sessionStore) SetTitle(id, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		sess.Title = title
	}
}

func (s *sessionStore) Fail(id string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		sess.Fail(err)
	}
}
