package domain

import (
	"fmt"
	"time"
)

// SessionState tracks a download through its lifecycle.
type SessionState string

const (
	StateIdle       SessionState = "idle"
	StateFetching   SessionState = "fetching"
	StateConverting SessionState = "converting"
	StateCompleted  SessionState = "completed"
	StateFailed     SessionState = "failed"
)

var sessionTransitions = map[SessionState][]SessionState{
	StateIdle:       {StateFetching, StateFailed},
	StateFetching:   {StateConverting, StateCompleted, StateFailed},
	StateConverting: {StateCompleted, StateFailed},
}

// DownloadSession is the state of one in-flight download. Sessions replace
// ad hoc mutable flags: every state change goes through Transition.
type DownloadSession struct {
	ID        string
	State     SessionState
	Title     string
	Err       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewDownloadSession(id string) *DownloadSession {
	now := time.Now()
	return &DownloadSession{
		ID:        id,
		State:     StateIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Transition moves the session to next, rejecting moves the lifecycle does
// not allow (completed and failed are terminal).
func (s *DownloadSession) Transition(next SessionState) error {
	for _, allowed := range sessionTransitions[s.State] {
		if allowed == next {
			s.State = next
			s.UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("invalid session transition %s -> %s", s.State, next)
}

// Fail records err and moves the session to failed, from any live state.
func (s *DownloadSession) Fail(err error) {
	if s.Terminal() {
		return
	}
	s.State = StateFailed
	s.Err = err.Error()
	s.UpdatedAt = time.Now()
}

func (s *DownloadSession) Terminal() bool {
	return s.State == StateCompleted || s.State == StateFailed
}
