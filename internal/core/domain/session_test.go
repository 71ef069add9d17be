package domain

import (
	"errors"
	"testing"
)

func TestSessionHappyPath(t *testing.T) {
	s := NewDownloadSession("abc")
	if s.State != StateIdle {
		t.Fatalf("new session state = %s, want %s", s.State, StateIdle)
	}
	for _, next := range []SessionState{StateFetching, StateConverting, StateCompleted} {
		if err := s.Transition(next); err != nil {
			t.Fatalf("transition to %s: %v", next, err)
		}
	}
	if !s.Terminal() {
		t.Fatal("completed session should be terminal")
	}
}

func TestSessionSkipsConvertingWhenNoStageRuns(t *testing.T) {
	s := NewDownloadSession("abc")
	if err := s.Transition(StateFetching); err != nil {
		t.Fatalf("transition to fetching: %v", err)
	}
	if err := s.Transition(StateCompleted); err != nil {
		t.Fatalf("transition fetching -> completed: %v", err)
	}
}

func TestSessionRejectsInvalidTransitions(t *testing.T) {
	cases := []struct {
		name string
		from SessionState
		to   SessionState
	}{
		{name: "idle to converting", from: StateIdle, to: StateConverting},
		{name: "idle to completed", from: StateIdle, to: StateCompleted},
		{name: "completed is terminal", from: StateCompleted, to: StateFetching},
		{name: "failed is terminal", from: StateFailed, to: StateFetching},
		{name: "converting cannot rewind", from: StateConverting, to: StateFetching},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewDownloadSession("abc")
			s.State = tc.from
			if err := s.Transition(tc.to); err == nil {
				t.Fatalf("transition %s -> %s succeeded, want error", tc.from, tc.to)
			}
		})
	}
}

func TestSessionFailRecordsError(t *testing.T) {
	s := NewDownloadSession("abc")
	if err := s.Transition(StateFetching); err != nil {
		t.Fatalf("transition to fetching: %v", err)
	}
	s.Fail(errors.New("stream reset"))
	if s.State != StateFailed {
		t.Fatalf("state = %s, want %s", s.State, StateFailed)
	}
	if s.Err != "stream reset" {
		t.Fatalf("err = %q, want %q", s.Err, "stream reset")
	}

	// Terminal sessions keep their original error.
	s.Fail(errors.New("later"))
	if s.Err != "stream reset" {
		t.Fatalf("err overwritten to %q after terminal state", s.Err)
	}
}
