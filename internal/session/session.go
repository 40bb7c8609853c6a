// Package session holds the state machine for a single mock-test attempt.
//
// A Session does no scheduling of its own. Whoever owns it calls Tick
// periodically so that an attempt past its duration budget becomes Expired.
package session

import (
	"time"

	"github.com/lshigami/mockprep/internal/domain"
)

type State string

const (
	StateIdle       State = "idle"
	StateInProgress State = "in_progress"
	StateSubmitted  State = "submitted"
	StateExpired    State = "expired"
)

// Terminal reports whether the state is Submitted or Expired.
func (s State) Terminal() bool {
	return s == StateSubmitted || s == StateExpired
}

// Clock returns the current time. Tests substitute a fake.
type Clock func() time.Time

type Session struct {
	now Clock

	state      State
	test       domain.Test
	answers    map[int]string
	startedAt  time.Time
	finishedAt time.Time
}

// New returns an idle session. A nil clock means time.Now.
func New(clock Clock) *Session {
	if clock == nil {
		clock = time.Now
	}
	return &Session{now: clock, state: StateIdle}
}

func (s *Session) State() State { return s.state }

// Test returns the test of the current attempt. The zero Test is returned
// while idle.
func (s *Session) Test() domain.Test { return s.test }

// Start begins a timed attempt of t.
func (s *Session) Start(t domain.Test) error {
	if s.state != StateIdle {
		return &domain.StateError{Op: "start", State: string(s.state)}
	}
	s.test = t
	s.answers = make(map[int]string, len(t.Questions))
	s.startedAt = s.now()
	s.finishedAt = time.Time{}
	s.state = StateInProgress
	return nil
}

// Answer stores value for the question at index, replacing any earlier answer.
func (s *Session) Answer(index int, value string) error {
	if s.state != StateInProgress {
		return &domain.StateError{Op: "answer", State: string(s.state)}
	}
	if index < 0 || index >= len(s.test.Questions) {
		return &domain.IndexError{Index: index, Count: len(s.test.Questions)}
	}
	s.answers[index] = value
	return nil
}

// Elapsed is the time since start, never negative. It stops advancing once
// the attempt is submitted or expired, and is zero while idle.
func (s *Session) Elapsed() time.Duration {
	var end time.Time
	switch s.state {
	case StateIdle:
		return 0
	case StateInProgress:
		end = s.now()
	default:
		end = s.finishedAt
	}
	d := end.Sub(s.startedAt)
	if d < 0 {
		return 0
	}
	return d
}

// Remaining is the unused part of the duration budget, never negative.
func (s *Session) Remaining() time.Duration {
	if s.state == StateIdle {
		return 0
	}
	r := s.test.Duration - s.Elapsed()
	if r < 0 {
		return 0
	}
	return r
}

// Tick expires an in-progress attempt whose budget is used up. It reports
// whether this call performed the transition; in every other state it is a
// no-op.
func (s *Session) Tick() bool {
	if s.state != StateInProgress {
		return false
	}
	if s.Elapsed() < s.test.Duration {
		return false
	}
	s.finish(StateExpired)
	return true
}

// Submit finishes the attempt on the user's request.
func (s *Session) Submit() error {
	if s.state != StateInProgress {
		return &domain.StateError{Op: "submit", State: string(s.state)}
	}
	s.finish(StateSubmitted)
	return nil
}

// Reset discards the attempt. An attempt still in progress must be
// submitted or expire first.
func (s *Session) Reset() error {
	if s.state == StateInProgress {
		return &domain.StateError{Op: "reset", State: string(s.state)}
	}
	s.state = StateIdle
	s.test = domain.Test{}
	s.answers = nil
	s.startedAt = time.Time{}
	s.finishedAt = time.Time{}
	return nil
}

// Attempt returns a copy of the current attempt. ok is false while idle.
func (s *Session) Attempt() (a domain.Attempt, ok bool) {
	if s.state == StateIdle {
		return domain.Attempt{}, false
	}
	answers := make(map[int]string, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}
	return domain.Attempt{
		TestID:     s.test.ID,
		Answers:    answers,
		StartedAt:  s.startedAt,
		FinishedAt: s.finishedAt,
		Budget:     s.test.Duration,
		Status:     s.attemptStatus(),
	}, true
}

func (s *Session) attemptStatus() domain.AttemptStatus {
	switch s.state {
	case StateSubmitted:
		return domain.AttemptSubmitted
	case StateExpired:
		return domain.AttemptExpired
	default:
		return domain.AttemptInProgress
	}
}

func (s *Session) finish(to State) {
	end := s.now()
	if to == StateExpired {
		// An expiry detected late is still recorded at the budget boundary.
		if deadline := s.startedAt.Add(s.test.Duration); end.After(deadline) {
			end = deadline
		}
	}
	s.finishedAt = end
	s.state = to
}
