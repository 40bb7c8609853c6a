package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lshigami/mockprep/internal/domain"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
}

func threeQuestionTest() domain.Test {
	return domain.Test{
		ID:       7,
		Title:    "Mock Test 1",
		Duration: time.Minute,
		Status:   domain.TestStatusPublished,
		Questions: []domain.Question{
			{ID: 1, Text: "q1", Options: []string{"A", "B"}, CorrectAnswer: "A"},
			{ID: 2, Text: "q2", Options: []string{"X", "Y"}, CorrectAnswer: "Y"},
			{ID: 3, Text: "q3", CorrectAnswer: "paris"},
		},
	}
}

func startedSession(t *testing.T, clock *fakeClock) *Session {
	t.Helper()
	s := New(clock.Now)
	if err := s.Start(threeQuestionTest()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func TestStartFromIdle(t *testing.T) {
	clock := newClock()
	s := startedSession(t, clock)

	if s.State() != StateInProgress {
		t.Fatalf("state = %s, want in_progress", s.State())
	}
	if got := s.Elapsed(); got != 0 {
		t.Fatalf("elapsed = %v, want 0", got)
	}
	a, ok := s.Attempt()
	if !ok {
		t.Fatal("expected an attempt")
	}
	if len(a.Answers) != 0 {
		t.Fatalf("answers = %v, want empty", a.Answers)
	}
	if !a.StartedAt.Equal(clock.Now()) {
		t.Fatalf("startedAt = %v, want %v", a.StartedAt, clock.Now())
	}
}

func TestStateErrors(t *testing.T) {
	tests := []struct {
		name string
		prep func(s *Session, c *fakeClock)
		op   func(s *Session) error
	}{
		{name: "start twice", prep: func(s *Session, c *fakeClock) {}, op: func(s *Session) error { return s.Start(threeQuestionTest()) }},
		{name: "reset in progress", prep: func(s *Session, c *fakeClock) {}, op: func(s *Session) error { return s.Reset() }},
		{name: "submit twice", prep: func(s *Session, c *fakeClock) { _ = s.Submit() }, op: func(s *Session) error { return s.Submit() }},
		{name: "answer after submit", prep: func(s *Session, c *fakeClock) { _ = s.Submit() }, op: func(s *Session) error { return s.Answer(0, "A") }},
		{name: "answer after expiry", prep: func(s *Session, c *fakeClock) { c.Advance(2 * time.Minute); s.Tick() }, op: func(s *Session) error { return s.Answer(0, "A") }},
		{name: "start after expiry", prep: func(s *Session, c *fakeClock) { c.Advance(2 * time.Minute); s.Tick() }, op: func(s *Session) error { return s.Start(threeQuestionTest()) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clock := newClock()
			s := startedSession(t, clock)
			tc.prep(s, clock)

			err := tc.op(s)
			if !errors.Is(err, domain.ErrInvalidState) {
				t.Fatalf("err = %v, want ErrInvalidState", err)
			}
			var se *domain.StateError
			if !errors.As(err, &se) {
				t.Fatalf("err = %T, want *domain.StateError", err)
			}
		})
	}
}

func TestIdleRejectsAnswerAndSubmit(t *testing.T) {
	s := New(newClock().Now)
	if err := s.Answer(0, "A"); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("Answer err = %v, want ErrInvalidState", err)
	}
	if err := s.Submit(); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("Submit err = %v, want ErrInvalidState", err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset from idle: %v", err)
	}
}

func TestAnswerIndexOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 3, 100} {
		s := startedSession(t, newClock())
		err := s.Answer(idx, "A")
		var ie *domain.IndexError
		if !errors.As(err, &ie) {
			t.Fatalf("Answer(%d) err = %v, want *domain.IndexError", idx, err)
		}
		if ie.Index != idx || ie.Count != 3 {
			t.Fatalf("IndexError = %+v", ie)
		}
		if !errors.Is(err, domain.ErrIndexOutOfRange) {
			t.Fatalf("Answer(%d) does not wrap ErrIndexOutOfRange", idx)
		}
		if s.State() != StateInProgress {
			t.Fatalf("state changed to %s after rejected answer", s.State())
		}
	}
}

func TestAnswerOverwrites(t *testing.T) {
	s := startedSession(t, newClock())
	for _, v := range []string{"A", "B", "B"} {
		if err := s.Answer(0, v); err != nil {
			t.Fatalf("Answer: %v", err)
		}
	}
	a, _ := s.Attempt()
	if len(a.Answers) != 1 || a.Answers[0] != "B" {
		t.Fatalf("answers = %v, want map[0:B]", a.Answers)
	}
}

func TestTick(t *testing.T) {
	clock := newClock()
	s := startedSession(t, clock)

	clock.Advance(59 * time.Second)
	if s.Tick() {
		t.Fatal("Tick expired the attempt before the deadline")
	}
	if got := s.Remaining(); got != time.Second {
		t.Fatalf("remaining = %v, want 1s", got)
	}

	clock.Advance(31 * time.Second)
	if !s.Tick() {
		t.Fatal("Tick did not expire the attempt after the deadline")
	}
	if s.State() != StateExpired {
		t.Fatalf("state = %s, want expired", s.State())
	}
	if s.Tick() {
		t.Fatal("second Tick reported another transition")
	}

	// A late tick still records the attempt at its budget.
	if got := s.Elapsed(); got != time.Minute {
		t.Fatalf("elapsed = %v, want 1m", got)
	}
	a, _ := s.Attempt()
	if a.Status != domain.AttemptExpired {
		t.Fatalf("attempt status = %s, want expired", a.Status)
	}
	if got := s.Remaining(); got != 0 {
		t.Fatalf("remaining = %v, want 0", got)
	}
}

func TestTickIsNoOpOutsideInProgress(t *testing.T) {
	clock := newClock()
	idle := New(clock.Now)
	if idle.Tick() || idle.State() != StateIdle {
		t.Fatal("Tick changed an idle session")
	}

	s := startedSession(t, clock)
	_ = s.Submit()
	clock.Advance(time.Hour)
	if s.Tick() || s.State() != StateSubmitted {
		t.Fatal("Tick changed a submitted session")
	}
}

func TestElapsedFreezesOnSubmit(t *testing.T) {
	clock := newClock()
	s := startedSession(t, clock)

	clock.Advance(20 * time.Second)
	if err := s.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	clock.Advance(10 * time.Minute)

	if got := s.Elapsed(); got != 20*time.Second {
		t.Fatalf("elapsed = %v, want 20s", got)
	}
}

func TestElapsedNeverNegative(t *testing.T) {
	clock := newClock()
	s := startedSession(t, clock)
	clock.Advance(-5 * time.Second)
	if got := s.Elapsed(); got != 0 {
		t.Fatalf("elapsed = %v, want 0", got)
	}
}

func TestResetAfterSubmit(t *testing.T) {
	s := startedSession(t, newClock())
	_ = s.Answer(1, "X")
	_ = s.Submit()

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if s.State() != StateIdle {
		t.Fatalf("state = %s, want idle", s.State())
	}
	if _, ok := s.Attempt(); ok {
		t.Fatal("idle session still reports an attempt")
	}
	if err := s.Start(threeQuestionTest()); err != nil {
		t.Fatalf("Start after reset: %v", err)
	}
}

func TestAttemptIsACopy(t *testing.T) {
	s := startedSession(t, newClock())
	_ = s.Answer(0, "A")
	a, _ := s.Attempt()
	a.Answers[0] = "tampered"

	b, _ := s.Attempt()
	if b.Answers[0] != "A" {
		t.Fatalf("session answers changed through a copy: %v", b.Answers)
	}
}

func TestApply(t *testing.T) {
	clock := newClock()
	s := New(clock.Now)

	cmds := []Command{
		Start{Test: threeQuestionTest()},
		Answer{QuestionIndex: 0, Value: "A"},
		Answer{QuestionIndex: 1, Value: "X"},
		Tick{},
		Submit{},
	}
	for _, cmd := range cmds {
		if err := s.Apply(cmd); err != nil {
			t.Fatalf("Apply(%T): %v", cmd, err)
		}
	}
	if s.State() != StateSubmitted {
		t.Fatalf("state = %s, want submitted", s.State())
	}
	if err := s.Apply(Reset{}); err != nil {
		t.Fatalf("Apply(Reset): %v", err)
	}
	if err := s.Apply(nil); err == nil {
		t.Fatal("Apply(nil) returned no error")
	}
}

func TestStore(t *testing.T) {
	clock := newClock()
	st := NewStore(clock.Now)

	for _, key := range []string{"bob", "alice"} {
		err := st.With(key, func(s *Session) error {
			if s.State() != StateIdle {
				t.Fatalf("new session for %s is %s", key, s.State())
			}
			return s.Start(threeQuestionTest())
		})
		if err != nil {
			t.Fatalf("With(%s): %v", key, err)
		}
	}
	if st.Len() != 2 {
		t.Fatalf("Len = %d, want 2", st.Len())
	}

	// The same key keeps its session.
	_ = st.With("bob", func(s *Session) error {
		if s.State() != StateInProgress {
			t.Fatalf("bob's session is %s, want in_progress", s.State())
		}
		return nil
	})

	var keys []string
	st.Each(func(key string, s *Session) { keys = append(keys, key) })
	if len(keys) != 2 || keys[0] != "alice" || keys[1] != "bob" {
		t.Fatalf("Each order = %v", keys)
	}
}

func TestTickerExpiresOnce(t *testing.T) {
	clock := newClock()
	st := NewStore(clock.Now)

	short := threeQuestionTest()
	short.Duration = 10 * time.Second
	_ = st.With("short", func(s *Session) error { return s.Start(short) })
	_ = st.With("long", func(s *Session) error { return s.Start(threeQuestionTest()) })

	var hooked []Expired
	ticker := NewTicker(st, time.Second, func(ctx context.Context, e Expired) {
		hooked = append(hooked, e)
	})

	clock.Advance(15 * time.Second)
	got := ticker.TickAll(context.Background())
	if len(got) != 1 || got[0].Key != "short" {
		t.Fatalf("TickAll = %+v, want only short", got)
	}
	if got[0].Attempt.Status != domain.AttemptExpired || got[0].Test.ID != short.ID {
		t.Fatalf("expired attempt = %+v", got[0])
	}

	if again := ticker.TickAll(context.Background()); len(again) != 0 {
		t.Fatalf("second TickAll expired %d attempts", len(again))
	}
	if len(hooked) != 1 {
		t.Fatalf("onExpire called %d times, want 1", len(hooked))
	}
}

func TestTickerStopsOnCancel(t *testing.T) {
	ticker := NewTicker(NewStore(nil), 10*time.Millisecond, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- ticker.Start(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Start: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ticker did not stop after cancel")
	}
}
