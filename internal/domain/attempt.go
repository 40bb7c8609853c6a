package domain

import "time"

type AttemptStatus string

const (
	AttemptInProgress AttemptStatus = "in_progress"
	AttemptSubmitted  AttemptStatus = "submitted"
	AttemptExpired    AttemptStatus = "expired"
)

// Finished reports whether the attempt has left InProgress.
func (s AttemptStatus) Finished() bool {
	return s == AttemptSubmitted || s == AttemptExpired
}

// Attempt is a snapshot of one test attempt. Answers is sparse: an absent
// index means the question was not answered.
type Attempt struct {
	TestID     uint
	Answers    map[int]string
	StartedAt  time.Time
	FinishedAt time.Time
	Budget     time.Duration
	Status     AttemptStatus
}

// Answer returns the stored answer for a question index.
func (a Attempt) Answer(index int) (string, bool) {
	v, ok := a.Answers[index]
	return v, ok
}

// Elapsed is the time spent between start and finish. Zero for attempts
// that are still running.
func (a Attempt) Elapsed() time.Duration {
	if a.FinishedAt.IsZero() || a.FinishedAt.Before(a.StartedAt) {
		return 0
	}
	return a.FinishedAt.Sub(a.StartedAt)
}
