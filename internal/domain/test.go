package domain

import "time"

type TestStatus string

const (
	TestStatusDraft     TestStatus = "draft"
	TestStatusPublished TestStatus = "published"
)

// Test is a mock test as handed to the catalog and the attempt session.
// Questions are ordered; a question's position is its index.
type Test struct {
	ID          uint
	Title       string
	Description string
	Questions   []Question
	Duration    time.Duration
	Status      TestStatus
	CreatedAt   time.Time
}

// Question is immutable once the test is fetched.
type Question struct {
	ID            uint
	Text          string
	Options       []string // empty for free-text questions
	CorrectAnswer string
}

func (t Test) IsPublished() bool {
	return t.Status == TestStatusPublished
}

func (t Test) QuestionCount() int {
	return len(t.Questions)
}
