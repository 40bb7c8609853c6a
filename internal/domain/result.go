package domain

// IncorrectAnswer is a question that was answered with a value that does not
// match the answer key.
type IncorrectAnswer struct {
	QuestionIndex int
	UserAnswer    string
}

// Result is always derived from a finished Attempt and its Test.
type Result struct {
	TestID           uint
	Status           AttemptStatus
	Score            int
	QuestionCount    int
	CorrectIndexes   []int // ascending
	IncorrectAnswers []IncorrectAnswer
	Unanswered       []int // ascending
}

// IsCorrect reports whether the question at index is in the correct set.
func (r Result) IsCorrect(index int) bool {
	for _, i := range r.CorrectIndexes {
		if i == index {
			return true
		}
	}
	return false
}
