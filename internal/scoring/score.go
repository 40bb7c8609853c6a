// Package scoring derives results from finished attempts. Everything here is
// a pure function of its arguments.
package scoring

import (
	"github.com/lshigami/mockprep/internal/domain"
)

// Score grades a finished attempt against the answer key of t. One point per
// exact match; no partial credit and no negative marking.
func Score(a domain.Attempt, t domain.Test) (domain.Result, error) {
	if !a.Status.Finished() {
		return domain.Result{}, &domain.StateError{Op: "score", State: string(a.Status)}
	}

	res := domain.Result{
		TestID:        t.ID,
		Status:        a.Status,
		QuestionCount: len(t.Questions),
	}
	for i, q := range t.Questions {
		v, answered := a.Answer(i)
		switch {
		case !answered:
			res.Unanswered = append(res.Unanswered, i)
		case v == q.CorrectAnswer:
			res.CorrectIndexes = append(res.CorrectIndexes, i)
		default:
			res.IncorrectAnswers = append(res.IncorrectAnswers, domain.IncorrectAnswer{
				QuestionIndex: i,
				UserAnswer:    v,
			})
		}
	}
	res.Score = len(res.CorrectIndexes)
	return res, nil
}
