package scoring

import (
	"fmt"
	"time"

	"github.com/lshigami/mockprep/internal/domain"
)

type Outcome string

const (
	OutcomeCorrect    Outcome = "correct"
	OutcomeIncorrect  Outcome = "incorrect"
	OutcomeUnanswered Outcome = "unanswered"
)

// ReviewItem is the per-question breakdown shown after a test.
type ReviewItem struct {
	Index         int
	Question      string
	Options       []string
	UserAnswer    string // empty when unanswered
	CorrectAnswer string
	Outcome       Outcome
}

// Review lays out res question by question in test order.
func Review(res domain.Result, a domain.Attempt, t domain.Test) []ReviewItem {
	incorrect := make(map[int]string, len(res.IncorrectAnswers))
	for _, ia := range res.IncorrectAnswers {
		incorrect[ia.QuestionIndex] = ia.UserAnswer
	}

	items := make([]ReviewItem, len(t.Questions))
	for i, q := range t.Questions {
		item := ReviewItem{
			Index:         i,
			Question:      q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Outcome:       OutcomeUnanswered,
		}
		if v, ok := incorrect[i]; ok {
			item.UserAnswer = v
			item.Outcome = OutcomeIncorrect
		} else if res.IsCorrect(i) {
			item.UserAnswer, _ = a.Answer(i)
			item.Outcome = OutcomeCorrect
		}
		items[i] = item
	}
	return items
}

// FormatElapsed renders seconds as m:ss, e.g. 125 -> "2:05".
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatDuration is FormatElapsed for a duration, truncated to whole seconds.
func FormatDuration(d time.Duration) string {
	return FormatElapsed(int(d / time.Second))
}
