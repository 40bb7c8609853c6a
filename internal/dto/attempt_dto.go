package dto

import "time"

// NotAnswered is what the review shows in place of a missing answer.
const NotAnswered = "Not answered"

type AnswerRequest struct {
	Value string `json:"value" binding:"required"`
}

// AttemptStateDTO is the live view of the caller's attempt session.
type AttemptStateDTO struct {
	Status           string         `json:"status"`
	TestID           uint           `json:"test_id,omitempty"`
	TestTitle        string         `json:"test_title,omitempty"`
	QuestionCount    int            `json:"question_count"`
	AnsweredCount    int            `json:"answered_count"`
	Answers          map[int]string `json:"answers,omitempty"`
	ElapsedSeconds   int            `json:"elapsed_seconds"`
	Elapsed          string         `json:"elapsed"`
	RemainingSeconds int            `json:"remaining_seconds"`
	Remaining        string         `json:"remaining"`
}

type IncorrectAnswerDTO struct {
	QuestionIndex int    `json:"question_index"`
	UserAnswer    string `json:"user_answer"`
}

// ReviewItemDTO is the per-question breakdown of a result.
type ReviewItemDTO struct {
	Index         int      `json:"index"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	UserAnswer    string   `json:"user_answer"`
	CorrectAnswer string   `json:"correct_answer"`
	Outcome       string   `json:"outcome"` // "correct", "incorrect", "unanswered"
	Explanation   string   `json:"explanation,omitempty"`
}

// ResultDTO is everything the results view needs for a finished attempt.
type ResultDTO struct {
	AttemptID        string               `json:"attempt_id,omitempty"`
	TestID           uint                 `json:"test_id"`
	TestTitle        string               `json:"test_title"`
	Status           string               `json:"status"`
	Score            int                  `json:"score"`
	QuestionCount    int                  `json:"question_count"`
	Percentage       float64              `json:"percentage"`
	CorrectAnswers   []int                `json:"correct_answers"`
	IncorrectAnswers []IncorrectAnswerDTO `json:"incorrect_answers"`
	Unanswered       []int                `json:"unanswered"`
	ElapsedSeconds   int                  `json:"elapsed_seconds"`
	TimeTaken        string               `json:"time_taken"`
	Review           []ReviewItemDTO      `json:"review"`
}

// TestAttemptSummaryDTO is for listing a user's attempts for a particular test.
type TestAttemptSummaryDTO struct {
	ID             string    `json:"id"`
	TestID         uint      `json:"test_id"`
	Status         string    `json:"status"`
	Score          int       `json:"score"`
	QuestionCount  int       `json:"question_count"`
	Percentage     float64   `json:"percentage"`
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
	ElapsedSeconds int       `json:"elapsed_seconds"`
	TimeTaken      string    `json:"time_taken"`
}
