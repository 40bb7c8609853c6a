package model

import (
	"time"

	"github.com/google/uuid"
)

// TestAttempt is the history record of a finished attempt. It is written once
// and never updated.
type TestAttempt struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TestID         uint      `json:"test_id" gorm:"not null;index"`
	Test           Test      `json:"test,omitempty" gorm:"foreignKey:TestID"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Status         string    `json:"status" gorm:"not null"` // "submitted", "expired"
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
	ElapsedSeconds int       `json:"elapsed_seconds"`
	Score          int       `json:"score"`
	QuestionCount  int       `json:"question_count"`
	Answers        []Answer  `json:"answers,omitempty" gorm:"foreignKey:TestAttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt      time.Time `json:"created_at"`
}
