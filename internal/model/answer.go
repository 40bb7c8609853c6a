package model

import (
	"time"

	"github.com/google/uuid"
)

type Answer struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	TestAttemptID uuid.UUID `json:"test_attempt_id" gorm:"type:uuid;not null;index"`
	QuestionID    uint      `json:"question_id" gorm:"not null;index"`
	QuestionIndex int       `json:"question_index" gorm:"not null"`
	UserAnswer    string    `json:"user_answer" gorm:"type:text;not null"`
	IsCorrect     bool      `json:"is_correct"`
	CreatedAt     time.Time `json:"created_at"`
}
