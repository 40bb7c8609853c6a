package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	RecipientID uuid.UUID `json:"recipient_id" gorm:"type:uuid;not null;index"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	Link        *string   `json:"link,omitempty"`
	SentAt      time.Time `json:"sent_at" gorm:"autoCreateTime"`
	IsRead      bool      `json:"is_read" gorm:"default:false"`
}
