package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type MessageDTO struct {
	ID      uint      `json:"id"`
	Content string    `json:"content"`
	Link    *string   `json:"link,omitempty"`
	SentAt  time.Time `json:"sent_at"`
	IsRead  bool      `json:"is_read"`
}
