package dto

import "time"

// QuestionResponseDTO is a question as shown to a student. The answer key is
// never included.
type QuestionResponseDTO struct {
	Index   int      `json:"index"`
	ID      uint     `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options,omitempty"`
}

// TestResponseDTO is used for displaying full test details to users.
type TestResponseDTO struct {
	ID              uint                  `json:"id"`
	Title           string                `json:"title"`
	Description     string                `json:"description,omitempty"`
	DurationSeconds int                   `json:"duration_seconds"`
	Duration        string                `json:"duration"`
	Questions       []QuestionResponseDTO `json:"questions,omitempty"`
}

// TestSummaryDTO is used for listing tests available to users.
type TestSummaryDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	QuestionCount   int       `json:"question_count"`
	DurationSeconds int       `json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
}

// Notification is a non-blocking, toast-style message for the client.
type Notification struct {
	Level   string `json:"level"` // "info", "error"
	Message string `json:"message"`
}

// CatalogResponse is returned by the test listing. On failure Tests holds the
// previously loaded catalog and Notification explains what went wrong.
type CatalogResponse struct {
	Tests        []TestSummaryDTO `json:"tests"`
	Notification *Notification    `json:"notification,omitempty"`
}
