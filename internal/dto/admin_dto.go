package dto

// QuestionCreateDTO is used within TestCreateDTO for admin test creation.
type QuestionCreateDTO struct {
	Text          string   `json:"text" binding:"required"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer" binding:"required"`
	OrderInTest   int      `json:"order_in_test" binding:"required,min=1"`
}

// TestCreateDTO is for admin to create a new test with all its questions.
// New tests start as drafts.
type TestCreateDTO struct {
	Title           string              `json:"title" binding:"required"`
	Description     string              `json:"description,omitempty"`
	DurationSeconds int                 `json:"duration_seconds" binding:"required,gt=0"`
	Questions       []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}

// AdminTestDTO is the admin view of a test, including status and answer key.
type AdminTestDTO struct {
	ID              uint               `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description,omitempty"`
	Status          string             `json:"status"`
	DurationSeconds int                `json:"duration_seconds"`
	Questions       []AdminQuestionDTO `json:"questions,omitempty"`
}

type AdminQuestionDTO struct {
	ID            uint     `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	OrderInTest   int      `json:"order_in_test"`
}
