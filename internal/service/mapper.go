package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/mockprep/internal/domain"
	"github.com/lshigami/mockprep/internal/dto"
	"github.com/lshigami/mockprep/internal/model"
	"github.com/lshigami/mockprep/internal/scoring"
)

// copyOptions lets copier fill string ids in DTOs from uuid fields.
var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				id, ok := src.(uuid.UUID)
				if !ok {
					return nil, fmt.Errorf("expected uuid.UUID, got %T", src)
				}
				return id.String(), nil
			},
		},
	},
}

func toDomainTest(t *model.Test) (domain.Test, error) {
	out := domain.Test{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Duration:    time.Duration(t.DurationSeconds) * time.Second,
		Status:      domain.TestStatus(t.Status),
		CreatedAt:   t.CreatedAt,
		Questions:   make([]domain.Question, 0, len(t.Questions)),
	}
	for _, q := range t.Questions {
		opts, err := decodeOptions(q.Options)
		if err != nil {
			return domain.Test{}, fmt.Errorf("question %d of test %d: %w", q.ID, t.ID, err)
		}
		out.Questions = append(out.Questions, domain.Question{
			ID:            q.ID,
			Text:          q.Text,
			Options:       opts,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return out, nil
}

func decodeOptions(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var opts []string
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil, fmt.Errorf("decode options: %w", err)
	}
	return opts, nil
}

func encodeOptions(opts []string) ([]byte, error) {
	if len(opts) == 0 {
		return nil, nil
	}
	return json.Marshal(opts)
}

func toTestSummaryDTO(t domain.Test) dto.TestSummaryDTO {
	return dto.TestSummaryDTO{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		QuestionCount:   t.QuestionCount(),
		DurationSeconds: int(t.Duration / time.Second),
		CreatedAt:       t.CreatedAt,
	}
}

func toTestResponseDTO(t domain.Test) dto.TestResponseDTO {
	resp := dto.TestResponseDTO{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		DurationSeconds: int(t.Duration / time.Second),
		Duration:        scoring.FormatDuration(t.Duration),
		Questions:       make([]dto.QuestionResponseDTO, len(t.Questions)),
	}
	for i, q := range t.Questions {
		resp.Questions[i] = dto.QuestionResponseDTO{Index: i, ID: q.ID, Text: q.Text, Options: q.Options}
	}
	return resp
}

func toAdminTestDTO(t *model.Test) (*dto.AdminTestDTO, error) {
	resp := dto.AdminTestDTO{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Status:          t.Status,
		DurationSeconds: t.DurationSeconds,
		Questions:       make([]dto.AdminQuestionDTO, len(t.Questions)),
	}
	for i, q := range t.Questions {
		opts, err := decodeOptions(q.Options)
		if err != nil {
			return nil, err
		}
		resp.Questions[i] = dto.AdminQuestionDTO{
			ID:            q.ID,
			Text:          q.Text,
			Options:       opts,
			CorrectAnswer: q.CorrectAnswer,
			OrderInTest:   q.OrderInTest,
		}
	}
	return &resp, nil
}
