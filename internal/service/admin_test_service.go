package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/lshigami/mockprep/internal/domain"
	"github.com/lshigami/mockprep/internal/dto"
	"github.com/lshigami/mockprep/internal/model"
	"github.com/lshigami/mockprep/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AdminTestService interface {
	CreateTest(ctx context.Context, req dto.TestCreateDTO) (*dto.AdminTestDTO, error)
	PublishTest(ctx context.Context, testID uint) (*dto.AdminTestDTO, error)
}

type adminTestService struct {
	testRepo repository.TestRepository
}

func NewAdminTestService(testRepo repository.TestRepository) AdminTestService {
	return &adminTestService{testRepo: testRepo}
}

// CreateTest stores a new draft test. Students cannot see it until it is
// published.
func (s *adminTestService) CreateTest(ctx context.Context, req dto.TestCreateDTO) (*dto.AdminTestDTO, error) {
	orderMap := make(map[int]bool)
	questions := make([]model.Question, 0, len(req.Questions))

	for _, qDto := range req.Questions {
		if orderMap[qDto.OrderInTest] {
			return nil, fmt.Errorf("duplicate OrderInTest %d found in questions", qDto.OrderInTest)
		}
		orderMap[qDto.OrderInTest] = true

		if len(qDto.Options) > 0 && !slices.Contains(qDto.Options, qDto.CorrectAnswer) {
			return nil, fmt.Errorf("question %d: correct answer %q is not one of its options", qDto.OrderInTest, qDto.CorrectAnswer)
		}

		opts, err := encodeOptions(qDto.Options)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", qDto.OrderInTest, err)
		}
		questions = append(questions, model.Question{
			Text:          qDto.Text,
			Options:       opts,
			CorrectAnswer: qDto.CorrectAnswer,
			OrderInTest:   qDto.OrderInTest,
		})
	}

	testModel := model.Test{
		Title:           req.Title,
		Description:     req.Description,
		Status:          string(domain.TestStatusDraft),
		DurationSeconds: req.DurationSeconds,
		Questions:       questions,
	}

	if err := s.testRepo.Create(ctx, &testModel); err != nil {
		log.Error().Err(err).Msg("Failed to create test in database")
		return nil, fmt.Errorf("database error creating test: %w", err)
	}
	log.Info().Uint("testID", testModel.ID).Str("title", testModel.Title).Msg("Draft test created")

	created, err := s.testRepo.FindByIDWithQuestions(ctx, testModel.ID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testModel.ID).Msg("Failed to retrieve newly created test with questions for response")
		return toAdminTestDTO(&testModel)
	}
	return toAdminTestDTO(created)
}

func (s *adminTestService) PublishTest(ctx context.Context, testID uint) (*dto.AdminTestDTO, error) {
	if err := s.testRepo.UpdateStatus(ctx, testID, string(domain.TestStatusPublished)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrTestNotFound, testID)
		}
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to publish test")
		return nil, fmt.Errorf("database error publishing test: %w", err)
	}
	log.Info().Uint("testID", testID).Msg("Test published")

	t, err := s.testRepo.FindByIDWithQuestions(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("database error fetching published test: %w", err)
	}
	return toAdminTestDTO(t)
}
