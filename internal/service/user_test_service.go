package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/mockprep/internal/catalog"
	"github.com/lshigami/mockprep/internal/domain"
	"github.com/lshigami/mockprep/internal/dto"
	"github.com/lshigami/mockprep/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type UserTestService interface {
	// GetAllTests reloads the catalog. On failure it returns the previously
	// held tests together with the error.
	GetAllTests(ctx context.Context, token string) ([]dto.TestSummaryDTO, error)
	GetTestDetails(ctx context.Context, testID uint) (*dto.TestResponseDTO, error)
	// PublishedTest returns a published test with its answer key, for starting attempts.
	PublishedTest(ctx context.Context, testID uint) (domain.Test, error)
}

type userTestService struct {
	catalog  *catalog.Catalog
	testRepo repository.TestRepository
}

func NewUserTestService(c *catalog.Catalog, testRepo repository.TestRepository) UserTestService {
	return &userTestService{catalog: c, testRepo: testRepo}
}

func (s *userTestService) GetAllTests(ctx context.Context, token string) ([]dto.TestSummaryDTO, error) {
	tests, err := s.catalog.Load(ctx, token)
	if err != nil {
		log.Warn().Err(err).Msg("Catalog reload failed, serving previous list")
		return summaries(s.catalog.Tests()), err
	}
	return summaries(tests), nil
}

func summaries(tests []domain.Test) []dto.TestSummaryDTO {
	out := make([]dto.TestSummaryDTO, len(tests))
	for i, t := range tests {
		out[i] = toTestSummaryDTO(t)
	}
	return out
}

func (s *userTestService) GetTestDetails(ctx context.Context, testID uint) (*dto.TestResponseDTO, error) {
	t, err := s.PublishedTest(ctx, testID)
	if err != nil {
		return nil, err
	}
	resp := toTestResponseDTO(t)
	return &resp, nil
}

func (s *userTestService) PublishedTest(ctx context.Context, testID uint) (domain.Test, error) {
	m, err := s.testRepo.FindByIDWithQuestions(ctx, testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Test{}, fmt.Errorf("%w: id %d", domain.ErrTestNotFound, testID)
		}
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to get test details")
		return domain.Test{}, fmt.Errorf("database error fetching test details: %w", err)
	}

	t, err := toDomainTest(m)
	if err != nil {
		return domain.Test{}, err
	}
	// Drafts are invisible to students.
	if !t.IsPublished() {
		return domain.Test{}, fmt.Errorf("%w: id %d", domain.ErrTestNotFound, testID)
	}
	return t, nil
}
