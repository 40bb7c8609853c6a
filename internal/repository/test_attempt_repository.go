package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lshigami/mockprep/internal/model"
	"gorm.io/gorm"
)

type TestAttemptRepository interface {
	Create(ctx context.Context, attempt *model.TestAttempt) error
	FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*model.TestAttempt, error)
	FindAllByTestAndUser(ctx context.Context, testID uint, userID uuid.UUID) ([]model.TestAttempt, error)
}

type testAttemptRepository struct {
	db *gorm.DB
}

func NewTestAttemptRepository(db *gorm.DB) TestAttemptRepository {
	return &testAttemptRepository{db: db}
}

func (r *testAttemptRepository) Create(ctx context.Context, attempt *model.TestAttempt) error {
	// GORM creates the associated Answers in the same statement batch.
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *testAttemptRepository) FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	err := r.db.WithContext(ctx).
		Preload("Test").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.question_index ASC")
		}).
		First(&attempt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *testAttemptRepository) FindAllByTestAndUser(ctx context.Context, testID uint, userID uuid.UUID) ([]model.TestAttempt, error) {
	var attempts []model.TestAttempt
	err := r.db.WithContext(ctx).
		Where("test_id = ? AND user_id = ?", testID, userID).
		Order("finished_at DESC").
		Find(&attempts).Error
	return attempts, err
}
