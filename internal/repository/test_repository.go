package repository

import (
	"context"

	"github.com/lshigami/mockprep/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	Create(ctx context.Context, test *model.Test) error
	FindByID(ctx context.Context, id uint) (*model.Test, error)
	FindByIDWithQuestions(ctx context.Context, id uint) (*model.Test, error)
	FindAllWithQuestions(ctx context.Context) ([]model.Test, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(ctx context.Context, test *model.Test) error {
	// Questions are created through the association.
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *testRepository) FindByID(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	if err := r.db.WithContext(ctx).First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindByIDWithQuestions(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.WithContext(ctx).Preload("Questions", orderedQuestions).First(&test, id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

// FindAllWithQuestions returns every test regardless of status. Callers that
// expose tests to students filter drafts themselves.
func (r *testRepository) FindAllWithQuestions(ctx context.Context) ([]model.Test, error) {
	var tests []model.Test
	err := r.db.WithContext(ctx).
		Preload("Questions", orderedQuestions).
		Order("tests.created_at DESC").
		Find(&tests).Error
	return tests, err
}

func (r *testRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	res := r.db.WithContext(ctx).Model(&model.Test{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func orderedQuestions(db *gorm.DB) *gorm.DB {
	return db.Order("questions.order_in_test ASC")
}
