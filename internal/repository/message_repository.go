package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lshigami/mockprep/internal/model"
	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *model.Message) error
	FindByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]model.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *model.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepository) FindByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]model.Message, error) {
	var msgs []model.Message
	q := r.db.WithContext(ctx).Where("recipient_id = ?", recipientID).Order("sent_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&msgs).Error
	return msgs, err
}
