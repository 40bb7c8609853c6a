package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/mockprep/internal/dto"
	"github.com/lshigami/mockprep/internal/model"
	"github.com/lshigami/mockprep/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	SessionExpiredMessage = "Your session has expired. Please log in again."
	LoginLink             = "/login"

	messagePageSize = 50
)

type MessageService interface {
	GetMessages(ctx context.Context, userID uuid.UUID) ([]dto.MessageDTO, error)
	// NotifySessionExpired tells the user to log in again.
	NotifySessionExpired(ctx context.Context, userID uuid.UUID) error
	NotifyResult(ctx context.Context, userID uuid.UUID, attemptID uuid.UUID, testTitle string, score, questionCount int) error
}

type messageService struct {
	messageRepo repository.MessageRepository
}

func NewMessageService(messageRepo repository.MessageRepository) MessageService {
	return &messageService{messageRepo: messageRepo}
}

func (s *messageService) GetMessages(ctx context.Context, userID uuid.UUID) ([]dto.MessageDTO, error) {
	msgs, err := s.messageRepo.FindByRecipient(ctx, userID, messagePageSize)
	if err != nil {
		log.Error().Err(err).Str("userID", userID.String()).Msg("Failed to load messages")
		return nil, fmt.Errorf("database error fetching messages: %w", err)
	}
	resp := make([]dto.MessageDTO, 0, len(msgs))
	if err := copier.Copy(&resp, &msgs); err != nil {
		return nil, fmt.Errorf("error preparing messages: %w", err)
	}
	return resp, nil
}

func (s *messageService) NotifySessionExpired(ctx context.Context, userID uuid.UUID) error {
	link := LoginLink
	return s.send(ctx, &model.Message{RecipientID: userID, Content: SessionExpiredMessage, Link: &link})
}

func (s *messageService) NotifyResult(ctx context.Context, userID uuid.UUID, attemptID uuid.UUID, testTitle string, score, questionCount int) error {
	link := fmt.Sprintf("/attempts/%s", attemptID)
	content := fmt.Sprintf("You scored %d/%d on %q.", score, questionCount, testTitle)
	return s.send(ctx, &model.Message{RecipientID: userID, Content: content, Link: &link})
}

func (s *messageService) send(ctx context.Context, msg *model.Message) error {
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return fmt.Errorf("store message: %w", err)
	}
	log.Debug().Str("recipient", msg.RecipientID.String()).Str("content", msg.Content).Msg("Message sent")
	return nil
}
