package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/acadio/backend/internal/app/models"
	"github.com/acadio/backend/internal/app/models/dto"
	"github.com/acadio/backend/internal/app/repositories"
	"github.com/acadio/backend/internal/pkg/apperrors"
)

// MessageService handles support messages between students and admins
type MessageService struct {
	messageRepo *repositories.MessageRepository
	logger      zerolog.Logger
}

// NewMessageService creates a new MessageService
func NewMessageService(messageRepo *repositories.MessageRepository, logger zerolog.Logger) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// SendMessage records a new open support message from a student
func (s *MessageService) SendMessage(ctx context.Context, studentID int64, req *dto.SendMessageRequest) (*models.Message, error) {
	message, err := s.messageRepo.Create(ctx, studentID, req.Subject, req.Message)
	if err != nil {
		return nil, fmt.Errorf("error sending message: %w", err)
	}

	s.logger.Info().Int64("studentID", studentID).Int64("messageID", message.ID).Msg("Support message received")

	return message, nil
}

// ListMessages returns all messages for the admin inbox, newest first,
// narrowed by the optional name, subject and status filters
func (s *MessageService) ListMessages(ctx context.Context, filter *dto.MessageFilter) ([]*dto.AdminMessageResponse, error) {
	messages, err := s.messageRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	return messages, nil
}

// ResolveMessage marks a message as resolved by the given admin. Resolving
// a message that is already resolved succeeds and re-stamps the resolver.
func (s *MessageService) ResolveMessage(ctx context.Context, id, adminID int64) (*models.Message, error) {
	message, err := s.messageRepo.Resolve(ctx, id, adminID)
	if err != nil {
		if errors.Is(err, repositories.ErrMessageNotFound) {
			return nil, apperrors.NewNotFoundError("Message not found")
		}
		return nil, fmt.Errorf("error resolving message: %w", err)
	}

	s.logger.Info().Int64("messageID", id).Int64("adminID", adminID).Msg("Support message resolved")

	return message, nil
}
