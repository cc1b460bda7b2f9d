package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/pta-api/internal/models"
	appErrors "github.com/noah-isme/pta-api/pkg/errors"
)

type messageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	Conversation(ctx context.Context, userA, userB string) ([]models.Message, error)
}

// SendMessageRequest is a direct message payload.
type SendMessageRequest struct {
	SenderID   string `json:"sender_id" validate:"required,uuid"`
	ReceiverID string `json:"receiver_id" validate:"required,uuid,nefield=SenderID"`
	Message    string `json:"message" validate:"required,max=4000"`
}

// MessageService delivers and reads two-party conversations.
type MessageService struct {
	repo      messageRepository
	users     userFinder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMessageService constructs the service.
func NewMessageService(repo messageRepository, users userFinder, validate *validator.Validate, logger *zap.Logger) *MessageService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageService{repo: repo, users: users, validator: validate, logger: logger}
}

// Send stores a message between two existing users.
func (s *MessageService) Send(ctx context.Context, req SendMessageRequest) (*models.Message, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid message payload")
	}
	if _, err := loadUser(ctx, s.users, req.SenderID, ""); err != nil {
		return nil, err
	}
	if _, err := loadUser(ctx, s.users, req.ReceiverID, ""); err != nil {
		return nil, err
	}

	message := &models.Message{SenderID: req.SenderID, ReceiverID: req.ReceiverID, Body: req.Message}
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, appErrors.Internal(err, "failed to send message")
	}
	return message, nil
}

// Conversation returns the messages exchanged by the pair, oldest first.
func (s *MessageService) Conversation(ctx context.Context, userA, userB string) ([]models.Message, error) {
	if err := validateID(s.validator, "user1", userA); err != nil {
		return nil, err
	}
	if err := validateID(s.validator, "user2", userB); err != nil {
		return nil, err
	}
	messages, err := s.repo.Conversation(ctx, userA, userB)
	if err != nil {
		return nil, appErrors.Internal(err, "failed to load conversation")
	}
	return messages, nil
}
