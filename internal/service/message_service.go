package service

import (
	"context"
	"strings"

	"github.com/gokulsivas/ThinkSync/internal/models"
	"github.com/gokulsivas/ThinkSync/internal/repository"
)

const maxMessageLen = 5000

// MessageService implements persisted direct messaging between researchers.
type MessageService struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository
}

// NewMessageService returns a new MessageService.
func NewMessageService(chatRepo repository.ChatRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{chatRepo: chatRepo, userRepo: userRepo}
}

// SendMessage delivers a message to the recipient, creating the direct
// conversation on first contact.
func (s *MessageService) SendMessage(ctx context.Context, senderID, recipientID uint, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Message content cannot be empty")
	}
	if len(content) > maxMessageLen {
		return nil, models.NewValidationError("Message too long (max 5000 characters)")
	}
	if senderID == recipientID {
		return nil, models.NewValidationError("Cannot send a message to yourself")
	}

	// Confirms the recipient exists before creating any chat rows
	if _, err := s.userRepo.GetByID(ctx, recipientID); err != nil {
		return nil, err
	}

	conv, err := s.chatRepo.FindDirectConversation(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		conv = &models.Conversation{CreatedBy: senderID}
		if err := s.chatRepo.CreateConversation(ctx, conv); err != nil {
			return nil, err
		}
		if err := s.chatRepo.AddParticipant(ctx, conv.ID, senderID); err != nil {
			return nil, err
		}
		if err := s.chatRepo.AddParticipant(ctx, conv.ID, recipientID); err != nil {
			return nil, err
		}
	}

	msg := &models.Message{
		ConversationID: conv.ID,
		SenderID:       senderID,
		Content:        content,
	}
	if err := s.chatRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// ListConversations returns the caller's conversations ordered by recency.
func (s *MessageService) ListConversations(ctx context.Context, userID uint) ([]*models.Conversation, error) {
	return s.chatRepo.GetUserConversations(ctx, userID)
}

// GetMessages returns a page of messages in chronological order. The caller
// must be a participant; anyone else gets a not-found rather than a hint
// that the conversation exists.
func (s *MessageService) GetMessages(ctx context.Context, userID, convID uint, limit, offset int) ([]*models.Message, error) {
	if err := s.requireParticipant(ctx, convID, userID); err != nil {
		return nil, err
	}
	limit, offset = clampPage(limit, offset)
	return s.chatRepo.GetMessages(ctx, convID, limit, offset)
}

// MarkRead resets the caller's unread counter and marks the other side's
// messages as read.
func (s *MessageService) MarkRead(ctx context.Context, userID, convID uint) error {
	if err := s.requireParticipant(ctx, convID, userID); err != nil {
		return err
	}
	return s.chatRepo.MarkConversationRead(ctx, convID, userID)
}

func (s *MessageService) requireParticipant(ctx context.Context, convID, userID uint) error {
	ok, err := s.chatRepo.IsParticipant(ctx, convID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return models.NewNotFoundError("Conversation", convID)
	}
	return nil
}
