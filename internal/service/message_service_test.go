package service

import (
	"context"
	"testing"

	"github.com/gokulsivas/ThinkSync/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageService_SendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("first contact creates the conversation with both participants", func(t *testing.T) {
		var participants []uint
		chatRepo := noopChatRepo()
		chatRepo.addParticipantFn = func(_ context.Context, convID, userID uint) error {
			assert.Equal(t, uint(1), convID)
			participants = append(participants, userID)
			return nil
		}
		svc := NewMessageService(chatRepo, noopUserRepo())

		msg, err := svc.SendMessage(ctx, 7, 8, "Hello, saw your paper on glaciers")
		require.NoError(t, err)
		assert.Equal(t, uint(1), msg.ConversationID)
		assert.Equal(t, uint(7), msg.SenderID)
		assert.ElementsMatch(t, []uint{7, 8}, participants)
	})

	t.Run("existing conversation is reused", func(t *testing.T) {
		chatRepo := noopChatRepo()
		chatRepo.findDirectFn = func(_ context.Context, _, _ uint) (*models.Conversation, error) {
			return &models.Conversation{ID: 42}, nil
		}
		chatRepo.createConvFn = func(_ context.Context, _ *models.Conversation) error {
			t.Fatal("should not create a second conversation")
			return nil
		}
		svc := NewMessageService(chatRepo, noopUserRepo())

		msg, err := svc.SendMessage(ctx, 7, 8, "Following up")
		require.NoError(t, err)
		assert.Equal(t, uint(42), msg.ConversationID)
	})

	t.Run("rejects empty content and self messaging", func(t *testing.T) {
		svc := NewMessageService(noopChatRepo(), noopUserRepo())

		_, err := svc.SendMessage(ctx, 7, 8, "   ")
		assertValidationError(t, err)

		_, err = svc.SendMessage(ctx, 7, 7, "hi me")
		assertValidationError(t, err)
	})

	t.Run("unknown recipient is not found", func(t *testing.T) {
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		svc := NewMessageService(noopChatRepo(), userRepo)

		_, err := svc.SendMessage(ctx, 7, 999, "hello?")
		assertAppErrorCode(t, err, "NOT_FOUND")
	})
}

func TestMessageService_GetMessages(t *testing.T) {
	ctx := context.Background()

	t.Run("participant reads messages", func(t *testing.T) {
		chatRepo := noopChatRepo()
		chatRepo.getMessagesFn = func(_ context.Context, convID uint, limit, offset int) ([]*models.Message, error) {
			assert.Equal(t, uint(5), convID)
			assert.Equal(t, 20, limit)
			return []*models.Message{{ID: 1, ConversationID: convID}}, nil
		}
		svc := NewMessageService(chatRepo, noopUserRepo())

		msgs, err := svc.GetMessages(ctx, 7, 5, 0, 0)
		require.NoError(t, err)
		assert.Len(t, msgs, 1)
	})

	t.Run("non-participant gets not found", func(t *testing.T) {
		chatRepo := noopChatRepo()
		chatRepo.isParticipantFn = func(_ context.Context, _, _ uint) (bool, error) { return false, nil }
		svc := NewMessageService(chatRepo, noopUserRepo())

		_, err := svc.GetMessages(ctx, 9, 5, 0, 0)
		assertAppErrorCode(t, err, "NOT_FOUND")
	})
}

func TestMessageService_MarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("participant marks conversation read", func(t *testing.T) {
		marked := false
		chatRepo := noopChatRepo()
		chatRepo.markConvReadFn = func(_ context.Context, convID, userID uint) error {
			marked = true
			assert.Equal(t, uint(5), convID)
			assert.Equal(t, uint(7), userID)
			return nil
		}
		svc := NewMessageService(chatRepo, noopUserRepo())

		require.NoError(t, svc.MarkRead(ctx, 7, 5))
		assert.True(t, marked)
	})

	t.Run("non-participant cannot mark read", func(t *testing.T) {
		chatRepo := noopChatRepo()
		chatRepo.isParticipantFn = func(_ context.Context, _, _ uint) (bool, error) { return false, nil }
		svc := NewMessageService(chatRepo, noopUserRepo())

		err := svc.MarkRead(ctx, 9, 5)
		assertAppErrorCode(t, err, "NOT_FOUND")
	})
}
