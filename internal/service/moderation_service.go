package service

import (
	"context"
	"time"

	"github.com/gokulsivas/ThinkSync/internal/middleware"
	"github.com/gokulsivas/ThinkSync/internal/models"
	"github.com/gokulsivas/ThinkSync/internal/repository"
)

// PendingPostRow is a moderation queue entry with the author resolved.
type PendingPostRow struct {
	ID          uint      `json:"id"`
	AuthorID    uint      `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	Content     string    `json:"content"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ModerationService implements the admin review workflow for posts.
type ModerationService struct {
	postRepo repository.PostRepository
}

// NewModerationService returns a new ModerationService.
func NewModerationService(postRepo repository.PostRepository) *ModerationService {
	return &ModerationService{postRepo: postRepo}
}

// ListPending returns the review queue oldest-first.
func (s *ModerationService) ListPending(ctx context.Context) ([]PendingPostRow, error) {
	posts, err := s.postRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]PendingPostRow, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, PendingPostRow{
			ID:          p.ID,
			AuthorID:    p.AuthorID,
			AuthorName:  p.Author.Name,
			AuthorEmail: p.Author.Email,
			Content:     p.Content,
			SubmittedAt: p.CreatedAt,
		})
	}
	return rows, nil
}

// Approve marks the post approved. Repeat decisions overwrite earlier ones,
// so an admin can reverse a decision at any time.
func (s *ModerationService) Approve(ctx context.Context, postID uint) (*models.Post, error) {
	return s.decide(ctx, postID, models.PostStatusApproved)
}

// Reject marks the post rejected.
func (s *ModerationService) Reject(ctx context.Context, postID uint) (*models.Post, error) {
	return s.decide(ctx, postID, models.PostStatusRejected)
}

func (s *ModerationService) decide(ctx context.Context, postID uint, status models.PostStatus) (*models.Post, error) {
	if err := s.postRepo.UpdateStatus(ctx, postID, status); err != nil {
		return nil, err
	}
	middleware.ModerationDecisions.WithLabelValues(string(status)).Inc()
	middleware.Logger.InfoContext(ctx, "moderation decision", "post_id", postID, "status", status)
	return s.postRepo.GetByID(ctx, postID)
}
