package service

import (
	"context"
	"strings"

	"github.com/gokulsivas/ThinkSync/internal/models"
	"github.com/gokulsivas/ThinkSync/internal/repository"
)

const maxPostContentLen = 10000

// PostService handles feed post creation and listing.
type PostService struct {
	postRepo repository.PostRepository
}

// ListFeedInput identifies the viewer and the page being requested.
type ListFeedInput struct {
	ViewerID      uint
	ViewerIsAdmin bool
	Limit         int
	Offset        int
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost submits a new post. Every submission enters the moderation
// queue as pending regardless of who the author is.
func (s *PostService) CreatePost(ctx context.Context, authorID uint, content string) (*models.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Post content cannot be empty")
	}
	if len(content) > maxPostContentLen {
		return nil, models.NewValidationError("Post content too long (max 10000 characters)")
	}

	post := &models.Post{
		AuthorID: authorID,
		Content:  content,
		Status:   models.PostStatusPending,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// ListFeed returns the posts the viewer is allowed to see, newest first.
// Non-admins see approved posts plus their own submissions in any state.
func (s *PostService) ListFeed(ctx context.Context, in ListFeedInput) ([]models.Post, error) {
	limit, offset := clampPage(in.Limit, in.Offset)
	return s.postRepo.ListVisible(ctx, in.ViewerID, in.ViewerIsAdmin, limit, offset)
}

// ListMine returns the caller's own posts in every moderation state.
func (s *PostService) ListMine(ctx context.Context, authorID uint, limit, offset int) ([]models.Post, error) {
	limit, offset = clampPage(limit, offset)
	return s.postRepo.ListByAuthor(ctx, authorID, limit, offset)
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
