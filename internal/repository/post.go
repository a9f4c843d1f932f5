package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gokulsivas/ThinkSync/internal/cache"
	"github.com/gokulsivas/ThinkSync/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for feed posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	ListVisible(ctx context.Context, viewerID uint, viewerIsAdmin bool, limit, offset int) ([]models.Post, error)
	ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]models.Post, error)
	ListPending(ctx context.Context) ([]models.Post, error)
	UpdateStatus(ctx context.Context, id uint, status models.PostStatus) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.Invalidate(ctx, cache.PendingQueueKey)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Preload("Author").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// ListVisible applies the feed visibility rule in the query itself: admins
// see every post, everyone else sees approved posts plus their own.
func (r *postRepository) ListVisible(ctx context.Context, viewerID uint, viewerIsAdmin bool, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	q := r.db.WithContext(ctx).Preload("Author")
	if !viewerIsAdmin {
		q = q.Where("status = ? OR author_id = ?", models.PostStatusApproved, viewerID)
	}
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// ListPending returns the moderation queue oldest-first so the longest
// waiting submission is reviewed first. The queue is cached briefly;
// Create and UpdateStatus drop the key.
func (r *postRepository) ListPending(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := cache.Aside(ctx, cache.PendingQueueKey, &posts, cache.PendingTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("Author").
			Where("status = ?", models.PostStatusPending).
			Order("created_at ASC").
			Find(&posts).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdateStatus overwrites whatever status the post currently has. A repeat
// or reversed decision is a plain update, not an error.
func (r *postRepository) UpdateStatus(ctx context.Context, id uint, status models.PostStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Post", id)
	}
	cache.Invalidate(ctx, cache.PendingQueueKey)
	return nil
}
