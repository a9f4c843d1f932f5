package repository

import (
	"context"

	"github.com/gokulsivas/ThinkSync/internal/models"

	"gorm.io/gorm"
)

// SavedSearchRepository defines persistence operations for saved directory
// searches.
type SavedSearchRepository interface {
	Create(ctx context.Context, search *models.SavedSearch) error
	ListByUser(ctx context.Context, userID uint) ([]models.SavedSearch, error)
	Delete(ctx context.Context, id, userID uint) error
}

type savedSearchRepository struct {
	db *gorm.DB
}

// NewSavedSearchRepository returns a new SavedSearchRepository implementation.
func NewSavedSearchRepository(db *gorm.DB) SavedSearchRepository {
	return &savedSearchRepository{db: db}
}

func (r *savedSearchRepository) Create(ctx context.Context, search *models.SavedSearch) error {
	if err := r.db.WithContext(ctx).Create(search).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *savedSearchRepository) ListByUser(ctx context.Context, userID uint) ([]models.SavedSearch, error) {
	var searches []models.SavedSearch
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&searches).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return searches, nil
}

// Delete is scoped to the owner; deleting another user's saved search
// reports not found rather than forbidden.
func (r *savedSearchRepository) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.SavedSearch{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Saved search", id)
	}
	return nil
}
