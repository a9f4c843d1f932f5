package models

import (
	"time"

	"gorm.io/gorm"
)

// PostStatus defines the moderation state of a post.
type PostStatus string

const (
	// PostStatusPending indicates a post is awaiting moderation.
	PostStatusPending PostStatus = "pending"
	// PostStatusApproved indicates a post is visible platform-wide.
	PostStatusApproved PostStatus = "approved"
	// PostStatusRejected indicates a post was declined by a moderator.
	PostStatusRejected PostStatus = "rejected"
)

// Post represents a user-authored feed post. Every post starts in pending;
// only admins move it to approved or rejected, and a later decision simply
// overwrites an earlier one (admin override is always possible).
type Post struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	AuthorID  uint           `gorm:"not null;index" json:"author_id"`
	Author    User           `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Status    PostStatus     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
