// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Role defines the authorization level of a user account.
type Role string

const (
	// RoleUser is the default role for registered accounts.
	RoleUser Role = "user"
	// RoleAdmin grants access to the moderation endpoints.
	RoleAdmin Role = "admin"
)

// User represents a registered ThinkSync account.
// Email is stored lowercased; uniqueness is enforced at the storage layer.
type User struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Email         string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string         `gorm:"not null" json:"-"`
	Name          string         `gorm:"not null" json:"name"`
	Title         string         `json:"title"`
	Affiliation   string         `json:"affiliation"`
	Role          Role           `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	EmailVerified bool           `gorm:"default:false" json:"email_verified"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	Profile       *Profile       `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Posts         []Post         `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
