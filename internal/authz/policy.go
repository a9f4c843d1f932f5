// Package authz holds the single authorization policy applied by route guards.
package authz

import "github.com/gokulsivas/ThinkSync/internal/models"

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	UserID uint
	Email  string
	Role   models.Role
}

// Allow reports whether the identity satisfies the required role.
// Admins satisfy every role requirement.
func Allow(id Identity, required models.Role) bool {
	if id.UserID == 0 {
		return false
	}
	if id.Role == models.RoleAdmin {
		return true
	}
	return id.Role == required
}
