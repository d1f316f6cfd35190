// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Roles a user may hold.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleOperator
}

// User is an operator or administrator of the back office.
// Users are deactivated, never deleted, so audit entries and payments keep
// resolving the name.
type User struct {
	ID uint `gorm:"primaryKey"`

	Name string `gorm:"size:100;not null"`

	// Email is the login name. Unique across active and inactive users.
	Email string `gorm:"uniqueIndex;size:120;not null"`

	// PasswordHash is a bcrypt hash. Plaintext is never stored.
	PasswordHash string `gorm:"size:255;not null"`

	Role   string `gorm:"size:20;not null;default:operator"`
	Active bool   `gorm:"not null;default:true;index"`

	CreatedAt   time.Time
	LastLoginAt *time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
