package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the authorization level of a user account.
type Role string

const (
	// RoleUser is assigned to every account created through sign-up.
	RoleUser Role = "USER"
	// RoleAdmin grants access to media catalog mutations.
	RoleAdmin Role = "ADMIN"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents an account entity used for authentication and authorization.
// Users are never physically removed; only the password is mutable after sign-up.
type User struct {
	// ID is the unique identifier of the user.
	ID uuid.UUID `json:"id"`

	// Email is the unique sign-in identifier. It is immutable after creation.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	Password string `json:"-"`

	// Role is the authorization level of the account.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
