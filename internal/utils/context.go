// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// password hashing, random secrets, HTTP response writing, HTTP client
// initialization, JWT token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-media-hub/models"
	"github.com/google/uuid"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey is the key used to store the authenticated user identifier.
	//
	//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, userID)
	UserIDCtxKey = contextKey("userID")

	// RoleCtxKey is the key used to store the authenticated user role.
	RoleCtxKey = contextKey("role")
)

// GetUserIDFromContext retrieves the user identifier from the context.
//
// ok is false when the value is missing, has an unexpected type or is uuid.Nil.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(uuid.UUID)
	return userID, ok && userID != uuid.Nil
}

// GetRoleFromContext retrieves the user role from the context.
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	return role, ok
}

// WithUser stores the authenticated user identifier and role in ctx.
func WithUser(ctx context.Context, userID uuid.UUID, role models.Role) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, RoleCtxKey, role)
}
