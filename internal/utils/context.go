// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys for request-scoped
// values, username sanitization, and HTTP response writing.
package utils

import (
	"context"

	"showshelf/models"
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

// UserCtxKey is the key under which the resolved list owner is stored in
// the request context by the withUser middleware.
var UserCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying the resolved user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the resolved user from the context.
//
// Returns the user and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
