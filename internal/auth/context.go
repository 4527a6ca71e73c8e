package auth

import (
	"context"

	"github.com/applytrack/applytrack/internal/model"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// userContextKey is the context key for storing the caller's AuthContext.
const userContextKey contextKey = "auth_user"

// ContextWithUser adds the verified caller identity to the context.
func ContextWithUser(ctx context.Context, user *model.AuthContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext retrieves the caller identity from the context.
// Returns nil if not present.
func UserFromContext(ctx context.Context) *model.AuthContext {
	user, ok := ctx.Value(userContextKey).(*model.AuthContext)
	if !ok {
		return nil
	}
	return user
}

// UserIDFromContext is a convenience function to get the caller's user ID.
// Returns empty string if not authenticated.
func UserIDFromContext(ctx context.Context) string {
	user := UserFromContext(ctx)
	if user == nil {
		return ""
	}
	return user.UserID
}
