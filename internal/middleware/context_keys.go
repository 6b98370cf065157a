package middleware

import (
	"context"
	"log/slog"

	"github.com/Basri-akbas/Finance-Tracker/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID in the request context.
const userIDKey = contextKey("userID")

// WithUserID returns a copy of ctx scoped to userID. The logger in ctx is enriched with the id.
func WithUserID(ctx context.Context, userID string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return WithLogger(ctx, GetLoggerFromCtx(ctx).With(slog.String("user_id", userID)))
}

// UserIDFromCtx returns the user id stored by WithUserID.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin request context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return UserIDFromCtx(c.Request.Context())
}

// ContextAuthProvider resolves the current user from the context,
// whether it was placed there by AuthMiddleware or by the CLI.
type ContextAuthProvider struct{}

// UserID returns the user id in ctx or apperrors.ErrUnauthorized.
func (ContextAuthProvider) UserID(ctx context.Context) (string, error) {
	userID, ok := UserIDFromCtx(ctx)
	if !ok {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}
