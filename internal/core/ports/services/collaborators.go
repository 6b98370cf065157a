package services

import (
	"context"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
)

// AuthProvider supplies the identity every store call is scoped to.
type AuthProvider interface {
	// UserID returns the current user's id, or apperrors.ErrUnauthorized when none is attached.
	UserID(ctx context.Context) (string, error)
}

// Clock supplies the current calendar date.
type Clock interface {
	Today() domain.Date
}

// EventTracker records product analytics events. Implementations must not block.
type EventTracker interface {
	Track(userID, event string, properties map[string]any)
}
