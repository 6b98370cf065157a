package repositories

import (
	"context"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
)

// SettingsRepositoryFacade defines persistence of per-user settings
type SettingsRepositoryFacade interface {
	// GetSettings retrieves the user's settings. Returns apperrors.ErrNotFound for a first-time user.
	GetSettings(ctx context.Context, userID string) (*domain.Settings, error)

	// SaveSettings creates or replaces the user's settings.
	SaveSettings(ctx context.Context, userID string, settings domain.Settings) error
}
