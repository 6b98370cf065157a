package pgsql

import (
	"context"
	"errors"

	"github.com/Basri-akbas/Finance-Tracker/internal/apperrors"
	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	portsrepo "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/repositories"
	"github.com/Basri-akbas/Finance-Tracker/internal/models"
	"github.com/Basri-akbas/Finance-Tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

// GetSettings returns apperrors.ErrNotFound for a user who never saved settings.
func (r *PgxSettingsRepository) GetSettings(ctx context.Context, userID string) (*domain.Settings, error) {
	query := `
		SELECT user_id, initial_cash, initial_bank, custom_categories, last_updated_at
		FROM user_settings
		WHERE user_id = $1;
	`
	var m models.Settings
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.InitialCash,
		&m.InitialBank,
		&m.CustomCategories, // jsonb
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, dbError("failed to load settings", err)
	}
	settings := mapping.ToDomainSettings(m)
	return &settings, nil
}

// SaveSettings upserts the whole settings document; the last write wins.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, userID string, settings domain.Settings) error {
	m := mapping.ToModelSettings(userID, settings, settings.UpdatedAt)
	query := `
		INSERT INTO user_settings (user_id, initial_cash, initial_bank, custom_categories, last_updated_at)
		VALUES ($1, $2, $3, $4, COALESCE($5, NOW()))
		ON CONFLICT (user_id) DO UPDATE SET
			initial_cash = EXCLUDED.initial_cash,
			initial_bank = EXCLUDED.initial_bank,
			custom_categories = EXCLUDED.custom_categories,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	var updatedAt any
	if !m.LastUpdatedAt.IsZero() {
		updatedAt = m.LastUpdatedAt
	}
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.InitialCash,
		m.InitialBank,
		m.CustomCategories,
		updatedAt,
	)
	if err != nil {
		return dbError("failed to save settings", err)
	}
	return nil
}
