package pgsql

import (
	"context"
	"log/slog"

	"github.com/Basri-akbas/Finance-Tracker/internal/apperrors"
	"github.com/Basri-akbas/Finance-Tracker/internal/middleware"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// dbError wraps a driver error as a persistence failure.
func dbError(message string, err error) error {
	return apperrors.NewAppError(500, message, err)
}

// mustAffect turns an UPDATE or DELETE that matched no row into a not-found error.
func mustAffect(tag pgconn.CommandTag, what string) error {
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(what + " not found")
	}
	return nil
}

// warnMalformed logs records that were skipped on load.
func (r *BaseRepository) warnMalformed(ctx context.Context, table string, err error) {
	if err == nil {
		return
	}
	middleware.GetLoggerFromCtx(ctx).Warn("Skipping malformed stored records",
		slog.String("table", table),
		slog.String("error", err.Error()))
}
