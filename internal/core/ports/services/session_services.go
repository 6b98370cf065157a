package services

import (
	"context"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
)

// SessionSvcFacade runs the start-of-session catch-up and the dashboard summary
type SessionSvcFacade interface {
	// StartSession runs installment catch-up, then recurring catch-up, then computes the summary.
	StartSession(ctx context.Context) (*domain.SessionReport, error)

	// Summary computes the dashboard figures without running any catch-up.
	Summary(ctx context.Context) (*domain.Summary, error)

	// Export returns a snapshot of all the user's data.
	Export(ctx context.Context) (*domain.Snapshot, error)
}
