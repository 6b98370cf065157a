package repositories

import (
	"context"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
)

// DebtReader defines read operations for debts
type DebtReader interface {
	// ListDebts retrieves the user's debts, newest first.
	ListDebts(ctx context.Context, userID string) ([]domain.Debt, error)

	// FindDebtByID retrieves a single debt. Returns apperrors.ErrNotFound when absent.
	FindDebtByID(ctx context.Context, userID, debtID string) (*domain.Debt, error)
}

// DebtWriter defines write operations for debts
type DebtWriter interface {
	// SaveDebt persists a new debt.
	SaveDebt(ctx context.Context, userID string, debt domain.Debt) error

	// UpdateDebt replaces a stored debt. Returns apperrors.ErrNotFound when absent.
	UpdateDebt(ctx context.Context, userID string, debt domain.Debt) error

	// DeleteDebt removes a debt. Returns apperrors.ErrNotFound when absent.
	DeleteDebt(ctx context.Context, userID, debtID string) error
}

// DebtRepositoryFacade combines all debt-related repository interfaces
type DebtRepositoryFacade interface {
	DebtReader
	DebtWriter
}
