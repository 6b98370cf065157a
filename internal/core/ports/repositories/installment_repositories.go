package repositories

import (
	"context"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
)

// InstallmentReader defines read operations for installments
type InstallmentReader interface {
	// ListInstallments retrieves the user's installments in stored order (newest first).
	ListInstallments(ctx context.Context, userID string) ([]domain.Installment, error)

	// FindInstallmentByID retrieves a single installment. Returns apperrors.ErrNotFound when absent.
	FindInstallmentByID(ctx context.Context, userID, installmentID string) (*domain.Installment, error)
}

// InstallmentWriter defines write operations for installments
type InstallmentWriter interface {
	// SaveInstallment persists a new installment.
	SaveInstallment(ctx context.Context, userID string, installment domain.Installment) error

	// UpdateInstallmentPaidCount stores a new paid count. Returns apperrors.ErrNotFound when absent.
	UpdateInstallmentPaidCount(ctx context.Context, userID, installmentID string, paidCount int) error

	// DeleteInstallment removes an installment. Returns apperrors.ErrNotFound when absent.
	DeleteInstallment(ctx context.Context, userID, installmentID string) error
}

// InstallmentRepositoryFacade combines all installment-related repository interfaces
type InstallmentRepositoryFacade interface {
	InstallmentReader
	InstallmentWriter
}
