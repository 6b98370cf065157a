package services

import (
	"context"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	"github.com/Basri-akbas/Finance-Tracker/internal/dto"
	"github.com/shopspring/decimal"
)

// InstallmentReaderSvc defines read operations for installments
type InstallmentReaderSvc interface {
	// ListInstallments returns the user's installments in stored order.
	ListInstallments(ctx context.Context) ([]domain.Installment, error)

	// GetInstallment retrieves a single installment.
	GetInstallment(ctx context.Context, installmentID string) (*domain.Installment, error)

	// ActiveInstallmentTotal sums the remaining amount over every installment.
	ActiveInstallmentTotal(ctx context.Context) (decimal.Decimal, error)
}

// InstallmentWriterSvc defines write operations for installments
type InstallmentWriterSvc interface {
	// CreateInstallment records a new installment with paid count zero.
	CreateInstallment(ctx context.Context, req dto.CreateInstallmentRequest) (*domain.Installment, error)

	// PayInstallment marks one more period as paid without creating a transaction.
	// Paying a settled installment is a no-op.
	PayInstallment(ctx context.Context, installmentID string) (*domain.Installment, error)

	// DeleteInstallment removes the installment. Its transactions stay in the ledger.
	DeleteInstallment(ctx context.Context, installmentID string) error
}

// InstallmentProjectorSvc materializes due installment periods
type InstallmentProjectorSvc interface {
	// CatchUp creates one transaction per uncovered period whose payment date is on or before today.
	CatchUp(ctx context.Context, today domain.Date) (domain.CatchUpReport, error)
}

// InstallmentSvcFacade combines all installment-related service interfaces
type InstallmentSvcFacade interface {
	InstallmentReaderSvc
	InstallmentWriterSvc
	InstallmentProjectorSvc
}
