package services

import (
	"context"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	"github.com/Basri-akbas/Finance-Tracker/internal/dto"
	"github.com/shopspring/decimal"
)

// CategorySvcFacade defines category lookup and custom category management
type CategorySvcFacade interface {
	// Resolver returns a resolver over the built-in and the user's custom categories.
	Resolver(ctx context.Context) (domain.CategoryResolver, error)

	// ListCategories returns the built-in and custom categories of a type.
	ListCategories(ctx context.Context, txnType domain.TransactionType) ([]domain.Category, error)

	// AddCustomCategory creates a custom category with a generated id.
	AddCustomCategory(ctx context.Context, txnType domain.TransactionType, name string) (*domain.Category, error)

	// DeleteCustomCategory removes a custom category. Transactions keep the stale id.
	DeleteCustomCategory(ctx context.Context, txnType domain.TransactionType, categoryID string) error
}

// BalanceSvcFacade defines initial-balance management
type BalanceSvcFacade interface {
	// GetSettings returns the user's settings, or the defaults for a first-time user.
	GetSettings(ctx context.Context) (*domain.Settings, error)

	// SetInitialBalance stores an initial balance directly.
	SetInitialBalance(ctx context.Context, method domain.PaymentMethod, amount decimal.Decimal) (decimal.Decimal, error)

	// SetTargetBalance back-solves and stores the initial balance that yields target as the current balance.
	SetTargetBalance(ctx context.Context, method domain.PaymentMethod, target decimal.Decimal) (decimal.Decimal, error)
}

// DebtSvcFacade defines debt tracking
type DebtSvcFacade interface {
	ListDebts(ctx context.Context) ([]domain.Debt, error)
	CreateDebt(ctx context.Context, req dto.DebtRequest) (*domain.Debt, error)

	// UpdateDebt replaces the editable fields of a debt, keeping its status.
	UpdateDebt(ctx context.Context, debtID string, req dto.DebtRequest) (*domain.Debt, error)
	MarkDebtPaid(ctx context.Context, debtID string) (*domain.Debt, error)
	DeleteDebt(ctx context.Context, debtID string) error

	// WaitingTotals sums the unpaid debts per direction.
	WaitingTotals(ctx context.Context) (*domain.DebtTotals, error)
}
