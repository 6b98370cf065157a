package domain

import (
	"time"

	"github.com/Basri-akbas/Finance-Tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DebtType tells who owes whom.
type DebtType string

const (
	Receivable DebtType = "receivable" // Someone owes the user
	Payable    DebtType = "payable"    // The user owes someone
)

// DebtStatus is the settlement state of a debt.
type DebtStatus string

const (
	DebtWaiting DebtStatus = "waiting"
	DebtPaid    DebtStatus = "paid"
)

// Debt is tracked separately from the ledger and never affects balances.
type Debt struct {
	ID          string          `json:"id" yaml:"id"`
	Type        DebtType        `json:"type" yaml:"type"`
	Person      string          `json:"person" yaml:"person"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	DueDate     *Date           `json:"dueDate,omitempty" yaml:"dueDate,omitempty"` // Optional
	Description string          `json:"description" yaml:"description"`
	Status      DebtStatus      `json:"status" yaml:"status"`
	CreatedAt   time.Time       `json:"createdAt" yaml:"createdAt"`
}

// Validate checks the user-editable fields of the debt.
func (d Debt) Validate() error {
	if d.Type != Receivable && d.Type != Payable {
		return apperrors.NewValidationError("invalid debt type %q", d.Type)
	}
	if d.Person == "" {
		return apperrors.NewValidationError("person is required")
	}
	if !d.Amount.IsPositive() {
		return apperrors.NewValidationError("amount must be positive")
	}
	if d.Status != DebtWaiting && d.Status != DebtPaid {
		return apperrors.NewValidationError("invalid debt status %q", d.Status)
	}
	return nil
}

// DebtTotals sums the waiting debts in each direction.
type DebtTotals struct {
	Receivable decimal.Decimal `json:"receivable"`
	Payable    decimal.Decimal `json:"payable"`
}
