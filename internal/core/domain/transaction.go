package domain

import (
	"time"

	"github.com/Basri-akbas/Finance-Tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense entry affecting one balance.
type Transaction struct {
	ID              string          `json:"id" yaml:"id"`                                         // Opaque, never reused
	Type            TransactionType `json:"type" yaml:"type"`                                     // income or expense
	PaymentMethod   PaymentMethod   `json:"paymentMethod" yaml:"paymentMethod"`                   // cash or bank
	Amount          decimal.Decimal `json:"amount" yaml:"amount"`                                 // Non-negative
	Date            Date            `json:"date" yaml:"date"`                                     // Local calendar date
	Category        string          `json:"category" yaml:"category"`                             // Built-in or custom category id
	Description     string          `json:"description" yaml:"description"`                       // Free text
	CreatedAt       time.Time       `json:"createdAt" yaml:"createdAt"`                           // Immutable once set
	IsAutoGenerated bool            `json:"isAutoGenerated" yaml:"isAutoGenerated"`               // Materialized by a projector
	IsRecurring     bool            `json:"isRecurring" yaml:"isRecurring"`                       // Materialized from a recurring template
	InstallmentID   string          `json:"installmentId,omitempty" yaml:"installmentId,omitempty"` // Weak reference, may dangle
	RecurringID     string          `json:"recurringId,omitempty" yaml:"recurringId,omitempty"`     // Weak reference, may dangle
}

// Validate checks the user-editable fields of the transaction.
func (t Transaction) Validate() error {
	if !t.Type.IsValid() {
		return apperrors.NewValidationError("invalid transaction type %q", t.Type)
	}
	if !t.PaymentMethod.IsValid() {
		return apperrors.NewValidationError("invalid payment method %q", t.PaymentMethod)
	}
	if t.Amount.IsNegative() {
		return apperrors.NewValidationError("amount must not be negative")
	}
	if t.Date.IsZero() {
		return apperrors.NewValidationError("date is required")
	}
	if t.Category == "" {
		return apperrors.NewValidationError("category is required")
	}
	return nil
}

// InMonth reports whether the transaction date falls in the given month.
func (t Transaction) InMonth(key MonthKey) bool {
	return t.Date.MonthKey() == key
}

// ApplyEdit returns t with every user-editable field replaced by those of edit.
// Identity, creation time and projector links are kept from t.
func (t Transaction) ApplyEdit(edit Transaction) Transaction {
	edit.ID = t.ID
	edit.CreatedAt = t.CreatedAt
	edit.IsAutoGenerated = t.IsAutoGenerated
	edit.IsRecurring = t.IsRecurring
	edit.InstallmentID = t.InstallmentID
	edit.RecurringID = t.RecurringID
	return edit
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	Type  TransactionType // Empty means all types
	Month *MonthKey       // Nil means every month
}

// Matches reports whether t passes the filter.
func (f TransactionFilter) Matches(t Transaction) bool {
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Month != nil && !t.InMonth(*f.Month) {
		return false
	}
	return true
}
