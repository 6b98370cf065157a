package domain

import (
	"time"

	"github.com/Basri-akbas/Finance-Tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// RecurringTemplate is an open-ended monthly obligation or income.
type RecurringTemplate struct {
	ID            string          `json:"id" yaml:"id"`
	Description   string          `json:"description" yaml:"description"`
	Type          TransactionType `json:"type" yaml:"type"`
	PaymentMethod PaymentMethod   `json:"paymentMethod" yaml:"paymentMethod"`
	Amount        decimal.Decimal `json:"amount" yaml:"amount"`
	Category      string          `json:"category" yaml:"category"`
	NextDate      Date            `json:"nextDate" yaml:"nextDate"` // Next occurrence not yet materialized
	CreatedAt     time.Time       `json:"createdAt" yaml:"createdAt"`
}

// Validate checks the user-editable fields of the template.
func (r RecurringTemplate) Validate() error {
	if !r.Type.IsValid() {
		return apperrors.NewValidationError("invalid transaction type %q", r.Type)
	}
	if !r.PaymentMethod.IsValid() {
		return apperrors.NewValidationError("invalid payment method %q", r.PaymentMethod)
	}
	if r.Amount.IsNegative() {
		return apperrors.NewValidationError("amount must not be negative")
	}
	if r.NextDate.IsZero() {
		return apperrors.NewValidationError("next date is required")
	}
	if r.Category == "" {
		return apperrors.NewValidationError("category is required")
	}
	return nil
}

// Occurrence builds the transaction for the occurrence dated on.
func (r RecurringTemplate) Occurrence(on Date) Transaction {
	return Transaction{
		Type:            r.Type,
		PaymentMethod:   r.PaymentMethod.OrDefault(),
		Amount:          r.Amount,
		Date:            on,
		Category:        r.Category,
		Description:     r.Description,
		IsAutoGenerated: true,
		IsRecurring:     true,
		RecurringID:     r.ID,
	}
}
