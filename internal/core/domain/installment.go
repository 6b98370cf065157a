package domain

import (
	"fmt"
	"time"

	"github.com/Basri-akbas/Finance-Tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MaxInstallmentDay caps the day-of-month used for materialized installment payments.
const MaxInstallmentDay = 28

// Installment is a purchase paid off in a fixed number of equal monthly payments.
type Installment struct {
	ID               string          `json:"id" yaml:"id"`
	Description      string          `json:"description" yaml:"description"`
	TotalAmount      decimal.Decimal `json:"totalAmount" yaml:"totalAmount"`           // > 0
	InstallmentCount int             `json:"installmentCount" yaml:"installmentCount"` // > 0
	MonthlyAmount    decimal.Decimal `json:"monthlyAmount" yaml:"monthlyAmount"`       // TotalAmount / InstallmentCount, computed once
	StartDate        Date            `json:"startDate" yaml:"startDate"`
	PaidCount        int             `json:"paidCount" yaml:"paidCount"` // 0..InstallmentCount, never decreases
	PaymentMethod    PaymentMethod   `json:"paymentMethod" yaml:"paymentMethod"`
	CreatedAt        time.Time       `json:"createdAt" yaml:"createdAt"`
}

// Validate checks the invariants of a new installment.
func (i Installment) Validate() error {
	if !i.TotalAmount.IsPositive() {
		return apperrors.NewValidationError("total amount must be positive")
	}
	if i.InstallmentCount <= 0 {
		return apperrors.NewValidationError("installment count must be positive")
	}
	if i.StartDate.IsZero() {
		return apperrors.NewValidationError("start date is required")
	}
	if i.PaidCount < 0 || i.PaidCount > i.InstallmentCount {
		return apperrors.NewValidationError("paid count %d out of range [0, %d]", i.PaidCount, i.InstallmentCount)
	}
	if i.PaymentMethod != "" && !i.PaymentMethod.IsValid() {
		return apperrors.NewValidationError("invalid payment method %q", i.PaymentMethod)
	}
	return nil
}

// AmountScale is the number of fractional digits every stored amount keeps.
const AmountScale = 4

// ComputeMonthlyAmount splits the total evenly across the installment count,
// rounded to AmountScale so every store keeps the same value.
func ComputeMonthlyAmount(total decimal.Decimal, count int) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	return total.DivRound(decimal.NewFromInt(int64(count)), AmountScale)
}

// IsSettled reports whether every period has been paid.
func (i Installment) IsSettled() bool {
	return i.PaidCount >= i.InstallmentCount
}

// Remaining is the number of unpaid periods.
func (i Installment) Remaining() int {
	if i.IsSettled() {
		return 0
	}
	return i.InstallmentCount - i.PaidCount
}

// RemainingAmount is the outstanding debt on the installment.
func (i Installment) RemainingAmount() decimal.Decimal {
	return i.MonthlyAmount.Mul(decimal.NewFromInt(int64(i.Remaining())))
}

// DueMonth returns the month in which the zero-based period falls due.
func (i Installment) DueMonth(period int) MonthKey {
	return i.StartDate.MonthKey().AddMonths(period)
}

// DueDate returns the payment date for the zero-based period.
func (i Installment) DueDate(period int) Date {
	return i.DueMonth(period).On(min(i.StartDate.Day, MaxInstallmentDay))
}

// PeriodDescription labels the one-based payment k of the installment.
func (i Installment) PeriodDescription(k int) string {
	return fmt.Sprintf("%s (%d/%d)", i.Description, k, i.InstallmentCount)
}
