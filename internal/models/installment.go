package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Installment is the stored form of an installment plan.
type Installment struct {
	InstallmentID    string          `json:"installmentID"`
	UserID           string          `json:"userID"`
	Description      string          `json:"description"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	InstallmentCount int             `json:"installmentCount"`
	MonthlyAmount    decimal.Decimal `json:"monthlyAmount"`
	StartDate        time.Time       `json:"startDate"`
	PaidCount        int             `json:"paidCount"`
	PaymentMethod    string          `json:"paymentMethod"`
	CreatedAt        time.Time       `json:"createdAt"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
}
