package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the stored form of a ledger entry.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	UserID          string          `json:"userID"` // Owner; every query filters on it
	Type            string          `json:"type"`
	PaymentMethod   string          `json:"paymentMethod"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transactionDate"` // Calendar date at midnight UTC
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	IsAutoGenerated bool            `json:"isAutoGenerated"`
	IsRecurring     bool            `json:"isRecurring"`
	InstallmentID   *string         `json:"installmentID,omitempty"`
	RecurringID     *string         `json:"recurringID,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}
