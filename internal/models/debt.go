package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt is the stored form of a receivable or payable.
type Debt struct {
	DebtID        string          `json:"debtID"`
	UserID        string          `json:"userID"`
	Type          string          `json:"type"`
	Person        string          `json:"person"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}
