package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringTemplate is the stored form of a recurring template.
type RecurringTemplate struct {
	TemplateID    string          `json:"templateID"`
	UserID        string          `json:"userID"`
	Description   string          `json:"description"`
	Type          string          `json:"type"`
	PaymentMethod string          `json:"paymentMethod"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	NextDate      time.Time       `json:"nextDate"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}
