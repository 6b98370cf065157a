package dto

import (
	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DebtRequest defines the data needed to create or edit a debt.
type DebtRequest struct {
	Type        string          `json:"type" binding:"required,oneof=receivable payable"`
	Person      string          `json:"person" binding:"required,max=120"`
	Amount      decimal.Decimal `json:"amount" binding:"gt=0"`
	DueDate     string          `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Description string          `json:"description" binding:"max=255"`
}

// ToDomain converts the request into an unsaved, waiting debt.
func (r DebtRequest) ToDomain() (domain.Debt, error) {
	debt := domain.Debt{
		Type:        domain.DebtType(r.Type),
		Person:      r.Person,
		Amount:      r.Amount,
		Description: r.Description,
		Status:      domain.DebtWaiting,
	}
	if r.DueDate != "" {
		due, err := domain.ParseDate(r.DueDate)
		if err != nil {
			return domain.Debt{}, err
		}
		debt.DueDate = &due
	}
	return debt, nil
}
