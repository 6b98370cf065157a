package dto

import (
	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecurringTemplateRequest defines the data needed to create or edit a recurring template.
type RecurringTemplateRequest struct {
	Description   string          `json:"description" binding:"required,max=255"`
	Type          string          `json:"type" binding:"required,oneof=income expense"`
	PaymentMethod string          `json:"paymentMethod" binding:"omitempty,oneof=cash bank"`
	Amount        decimal.Decimal `json:"amount" binding:"gte=0"`
	Category      string          `json:"category" binding:"required"`
	NextDate      string          `json:"nextDate" binding:"required,datetime=2006-01-02"`
}

// ToDomain converts the request into an unsaved template.
func (r RecurringTemplateRequest) ToDomain() (domain.RecurringTemplate, error) {
	next, err := domain.ParseDate(r.NextDate)
	if err != nil {
		return domain.RecurringTemplate{}, err
	}
	return domain.RecurringTemplate{
		Description:   r.Description,
		Type:          domain.TransactionType(r.Type),
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod).OrDefault(),
		Amount:        r.Amount,
		Category:      r.Category,
		NextDate:      next,
	}, nil
}
