package dto

import (
	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInstallmentRequest defines the data needed to create an installment.
type CreateInstallmentRequest struct {
	Description      string          `json:"description" binding:"required,max=255"`
	TotalAmount      decimal.Decimal `json:"totalAmount" binding:"gt=0"`
	InstallmentCount int             `json:"installmentCount" binding:"required,min=1"`
	StartDate        string          `json:"startDate" binding:"required,datetime=2006-01-02"`
	PaymentMethod    string          `json:"paymentMethod" binding:"omitempty,oneof=cash bank"`
}

// ToDomain converts the request into an unsaved installment with its monthly amount computed.
func (r CreateInstallmentRequest) ToDomain() (domain.Installment, error) {
	start, err := domain.ParseDate(r.StartDate)
	if err != nil {
		return domain.Installment{}, err
	}
	return domain.Installment{
		Description:      r.Description,
		TotalAmount:      r.TotalAmount,
		InstallmentCount: r.InstallmentCount,
		MonthlyAmount:    domain.ComputeMonthlyAmount(r.TotalAmount, r.InstallmentCount),
		StartDate:        start,
		PaymentMethod:    domain.PaymentMethod(r.PaymentMethod).OrDefault(),
	}, nil
}

// InstallmentResponse adds derived progress figures to an installment.
type InstallmentResponse struct {
	domain.Installment
	Remaining       int             `json:"remaining"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Settled         bool            `json:"settled"`
}

// ToInstallmentResponse converts a domain installment.
func ToInstallmentResponse(i domain.Installment) InstallmentResponse {
	return InstallmentResponse{
		Installment:     i,
		Remaining:       i.Remaining(),
		RemainingAmount: i.RemainingAmount(),
		Settled:         i.IsSettled(),
	}
}

// ToInstallmentResponses converts a slice of domain installments.
func ToInstallmentResponses(items []domain.Installment) []InstallmentResponse {
	res := make([]InstallmentResponse, len(items))
	for i, item := range items {
		res[i] = ToInstallmentResponse(item)
	}
	return res
}

// ActiveInstallmentTotalResponse is the outstanding amount over all installments.
type ActiveInstallmentTotalResponse struct {
	Total decimal.Decimal `json:"total"`
}
