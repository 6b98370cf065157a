package mapping

import (
	"fmt"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	"github.com/Basri-akbas/Finance-Tracker/internal/models"
)

// ToModelInstallment converts a domain Installment to a model Installment
func ToModelInstallment(userID string, d domain.Installment) models.Installment {
	return models.Installment{
		InstallmentID:    d.ID,
		UserID:           userID,
		Description:      d.Description,
		TotalAmount:      d.TotalAmount,
		InstallmentCount: d.InstallmentCount,
		MonthlyAmount:    d.MonthlyAmount,
		StartDate:        d.StartDate.Time(),
		PaidCount:        d.PaidCount,
		PaymentMethod:    string(d.PaymentMethod.OrDefault()),
		CreatedAt:        d.CreatedAt,
	}
}

// ToDomainInstallment converts a model Installment to a domain Installment.
// A paid count above the installment count is clamped; a non-positive count rejects the record.
func ToDomainInstallment(m models.Installment) (domain.Installment, error) {
	if m.InstallmentCount <= 0 {
		return domain.Installment{}, fmt.Errorf("%w: installment %s has count %d", ErrMalformedRecord, m.InstallmentID, m.InstallmentCount)
	}
	if m.StartDate.IsZero() {
		return domain.Installment{}, fmt.Errorf("%w: installment %s has no start date", ErrMalformedRecord, m.InstallmentID)
	}
	paid := min(max(m.PaidCount, 0), m.InstallmentCount)
	monthly := m.MonthlyAmount
	if monthly.IsZero() && !m.TotalAmount.IsZero() {
		monthly = domain.ComputeMonthlyAmount(m.TotalAmount, m.InstallmentCount)
	}
	return domain.Installment{
		ID:               m.InstallmentID,
		Description:      m.Description,
		TotalAmount:      m.TotalAmount,
		InstallmentCount: m.InstallmentCount,
		MonthlyAmount:    monthly,
		StartDate:        domain.DateOf(m.StartDate),
		PaidCount:        paid,
		PaymentMethod:    normalizePaymentMethod(m.PaymentMethod),
		CreatedAt:        m.CreatedAt,
	}, nil
}

// ToDomainInstallmentSlice converts every well-formed record and joins the rejections into the returned error.
func ToDomainInstallmentSlice(ms []models.Installment) ([]domain.Installment, error) {
	return convertSlice(ms, ToDomainInstallment)
}
