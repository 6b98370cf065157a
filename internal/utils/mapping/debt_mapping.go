package mapping

import (
	"fmt"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	"github.com/Basri-akbas/Finance-Tracker/internal/models"
)

// ToModelDebt converts a domain Debt to a model Debt
func ToModelDebt(userID string, d domain.Debt) models.Debt {
	m := models.Debt{
		DebtID:      d.ID,
		UserID:      userID,
		Type:        string(d.Type),
		Person:      d.Person,
		Amount:      d.Amount,
		Description: d.Description,
		Status:      string(d.Status),
		CreatedAt:   d.CreatedAt,
	}
	if d.DueDate != nil {
		due := d.DueDate.Time()
		m.DueDate = &due
	}
	return m
}

// ToDomainDebt converts a model Debt to a domain Debt. A missing status reads as waiting.
func ToDomainDebt(m models.Debt) (domain.Debt, error) {
	debtType := domain.DebtType(m.Type)
	if debtType != domain.Receivable && debtType != domain.Payable {
		return domain.Debt{}, fmt.Errorf("%w: debt %s has type %q", ErrMalformedRecord, m.DebtID, m.Type)
	}
	status := domain.DebtStatus(m.Status)
	if status != domain.DebtPaid {
		status = domain.DebtWaiting
	}
	d := domain.Debt{
		ID:          m.DebtID,
		Type:        debtType,
		Person:      m.Person,
		Amount:      m.Amount,
		Description: m.Description,
		Status:      status,
		CreatedAt:   m.CreatedAt,
	}
	if m.DueDate != nil && !m.DueDate.IsZero() {
		due := domain.DateOf(*m.DueDate)
		d.DueDate = &due
	}
	return d, nil
}

// ToDomainDebtSlice converts every well-formed record and joins the rejections into the returned error.
func ToDomainDebtSlice(ms []models.Debt) ([]domain.Debt, error) {
	return convertSlice(ms, ToDomainDebt)
}
