package mapping

import (
	"fmt"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	"github.com/Basri-akbas/Finance-Tracker/internal/models"
)

// ToModelRecurringTemplate converts a domain RecurringTemplate to a model RecurringTemplate
func ToModelRecurringTemplate(userID string, d domain.RecurringTemplate) models.RecurringTemplate {
	return models.RecurringTemplate{
		TemplateID:    d.ID,
		UserID:        userID,
		Description:   d.Description,
		Type:          string(d.Type),
		PaymentMethod: string(d.PaymentMethod.OrDefault()),
		Amount:        d.Amount,
		Category:      d.Category,
		NextDate:      d.NextDate.Time(),
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainRecurringTemplate converts a model RecurringTemplate to a domain RecurringTemplate
func ToDomainRecurringTemplate(m models.RecurringTemplate) (domain.RecurringTemplate, error) {
	txnType := domain.TransactionType(m.Type)
	if !txnType.IsValid() {
		return domain.RecurringTemplate{}, fmt.Errorf("%w: template %s has type %q", ErrMalformedRecord, m.TemplateID, m.Type)
	}
	if m.NextDate.IsZero() {
		return domain.RecurringTemplate{}, fmt.Errorf("%w: template %s has no next date", ErrMalformedRecord, m.TemplateID)
	}
	return domain.RecurringTemplate{
		ID:            m.TemplateID,
		Description:   m.Description,
		Type:          txnType,
		PaymentMethod: normalizePaymentMethod(m.PaymentMethod),
		Amount:        m.Amount,
		Category:      m.Category,
		NextDate:      domain.DateOf(m.NextDate),
		CreatedAt:     m.CreatedAt,
	}, nil
}

// ToDomainRecurringTemplateSlice converts every well-formed record and joins the rejections into the returned error.
func ToDomainRecurringTemplateSlice(ms []models.RecurringTemplate) ([]domain.RecurringTemplate, error) {
	return convertSlice(ms, ToDomainRecurringTemplate)
}
