package mapping

import (
	"errors"
	"fmt"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	"github.com/Basri-akbas/Finance-Tracker/internal/models"
)

// ErrMalformedRecord marks a stored record that cannot be turned into a domain value.
var ErrMalformedRecord = errors.New("malformed stored record")

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(userID string, d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.ID,
		UserID:          userID,
		Type:            string(d.Type),
		PaymentMethod:   string(d.PaymentMethod),
		Amount:          d.Amount,
		TransactionDate: d.Date.Time(),
		Category:        d.Category,
		Description:     d.Description,
		IsAutoGenerated: d.IsAutoGenerated,
		IsRecurring:     d.IsRecurring,
		InstallmentID:   optionalString(d.InstallmentID),
		RecurringID:     optionalString(d.RecurringID),
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
// Unknown payment methods are read as bank; an unknown type or a missing date rejects the record.
func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	txnType := domain.TransactionType(m.Type)
	if !txnType.IsValid() {
		return domain.Transaction{}, fmt.Errorf("%w: transaction %s has type %q", ErrMalformedRecord, m.TransactionID, m.Type)
	}
	if m.TransactionDate.IsZero() {
		return domain.Transaction{}, fmt.Errorf("%w: transaction %s has no date", ErrMalformedRecord, m.TransactionID)
	}
	return domain.Transaction{
		ID:              m.TransactionID,
		Type:            txnType,
		PaymentMethod:   normalizePaymentMethod(m.PaymentMethod),
		Amount:          m.Amount,
		Date:            domain.DateOf(m.TransactionDate),
		Category:        m.Category,
		Description:     m.Description,
		CreatedAt:       m.CreatedAt,
		IsAutoGenerated: m.IsAutoGenerated,
		IsRecurring:     m.IsRecurring,
		InstallmentID:   derefString(m.InstallmentID),
		RecurringID:     derefString(m.RecurringID),
	}, nil
}

// ToDomainTransactionSlice converts every well-formed record and joins the rejections into the returned error.
func ToDomainTransactionSlice(ms []models.Transaction) ([]domain.Transaction, error) {
	return convertSlice(ms, ToDomainTransaction)
}

func normalizePaymentMethod(s string) domain.PaymentMethod {
	if domain.PaymentMethod(s) == domain.Cash {
		return domain.Cash
	}
	if s == "" {
		return domain.Cash
	}
	return domain.Bank
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func convertSlice[M any, D any](ms []M, convert func(M) (D, error)) ([]D, error) {
	ds := make([]D, 0, len(ms))
	var errs []error
	for _, m := range ms {
		d, err := convert(m)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ds = append(ds, d)
	}
	return ds, errors.Join(errs...)
}
