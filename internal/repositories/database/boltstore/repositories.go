package boltstore

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	portsrepo "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/repositories"
	"github.com/Basri-akbas/Finance-Tracker/internal/models"
	"github.com/Basri-akbas/Finance-Tracker/internal/utils/accounting"
	"github.com/Basri-akbas/Finance-Tracker/internal/utils/mapping"
)

// newestFirst orders records by creation time, newest first, then by id.
func newestFirst(aCreated, bCreated time.Time, aID, bID string) int {
	if c := bCreated.Compare(aCreated); c != 0 {
		return c
	}
	return cmp.Compare(aID, bID)
}

// --- Transactions ---

type TransactionRepository struct {
	store *Store
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func (r *TransactionRepository) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	ms, err := list[models.Transaction](ctx, r.store, BucketTransactions, userID)
	if err != nil {
		return nil, err
	}
	txns, err := mapping.ToDomainTransactionSlice(ms)
	warnMalformed(ctx, BucketTransactions, err)
	accounting.SortByDateDesc(txns)
	return txns, nil
}

func (r *TransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	var m models.Transaction
	if err := r.store.get(BucketTransactions, userID, transactionID, &m); err != nil {
		return nil, err
	}
	txn, err := mapping.ToDomainTransaction(m)
	if err != nil {
		return nil, storeError("failed to read transaction "+transactionID, err)
	}
	return &txn, nil
}

func (r *TransactionRepository) SaveTransaction(ctx context.Context, userID string, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(userID, txn)
	m.LastUpdatedAt = time.Now().UTC()
	return r.store.put(BucketTransactions, userID, m.TransactionID, m, false)
}

func (r *TransactionRepository) UpdateTransaction(ctx context.Context, userID string, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(userID, txn)
	m.LastUpdatedAt = time.Now().UTC()
	return r.store.put(BucketTransactions, userID, m.TransactionID, m, true)
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	return r.store.remove(BucketTransactions, userID, transactionID)
}

// --- Installments ---

type InstallmentRepository struct {
	store *Store
}

var _ portsrepo.InstallmentRepositoryFacade = (*InstallmentRepository)(nil)

func (r *InstallmentRepository) ListInstallments(ctx context.Context, userID string) ([]domain.Installment, error) {
	ms, err := list[models.Installment](ctx, r.store, BucketInstallments, userID)
	if err != nil {
		return nil, err
	}
	items, err := mapping.ToDomainInstallmentSlice(ms)
	warnMalformed(ctx, BucketInstallments, err)
	slices.SortStableFunc(items, func(a, b domain.Installment) int {
		return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
	})
	return items, nil
}

func (r *InstallmentRepository) FindInstallmentByID(ctx context.Context, userID, installmentID string) (*domain.Installment, error) {
	var m models.Installment
	if err := r.store.get(BucketInstallments, userID, installmentID, &m); err != nil {
		return nil, err
	}
	inst, err := mapping.ToDomainInstallment(m)
	if err != nil {
		return nil, storeError("failed to read installment "+installmentID, err)
	}
	return &inst, nil
}

func (r *InstallmentRepository) SaveInstallment(ctx context.Context, userID string, installment domain.Installment) error {
	m := mapping.ToModelInstallment(userID, installment)
	m.LastUpdatedAt = time.Now().UTC()
	return r.store.put(BucketInstallments, userID, m.InstallmentID, m, false)
}

// UpdateInstallmentPaidCount never lowers the stored paid count.
func (r *InstallmentRepository) UpdateInstallmentPaidCount(ctx context.Context, userID, installmentID string, paidCount int) error {
	return update(r.store, BucketInstallments, userID, installmentID, func(m *models.Installment) {
		m.PaidCount = max(m.PaidCount, min(paidCount, m.InstallmentCount))
		m.LastUpdatedAt = time.Now().UTC()
	})
}

func (r *InstallmentRepository) DeleteInstallment(ctx context.Context, userID, installmentID string) error {
	return r.store.remove(BucketInstallments, userID, installmentID)
}

// --- Recurring templates ---

type RecurringRepository struct {
	store *Store
}

var _ portsrepo.RecurringRepositoryFacade = (*RecurringRepository)(nil)

func (r *RecurringRepository) ListRecurringTemplates(ctx context.Context, userID string) ([]domain.RecurringTemplate, error) {
	ms, err := list[models.RecurringTemplate](ctx, r.store, BucketRecurringTemplates, userID)
	if err != nil {
		return nil, err
	}
	templates, err := mapping.ToDomainRecurringTemplateSlice(ms)
	warnMalformed(ctx, BucketRecurringTemplates, err)
	slices.SortStableFunc(templates, func(a, b domain.RecurringTemplate) int {
		return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
	})
	return templates, nil
}

func (r *RecurringRepository) FindRecurringTemplateByID(ctx context.Context, userID, templateID string) (*domain.RecurringTemplate, error) {
	var m models.RecurringTemplate
	if err := r.store.get(BucketRecurringTemplates, userID, templateID, &m); err != nil {
		return nil, err
	}
	tmpl, err := mapping.ToDomainRecurringTemplate(m)
	if err != nil {
		return nil, storeError("failed to read recurring template "+templateID, err)
	}
	return &tmpl, nil
}

func (r *RecurringRepository) SaveRecurringTemplate(ctx context.Context, userID string, template domain.RecurringTemplate) error {
	m := mapping.ToModelRecurringTemplate(userID, template)
	m.LastUpdatedAt = time.Now().UTC()
	return r.store.put(BucketRecurringTemplates, userID, m.TemplateID, m, false)
}

func (r *RecurringRepository) UpdateRecurringTemplate(ctx context.Context, userID string, template domain.RecurringTemplate) error {
	m := mapping.ToModelRecurringTemplate(userID, template)
	m.LastUpdatedAt = time.Now().UTC()
	return r.store.put(BucketRecurringTemplates, userID, m.TemplateID, m, true)
}

func (r *RecurringRepository) UpdateRecurringNextDate(ctx context.Context, userID, templateID string, nextDate domain.Date) error {
	return update(r.store, BucketRecurringTemplates, userID, templateID, func(m *models.RecurringTemplate) {
		m.NextDate = nextDate.Time()
		m.LastUpdatedAt = time.Now().UTC()
	})
}

func (r *RecurringRepository) DeleteRecurringTemplate(ctx context.Context, userID, templateID string) error {
	return r.store.remove(BucketRecurringTemplates, userID, templateID)
}

// --- Debts ---

type DebtRepository struct {
	store *Store
}

var _ portsrepo.DebtRepositoryFacade = (*DebtRepository)(nil)

func (r *DebtRepository) ListDebts(ctx context.Context, userID string) ([]domain.Debt, error) {
	ms, err := list[models.Debt](ctx, r.store, BucketDebts, userID)
	if err != nil {
		return nil, err
	}
	debts, err := mapping.ToDomainDebtSlice(ms)
	warnMalformed(ctx, BucketDebts, err)
	slices.SortStableFunc(debts, func(a, b domain.Debt) int {
		return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
	})
	return debts, nil
}

func (r *DebtRepository) FindDebtByID(ctx context.Context, userID, debtID string) (*domain.Debt, error) {
	var m models.Debt
	if err := r.store.get(BucketDebts, userID, debtID, &m); err != nil {
		return nil, err
	}
	debt, err := mapping.ToDomainDebt(m)
	if err != nil {
		return nil, storeError("failed to read debt "+debtID, err)
	}
	return &debt, nil
}

func (r *DebtRepository) SaveDebt(ctx context.Context, userID string, debt domain.Debt) error {
	m := mapping.ToModelDebt(userID, debt)
	m.LastUpdatedAt = time.Now().UTC()
	return r.store.put(BucketDebts, userID, m.DebtID, m, false)
}

func (r *DebtRepository) UpdateDebt(ctx context.Context, userID string, debt domain.Debt) error {
	m := mapping.ToModelDebt(userID, debt)
	m.LastUpdatedAt = time.Now().UTC()
	return r.store.put(BucketDebts, userID, m.DebtID, m, true)
}

func (r *DebtRepository) DeleteDebt(ctx context.Context, userID, debtID string) error {
	return r.store.remove(BucketDebts, userID, debtID)
}

// --- Settings ---

type SettingsRepository struct {
	store *Store
}

var _ portsrepo.SettingsRepositoryFacade = (*SettingsRepository)(nil)

func (r *SettingsRepository) GetSettings(ctx context.Context, userID string) (*domain.Settings, error) {
	var m models.Settings
	if err := r.store.get(BucketSettings, userID, settingsKey, &m); err != nil {
		return nil, err
	}
	settings := mapping.ToDomainSettings(m)
	return &settings, nil
}

func (r *SettingsRepository) SaveSettings(ctx context.Context, userID string, settings domain.Settings) error {
	updatedAt := settings.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	m := mapping.ToModelSettings(userID, settings, updatedAt)
	return r.store.put(BucketSettings, userID, settingsKey, m, false)
}
