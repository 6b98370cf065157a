package services_test

import (
	"context"
	"slices"
	"sync"

	"github.com/Basri-akbas/Finance-Tracker/internal/apperrors"
	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	portsrepo "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/repositories"
	"github.com/Basri-akbas/Finance-Tracker/internal/middleware"
	"github.com/Basri-akbas/Finance-Tracker/internal/utils/accounting"
	"github.com/stretchr/testify/mock"
)

const testUserID = "user-1"

func userCtx() context.Context {
	return middleware.WithUserID(context.Background(), testUserID)
}

// --- In-memory store ---

// memStore keeps every entity of one user in memory, in insertion order.
// The fail hooks let tests inject persistence errors for a single call.
type memStore struct {
	mu           sync.Mutex
	txns         []domain.Transaction
	installments []domain.Installment
	templates    []domain.RecurringTemplate
	debts        []domain.Debt
	settings     *domain.Settings

	failSaveTxn   func(txn domain.Transaction) error
	failPaidCount func(installmentID string, paidCount int) error
	failNextDate  func(templateID string, next domain.Date) error
}

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: m,
		InstallmentRepo: m,
		RecurringRepo:   m,
		DebtRepo:        m,
		SettingsRepo:    m,
	}
}

func (m *memStore) ListTransactions(_ context.Context, _ string) ([]domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := slices.Clone(m.txns)
	accounting.SortByDateDesc(out)
	return out, nil
}

func (m *memStore) FindTransactionByID(_ context.Context, _ string, id string) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.txns {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memStore) SaveTransaction(_ context.Context, _ string, txn domain.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSaveTxn != nil {
		if err := m.failSaveTxn(txn); err != nil {
			return err
		}
	}
	m.txns = append(m.txns, txn)
	return nil
}

func (m *memStore) UpdateTransaction(_ context.Context, _ string, txn domain.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.txns {
		if m.txns[i].ID == txn.ID {
			m.txns[i] = txn
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (m *memStore) DeleteTransaction(_ context.Context, _ string, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	before := len(m.txns)
	m.txns = slices.DeleteFunc(m.txns, func(t domain.Transaction) bool { return t.ID == id })
	if len(m.txns) == before {
		return apperrors.ErrNotFound
	}
	return nil
}

func (m *memStore) ListInstallments(_ context.Context, _ string) ([]domain.Installment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.installments), nil
}

func (m *memStore) FindInstallmentByID(_ context.Context, _ string, id string) (*domain.Installment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, inst := range m.installments {
		if inst.ID == id {
			return &inst, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memStore) SaveInstallment(_ context.Context, _ string, inst domain.Installment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.installments = append(m.installments, inst)
	return nil
}

func (m *memStore) UpdateInstallmentPaidCount(_ context.Context, _ string, id string, paidCount int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPaidCount != nil {
		if err := m.failPaidCount(id, paidCount); err != nil {
			return err
		}
	}
	for i := range m.installments {
		if m.installments[i].ID == id {
			m.installments[i].PaidCount = paidCount
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (m *memStore) DeleteInstallment(_ context.Context, _ string, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	before := len(m.installments)
	m.installments = slices.DeleteFunc(m.installments, func(i domain.Installment) bool { return i.ID == id })
	if len(m.installments) == before {
		return apperrors.ErrNotFound
	}
	return nil
}

func (m *memStore) ListRecurringTemplates(_ context.Context, _ string) ([]domain.RecurringTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.templates), nil
}

func (m *memStore) FindRecurringTemplateByID(_ context.Context, _ string, id string) (*domain.RecurringTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.templates {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memStore) SaveRecurringTemplate(_ context.Context, _ string, tmpl domain.RecurringTemplate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.templates = append(m.templates, tmpl)
	return nil
}

func (m *memStore) UpdateRecurringTemplate(_ context.Context, _ string, tmpl domain.RecurringTemplate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.templates {
		if m.templates[i].ID == tmpl.ID {
			m.templates[i] = tmpl
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (m *memStore) UpdateRecurringNextDate(_ context.Context, _ string, id string, next domain.Date) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNextDate != nil {
		if err := m.failNextDate(id, next); err != nil {
			return err
		}
	}
	for i := range m.templates {
		if m.templates[i].ID == id {
			m.templates[i].NextDate = next
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (m *memStore) DeleteRecurringTemplate(_ context.Context, _ string, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	before := len(m.templates)
	m.templates = slices.DeleteFunc(m.templates, func(t domain.RecurringTemplate) bool { return t.ID == id })
	if len(m.templates) == before {
		return apperrors.ErrNotFound
	}
	return nil
}

func (m *memStore) ListDebts(_ context.Context, _ string) ([]domain.Debt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.debts), nil
}

func (m *memStore) FindDebtByID(_ context.Context, _ string, id string) (*domain.Debt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.debts {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memStore) SaveDebt(_ context.Context, _ string, debt domain.Debt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.debts = append(m.debts, debt)
	return nil
}

func (m *memStore) UpdateDebt(_ context.Context, _ string, debt domain.Debt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.debts {
		if m.debts[i].ID == debt.ID {
			m.debts[i] = debt
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (m *memStore) DeleteDebt(_ context.Context, _ string, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	before := len(m.debts)
	m.debts = slices.DeleteFunc(m.debts, func(d domain.Debt) bool { return d.ID == id })
	if len(m.debts) == before {
		return apperrors.ErrNotFound
	}
	return nil
}

func (m *memStore) GetSettings(_ context.Context, _ string) (*domain.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.settings == nil {
		return nil, apperrors.ErrNotFound
	}
	s := *m.settings
	return &s, nil
}

func (m *memStore) SaveSettings(_ context.Context, _ string, settings domain.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = &settings
	return nil
}

// --- Mock repositories ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, userID string, txn domain.Transaction) error {
	args := m.Called(ctx, userID, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, userID string, txn domain.Transaction) error {
	args := m.Called(ctx, userID, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetSettings(ctx context.Context, userID string) (*domain.Settings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(ctx context.Context, userID string, settings domain.Settings) error {
	args := m.Called(ctx, userID, settings)
	return args.Error(0)
}

type MockInstallmentRepository struct {
	mock.Mock
}

func (m *MockInstallmentRepository) ListInstallments(ctx context.Context, userID string) ([]domain.Installment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Installment), args.Error(1)
}

func (m *MockInstallmentRepository) FindInstallmentByID(ctx context.Context, userID, installmentID string) (*domain.Installment, error) {
	args := m.Called(ctx, userID, installmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Installment), args.Error(1)
}

func (m *MockInstallmentRepository) SaveInstallment(ctx context.Context, userID string, installment domain.Installment) error {
	args := m.Called(ctx, userID, installment)
	return args.Error(0)
}

func (m *MockInstallmentRepository) UpdateInstallmentPaidCount(ctx context.Context, userID, installmentID string, paidCount int) error {
	args := m.Called(ctx, userID, installmentID, paidCount)
	return args.Error(0)
}

func (m *MockInstallmentRepository) DeleteInstallment(ctx context.Context, userID, installmentID string) error {
	args := m.Called(ctx, userID, installmentID)
	return args.Error(0)
}
