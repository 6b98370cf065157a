package handlers_test

import (
	"context"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	portssvc "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/services"
	"github.com/Basri-akbas/Finance-Tracker/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	next, _ := args.Get(1).(*string)
	return args.Get(0).([]domain.Transaction), next, args.Error(2)
}
func (m *MockLedgerService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) CurrentBalance(ctx context.Context, method domain.PaymentMethod) (decimal.Decimal, error) {
	args := m.Called(ctx, method)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockLedgerService) Balances(ctx context.Context) (*domain.Balances, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balances), args.Error(1)
}
func (m *MockLedgerService) MonthlyAggregate(ctx context.Context, month domain.MonthKey) (*domain.MonthlyTotals, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyTotals), args.Error(1)
}
func (m *MockLedgerService) CategoryBreakdown(ctx context.Context, txnType domain.TransactionType, month *domain.MonthKey) ([]domain.CategoryShare, error) {
	args := m.Called(ctx, txnType, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryShare), args.Error(1)
}
func (m *MockLedgerService) HistoryByMonth(ctx context.Context) ([]domain.MonthHistory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthHistory), args.Error(1)
}
func (m *MockLedgerService) CreateTransaction(ctx context.Context, req dto.TransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) UpdateTransaction(ctx context.Context, transactionID string, req dto.TransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockLedgerService) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) Resolver(ctx context.Context) (domain.CategoryResolver, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.CategoryResolver), args.Error(1)
}
func (m *MockCategoryService) ListCategories(ctx context.Context, txnType domain.TransactionType) ([]domain.Category, error) {
	args := m.Called(ctx, txnType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCategoryService) AddCustomCategory(ctx context.Context, txnType domain.TransactionType, name string) (*domain.Category, error) {
	args := m.Called(ctx, txnType, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) DeleteCustomCategory(ctx context.Context, txnType domain.TransactionType, categoryID string) error {
	args := m.Called(ctx, txnType, categoryID)
	return args.Error(0)
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Mock InstallmentService ---
type MockInstallmentService struct {
	mock.Mock
}

func (m *MockInstallmentService) ListInstallments(ctx context.Context) ([]domain.Installment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Installment), args.Error(1)
}
func (m *MockInstallmentService) GetInstallment(ctx context.Context, installmentID string) (*domain.Installment, error) {
	args := m.Called(ctx, installmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Installment), args.Error(1)
}
func (m *MockInstallmentService) ActiveInstallmentTotal(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockInstallmentService) CreateInstallment(ctx context.Context, req dto.CreateInstallmentRequest) (*domain.Installment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Installment), args.Error(1)
}
func (m *MockInstallmentService) PayInstallment(ctx context.Context, installmentID string) (*domain.Installment, error) {
	args := m.Called(ctx, installmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Installment), args.Error(1)
}
func (m *MockInstallmentService) DeleteInstallment(ctx context.Context, installmentID string) error {
	args := m.Called(ctx, installmentID)
	return args.Error(0)
}
func (m *MockInstallmentService) CatchUp(ctx context.Context, today domain.Date) (domain.CatchUpReport, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(domain.CatchUpReport), args.Error(1)
}

var _ portssvc.InstallmentSvcFacade = (*MockInstallmentService)(nil)

// --- Mock BalanceService ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}
func (m *MockBalanceService) SetInitialBalance(ctx context.Context, method domain.PaymentMethod, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, method, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockBalanceService) SetTargetBalance(ctx context.Context, method domain.PaymentMethod, target decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, method, target)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.BalanceSvcFacade = (*MockBalanceService)(nil)

// --- Mock SessionService ---
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) StartSession(ctx context.Context) (*domain.SessionReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionReport), args.Error(1)
}
func (m *MockSessionService) Summary(ctx context.Context) (*domain.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Summary), args.Error(1)
}
func (m *MockSessionService) Export(ctx context.Context) (*domain.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Snapshot), args.Error(1)
}

var _ portssvc.SessionSvcFacade = (*MockSessionService)(nil)
