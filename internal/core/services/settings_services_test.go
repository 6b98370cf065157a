package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/Basri-akbas/Finance-Tracker/internal/apperrors"
	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	"github.com/Basri-akbas/Finance-Tracker/internal/core/services"
	"github.com/Basri-akbas/Finance-Tracker/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBalanceService_TargetBalanceRoundTrip(t *testing.T) {
	ctx := userCtx()
	store := newMemStore()
	require.NoError(t, store.SaveTransaction(ctx, testUserID, txn("a", domain.Income, domain.Cash, 500, "2024-01-01")))
	require.NoError(t, store.SaveTransaction(ctx, testUserID, txn("b", domain.Expense, domain.Cash, 200, "2024-01-02")))

	ledger := services.NewLedgerService(store, store)
	balances := services.NewBalanceService(store, store)

	current, err := ledger.CurrentBalance(ctx, domain.Cash)
	require.NoError(t, err)
	assert.True(t, current.Equal(decimal.NewFromInt(300)))

	initial, err := balances.SetTargetBalance(ctx, domain.Cash, decimal.NewFromInt(1000))
	require.NoError(t, err)
	assert.True(t, initial.Equal(decimal.NewFromInt(700)), initial.String())

	current, err = ledger.CurrentBalance(ctx, domain.Cash)
	require.NoError(t, err)
	assert.True(t, current.Equal(decimal.NewFromInt(1000)))

	again, err := balances.SetTargetBalance(ctx, domain.Cash, decimal.NewFromInt(1000))
	require.NoError(t, err)
	assert.True(t, again.Equal(initial))

	settings, err := balances.GetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, settings.InitialBalances.Cash.Equal(decimal.NewFromInt(700)))
	assert.True(t, settings.InitialBalances.Bank.IsZero())
}

func TestBalanceService_SetInitialBalanceKeepsOtherMethod(t *testing.T) {
	ctx := userCtx()
	store := newMemStore()
	balances := services.NewBalanceService(store, store)

	_, err := balances.SetInitialBalance(ctx, domain.Bank, decimal.NewFromInt(250))
	require.NoError(t, err)
	_, err = balances.SetInitialBalance(ctx, domain.Cash, decimal.NewFromInt(40))
	require.NoError(t, err)

	settings, err := balances.GetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, settings.InitialBalances.Bank.Equal(decimal.NewFromInt(250)))
	assert.True(t, settings.InitialBalances.Cash.Equal(decimal.NewFromInt(40)))
}

func TestBalanceService_SaveFailureLeavesSettings(t *testing.T) {
	ctx := userCtx()
	settingsRepo := new(MockSettingsRepository)
	txnRepo := new(MockTransactionRepository)
	settingsRepo.On("GetSettings", ctx, testUserID).Return(nil, apperrors.ErrNotFound).Once()
	settingsRepo.On("SaveSettings", ctx, testUserID, mock.AnythingOfType("domain.Settings")).Return(assert.AnError).Once()

	svc := services.NewBalanceService(settingsRepo, txnRepo)
	_, err := svc.SetInitialBalance(ctx, domain.Cash, decimal.NewFromInt(1))

	assert.ErrorIs(t, err, assert.AnError)
	settingsRepo.AssertExpectations(t)
}

func TestBalanceService_InvalidMethod(t *testing.T) {
	store := newMemStore()
	svc := services.NewBalanceService(store, store)

	_, err := svc.SetTargetBalance(userCtx(), domain.PaymentMethod("crypto"), decimal.NewFromInt(1))

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCategoryService_AddResolveDelete(t *testing.T) {
	ctx := userCtx()
	store := newMemStore()
	svc := services.NewCategoryService(store)

	added, err := svc.AddCustomCategory(ctx, domain.Expense, "  Pets  ")
	require.NoError(t, err)
	assert.Equal(t, "Pets", added.Name)
	assert.True(t, strings.HasPrefix(added.ID, "custom_expense_"))

	resolver, err := svc.Resolver(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pets", resolver.Resolve(added.ID))
	assert.Equal(t, "Maaş", resolver.Resolve("salary"))
	assert.Equal(t, "unknown-id", resolver.Resolve("unknown-id"))

	expense, err := svc.ListCategories(ctx, domain.Expense)
	require.NoError(t, err)
	assert.Len(t, expense, len(domain.BuiltinExpenseCategories)+1)
	income, err := svc.ListCategories(ctx, domain.Income)
	require.NoError(t, err)
	assert.Len(t, income, len(domain.BuiltinIncomeCategories))

	require.NoError(t, svc.DeleteCustomCategory(ctx, domain.Expense, added.ID))
	require.NoError(t, svc.DeleteCustomCategory(ctx, domain.Expense, added.ID))

	resolver, err = svc.Resolver(ctx)
	require.NoError(t, err)
	assert.Equal(t, added.ID, resolver.Resolve(added.ID))
}

func TestCategoryService_RejectsBlankName(t *testing.T) {
	store := newMemStore()
	svc := services.NewCategoryService(store)

	_, err := svc.AddCustomCategory(userCtx(), domain.Income, "   ")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Nil(t, store.settings)
}

func TestDebtService_Lifecycle(t *testing.T) {
	ctx := userCtx()
	store := newMemStore()
	svc := services.NewDebtService(store)

	lent, err := svc.CreateDebt(ctx, dto.DebtRequest{Type: "receivable", Person: "Ayşe", Amount: decimal.NewFromInt(150), DueDate: "2024-06-01"})
	require.NoError(t, err)
	assert.Equal(t, domain.DebtWaiting, lent.Status)
	require.NotNil(t, lent.DueDate)
	borrowed, err := svc.CreateDebt(ctx, dto.DebtRequest{Type: "payable", Person: "Mehmet", Amount: decimal.NewFromInt(80)})
	require.NoError(t, err)
	assert.Nil(t, borrowed.DueDate)

	totals, err := svc.WaitingTotals(ctx)
	require.NoError(t, err)
	assert.True(t, totals.Receivable.Equal(decimal.NewFromInt(150)))
	assert.True(t, totals.Payable.Equal(decimal.NewFromInt(80)))

	paid, err := svc.MarkDebtPaid(ctx, lent.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DebtPaid, paid.Status)

	edited, err := svc.UpdateDebt(ctx, lent.ID, dto.DebtRequest{Type: "receivable", Person: "Ayşe", Amount: decimal.NewFromInt(175)})
	require.NoError(t, err)
	assert.Equal(t, domain.DebtPaid, edited.Status)
	assert.Equal(t, lent.CreatedAt, edited.CreatedAt)

	totals, err = svc.WaitingTotals(ctx)
	require.NoError(t, err)
	assert.True(t, totals.Receivable.IsZero())

	require.NoError(t, svc.DeleteDebt(ctx, borrowed.ID))
	require.NoError(t, svc.DeleteDebt(ctx, borrowed.ID))
	debts, err := svc.ListDebts(ctx)
	require.NoError(t, err)
	assert.Len(t, debts, 1)
}

func TestDebtService_RejectsZeroAmount(t *testing.T) {
	svc := services.NewDebtService(newMemStore())

	_, err := svc.CreateDebt(userCtx(), dto.DebtRequest{Type: "payable", Person: "Ali", Amount: decimal.Zero})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDebtService_MarkPaidMissing(t *testing.T) {
	svc := services.NewDebtService(newMemStore())

	_, err := svc.MarkDebtPaid(userCtx(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

type recordingTracker struct {
	events []string
}

func (r *recordingTracker) Track(_ string, event string, _ map[string]any) {
	r.events = append(r.events, event)
}

func TestSessionService_StartSession(t *testing.T) {
	ctx := userCtx()
	store := newMemStore()
	require.NoError(t, store.SaveInstallment(ctx, testUserID, phone()))
	require.NoError(t, store.SaveRecurringTemplate(ctx, testUserID, rent()))
	require.NoError(t, store.SaveSettings(ctx, testUserID, domain.Settings{
		InitialBalances: domain.InitialBalances{Cash: decimal.NewFromInt(1000), Bank: decimal.NewFromInt(2000)},
	}))

	tracker := &recordingTracker{}
	container := services.NewServiceContainer(store.provider(),
		services.WithClock(services.FixedClock{Date: domain.MustParseDate("2024-03-15")}),
		services.WithEventTracker(tracker))

	report, err := container.Session.StartSession(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, report.Installments.Created)
	assert.Equal(t, 3, report.Recurring.Created)
	assert.Equal(t, "2024-03-15", report.Summary.Today.String())
	// Installments are paid in cash (3 x 100), rent from the bank (3 x 50).
	assert.True(t, report.Summary.Balances.Cash.Equal(decimal.NewFromInt(700)), report.Summary.Balances.Cash.String())
	assert.True(t, report.Summary.Balances.Bank.Equal(decimal.NewFromInt(1850)))
	assert.True(t, report.Summary.MonthExpense.Equal(decimal.NewFromInt(150)))
	assert.True(t, report.Summary.ActiveInstallmentTotal.Equal(decimal.NewFromInt(900)))
	assert.Equal(t, []string{"session_started"}, tracker.events)

	again, err := container.Session.StartSession(ctx)
	require.NoError(t, err)
	assert.Zero(t, again.Installments.Created)
	assert.Zero(t, again.Recurring.Created)
}

func TestSessionService_ExportAndUnauthorized(t *testing.T) {
	ctx := userCtx()
	store := newMemStore()
	require.NoError(t, store.SaveInstallment(ctx, testUserID, phone()))
	container := services.NewServiceContainer(store.provider())

	snapshot, err := container.Session.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, testUserID, snapshot.UserID)
	assert.Len(t, snapshot.Installments, 1)
	assert.NotNil(t, snapshot.Settings.CustomCategories.Income)

	_, err = container.Session.Summary(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
