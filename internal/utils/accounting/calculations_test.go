package accounting

import (
	"math/rand"
	"testing"
	"time"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func txn(txnType domain.TransactionType, method domain.PaymentMethod, amount int64, date, category string) domain.Transaction {
	return domain.Transaction{
		Type:          txnType,
		PaymentMethod: method,
		Amount:        decimal.NewFromInt(amount),
		Date:          domain.MustParseDate(date),
		Category:      category,
	}
}

func sampleTransactions() []domain.Transaction {
	return []domain.Transaction{
		txn(domain.Income, domain.Cash, 500, "2024-01-05", "salary"),
		txn(domain.Expense, domain.Cash, 200, "2024-01-10", "food"),
		txn(domain.Expense, domain.Bank, 75, "2024-02-01", "bills"),
		txn(domain.Income, domain.Bank, 1000, "2024-02-15", "salary"),
		txn(domain.Expense, domain.Cash, 25, "2024-03-03", "transport"),
	}
}

func TestCalculateSignedAmount(t *testing.T) {
	assert.True(t, decimal.NewFromInt(10).Equal(CalculateSignedAmount(txn(domain.Income, domain.Cash, 10, "2024-01-01", "x"))))
	assert.True(t, decimal.NewFromInt(-10).Equal(CalculateSignedAmount(txn(domain.Expense, domain.Cash, 10, "2024-01-01", "x"))))
}

func TestCurrentBalance_Example(t *testing.T) {
	initial := domain.InitialBalances{Cash: decimal.Zero, Bank: decimal.Zero}
	txns := []domain.Transaction{
		txn(domain.Income, domain.Cash, 500, "2024-01-05", "salary"),
		txn(domain.Expense, domain.Cash, 200, "2024-01-06", "food"),
	}

	assert.True(t, decimal.NewFromInt(300).Equal(CurrentBalance(initial, txns, domain.Cash)))

	newInitial := InitialBalanceForTarget(txns, domain.Cash, decimal.NewFromInt(1000))
	assert.True(t, decimal.NewFromInt(700).Equal(newInitial))

	initial = initial.With(domain.Cash, newInitial)
	assert.True(t, decimal.NewFromInt(1000).Equal(CurrentBalance(initial, txns, domain.Cash)))
}

func TestCurrentBalance_OrderInvariant(t *testing.T) {
	initial := domain.InitialBalances{Cash: decimal.NewFromInt(50), Bank: decimal.NewFromInt(10)}
	txns := sampleTransactions()
	wantCash := CurrentBalance(initial, txns, domain.Cash)
	wantBank := CurrentBalance(initial, txns, domain.Bank)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]domain.Transaction(nil), txns...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		assert.True(t, wantCash.Equal(CurrentBalance(initial, shuffled, domain.Cash)))
		assert.True(t, wantBank.Equal(CurrentBalance(initial, shuffled, domain.Bank)))
	}
	assert.True(t, decimal.NewFromInt(325).Equal(wantCash))
	assert.True(t, decimal.NewFromInt(935).Equal(wantBank))
}

func TestBalances(t *testing.T) {
	initial := domain.InitialBalances{Cash: decimal.NewFromInt(50), Bank: decimal.NewFromInt(10)}
	b := Balances(initial, sampleTransactions())

	assert.True(t, decimal.NewFromInt(325).Equal(b.Cash))
	assert.True(t, decimal.NewFromInt(935).Equal(b.Bank))
	assert.True(t, decimal.NewFromInt(1260).Equal(b.Total))
}

func TestTargetBalance_RoundTrip(t *testing.T) {
	txns := sampleTransactions()
	for _, target := range []int64{0, 1, -250, 99999} {
		for _, method := range domain.PaymentMethods {
			initial := domain.InitialBalances{Cash: decimal.NewFromInt(3), Bank: decimal.NewFromInt(4)}
			initial = initial.With(method, InitialBalanceForTarget(txns, method, decimal.NewFromInt(target)))
			assert.True(t, decimal.NewFromInt(target).Equal(CurrentBalance(initial, txns, method)))
		}
	}
}

func TestMonthlyAggregate(t *testing.T) {
	totals := MonthlyAggregate(sampleTransactions(), domain.MonthKey{Year: 2024, Month: time.February})
	assert.True(t, decimal.NewFromInt(1000).Equal(totals.Income))
	assert.True(t, decimal.NewFromInt(75).Equal(totals.Expense))

	empty := MonthlyAggregate(sampleTransactions(), domain.MonthKey{Year: 2023, Month: time.February})
	assert.True(t, empty.Income.IsZero())
	assert.True(t, empty.Expense.IsZero())
}

func TestCategoryBreakdown(t *testing.T) {
	resolver := domain.NewCategoryResolver(domain.CustomCategories{})
	txns := []domain.Transaction{
		txn(domain.Expense, domain.Cash, 50, "2024-01-01", "transport"),
		txn(domain.Expense, domain.Cash, 100, "2024-01-02", "food"),
		txn(domain.Expense, domain.Cash, 50, "2024-01-03", "health"),
		txn(domain.Expense, domain.Bank, 50, "2024-01-04", "custom_expense_1"),
		txn(domain.Income, domain.Cash, 999, "2024-01-04", "salary"),
	}

	shares := CategoryBreakdown(txns, domain.Expense, resolver)

	if assert.Len(t, shares, 4) {
		assert.Equal(t, "food", shares[0].CategoryID)
		assert.Equal(t, "Yiyecek & İçecek", shares[0].Name)
		assert.True(t, decimal.NewFromInt(40).Equal(shares[0].Percentage))
		// ties keep encounter order
		assert.Equal(t, "transport", shares[1].CategoryID)
		assert.Equal(t, "health", shares[2].CategoryID)
		assert.Equal(t, "custom_expense_1", shares[3].CategoryID)
		assert.Equal(t, "custom_expense_1", shares[3].Name)
		assert.True(t, decimal.NewFromInt(20).Equal(shares[3].Percentage))
	}
}

func TestCategoryBreakdown_ZeroTotal(t *testing.T) {
	resolver := domain.NewCategoryResolver(domain.CustomCategories{})
	txns := []domain.Transaction{
		txn(domain.Expense, domain.Cash, 0, "2024-01-01", "food"),
		txn(domain.Expense, domain.Cash, 0, "2024-01-01", "bills"),
	}

	shares := CategoryBreakdown(txns, domain.Expense, resolver)

	assert.Len(t, shares, 2)
	for _, s := range shares {
		assert.True(t, s.Percentage.IsZero())
	}
	assert.Empty(t, CategoryBreakdown(nil, domain.Income, resolver))
}

func TestHistoryByMonth(t *testing.T) {
	txns := append(sampleTransactions(), txn(domain.Income, domain.Cash, 5, "2023-12-31", "other-income"))

	history := HistoryByMonth(txns)

	if assert.Len(t, history, 4) {
		assert.Equal(t, 2024, history[0].Year)
		assert.Equal(t, 3, history[0].Month)
		assert.Equal(t, 2, history[1].Month)
		assert.True(t, decimal.NewFromInt(1000).Equal(history[1].Income))
		assert.True(t, decimal.NewFromInt(75).Equal(history[1].Expense))
		assert.Equal(t, 1, history[2].Month)
		assert.Equal(t, 2023, history[3].Year)
		assert.Equal(t, 12, history[3].Month)
	}
}

func TestActiveInstallmentTotal(t *testing.T) {
	items := []domain.Installment{
		{InstallmentCount: 12, PaidCount: 3, MonthlyAmount: decimal.NewFromInt(100)},
		{InstallmentCount: 4, PaidCount: 4, MonthlyAmount: decimal.NewFromInt(50)},
		{InstallmentCount: 6, PaidCount: 0, MonthlyAmount: decimal.NewFromInt(10)},
	}
	assert.True(t, decimal.NewFromInt(960).Equal(ActiveInstallmentTotal(items)))
}

func TestWaitingDebtTotals(t *testing.T) {
	debts := []domain.Debt{
		{Type: domain.Receivable, Amount: decimal.NewFromInt(100), Status: domain.DebtWaiting},
		{Type: domain.Receivable, Amount: decimal.NewFromInt(40), Status: domain.DebtPaid},
		{Type: domain.Payable, Amount: decimal.NewFromInt(30), Status: domain.DebtWaiting},
	}
	totals := WaitingDebtTotals(debts)
	assert.True(t, decimal.NewFromInt(100).Equal(totals.Receivable))
	assert.True(t, decimal.NewFromInt(30).Equal(totals.Payable))
}

func TestSortByDateDesc(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		{ID: "old", Date: domain.MustParseDate("2024-01-01"), CreatedAt: base},
		{ID: "new-late", Date: domain.MustParseDate("2024-02-01"), CreatedAt: base.Add(2 * time.Hour)},
		{ID: "new-early", Date: domain.MustParseDate("2024-02-01"), CreatedAt: base.Add(time.Hour)},
	}

	SortByDateDesc(txns)

	assert.Equal(t, "new-late", txns[0].ID)
	assert.Equal(t, "new-early", txns[1].ID)
	assert.Equal(t, "old", txns[2].ID)
}
