package boltstore_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Basri-akbas/Finance-Tracker/internal/apperrors"
	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	portsrepo "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/repositories"
	"github.com/Basri-akbas/Finance-Tracker/internal/repositories/database/boltstore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func openProvider(t *testing.T) (portsrepo.RepositoryProvider, *bolt.DB) {
	t.Helper()
	db, err := bolt.Open(filepath.Join(t.TempDir(), "finance.db"), 0o600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store, err := boltstore.New(db)
	require.NoError(t, err)
	return boltstore.NewRepositoryProvider(store), db
}

func sampleTxn(id, date string, createdAt time.Time) domain.Transaction {
	return domain.Transaction{
		ID:            id,
		Type:          domain.Expense,
		PaymentMethod: domain.Bank,
		Amount:        decimal.RequireFromString("12.50"),
		Date:          domain.MustParseDate(date),
		Category:      "food",
		Description:   "Groceries",
		CreatedAt:     createdAt,
		InstallmentID: "inst-1",
	}
}

func TestTransactions_CRUDAndOrdering(t *testing.T) {
	ctx := context.Background()
	repos, _ := openProvider(t)
	repo := repos.TransactionRepo
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveTransaction(ctx, "alice", sampleTxn("a", "2024-03-01", base)))
	require.NoError(t, repo.SaveTransaction(ctx, "alice", sampleTxn("b", "2024-03-05", base)))
	require.NoError(t, repo.SaveTransaction(ctx, "alice", sampleTxn("c", "2024-03-01", base.Add(time.Hour))))
	require.NoError(t, repo.SaveTransaction(ctx, "bob", sampleTxn("z", "2024-03-09", base)))

	txns, err := repo.ListTransactions(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{txns[0].ID, txns[1].ID, txns[2].ID})
	assert.True(t, txns[0].Amount.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, "inst-1", txns[0].InstallmentID)

	found, err := repo.FindTransactionByID(ctx, "alice", "a")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", found.Date.String())
	assert.True(t, found.CreatedAt.Equal(base))

	_, err = repo.FindTransactionByID(ctx, "alice", "z")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	found.Description = "Market"
	require.NoError(t, repo.UpdateTransaction(ctx, "alice", *found))
	again, err := repo.FindTransactionByID(ctx, "alice", "a")
	require.NoError(t, err)
	assert.Equal(t, "Market", again.Description)

	assert.ErrorIs(t, repo.UpdateTransaction(ctx, "alice", sampleTxn("missing", "2024-01-01", base)), apperrors.ErrNotFound)

	require.NoError(t, repo.DeleteTransaction(ctx, "alice", "a"))
	assert.ErrorIs(t, repo.DeleteTransaction(ctx, "alice", "a"), apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteTransaction(ctx, "carol", "a"), apperrors.ErrNotFound)
}

func TestTransactions_SkipsMalformedRecords(t *testing.T) {
	ctx := context.Background()
	repos, db := openProvider(t)
	require.NoError(t, repos.TransactionRepo.SaveTransaction(ctx, "alice", sampleTxn("ok", "2024-03-01", time.Now().UTC())))

	require.NoError(t, db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(boltstore.BucketTransactions)).Bucket([]byte("alice"))
		if err := b.Put([]byte("garbage"), []byte("{not json")); err != nil {
			return err
		}
		return b.Put([]byte("bad-type"), []byte(`{"transactionID":"bad-type","type":"transfer","transactionDate":"2024-03-01T00:00:00Z"}`))
	}))

	txns, err := repos.TransactionRepo.ListTransactions(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "ok", txns[0].ID)
}

func TestInstallments_PaidCountNeverDecreases(t *testing.T) {
	ctx := context.Background()
	repos, _ := openProvider(t)
	repo := repos.InstallmentRepo
	inst := domain.Installment{
		ID:               "inst-1",
		Description:      "Phone",
		TotalAmount:      decimal.NewFromInt(1200),
		InstallmentCount: 12,
		MonthlyAmount:    decimal.NewFromInt(100),
		StartDate:        domain.MustParseDate("2024-01-15"),
		PaymentMethod:    domain.Cash,
		CreatedAt:        time.Now().UTC(),
	}
	require.NoError(t, repo.SaveInstallment(ctx, "alice", inst))

	require.NoError(t, repo.UpdateInstallmentPaidCount(ctx, "alice", "inst-1", 3))
	require.NoError(t, repo.UpdateInstallmentPaidCount(ctx, "alice", "inst-1", 2))
	require.NoError(t, repo.UpdateInstallmentPaidCount(ctx, "alice", "inst-1", 40))

	got, err := repo.FindInstallmentByID(ctx, "alice", "inst-1")
	require.NoError(t, err)
	assert.Equal(t, 12, got.PaidCount)
	assert.Equal(t, "2024-01-15", got.StartDate.String())

	assert.ErrorIs(t, repo.UpdateInstallmentPaidCount(ctx, "alice", "missing", 1), apperrors.ErrNotFound)

	list, err := repo.ListInstallments(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	empty, err := repo.ListInstallments(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRecurringTemplates_NextDate(t *testing.T) {
	ctx := context.Background()
	repos, _ := openProvider(t)
	repo := repos.RecurringRepo
	tmpl := domain.RecurringTemplate{
		ID:            "rent",
		Description:   "Rent",
		Type:          domain.Expense,
		PaymentMethod: domain.Bank,
		Amount:        decimal.NewFromInt(50),
		Category:      "bills",
		NextDate:      domain.MustParseDate("2024-01-31"),
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, repo.SaveRecurringTemplate(ctx, "alice", tmpl))
	require.NoError(t, repo.UpdateRecurringNextDate(ctx, "alice", "rent", domain.MustParseDate("2024-02-29")))

	got, err := repo.FindRecurringTemplateByID(ctx, "alice", "rent")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", got.NextDate.String())

	require.NoError(t, repo.DeleteRecurringTemplate(ctx, "alice", "rent"))
	assert.ErrorIs(t, repo.UpdateRecurringNextDate(ctx, "alice", "rent", domain.MustParseDate("2024-03-31")), apperrors.ErrNotFound)
}

func TestDebts_OptionalDueDate(t *testing.T) {
	ctx := context.Background()
	repos, _ := openProvider(t)
	due := domain.MustParseDate("2024-06-01")
	require.NoError(t, repos.DebtRepo.SaveDebt(ctx, "alice", domain.Debt{
		ID: "d1", Type: domain.Receivable, Person: "Ayşe", Amount: decimal.NewFromInt(10),
		DueDate: &due, Status: domain.DebtWaiting, CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, repos.DebtRepo.SaveDebt(ctx, "alice", domain.Debt{
		ID: "d2", Type: domain.Payable, Person: "Ali", Amount: decimal.NewFromInt(20),
		Status: domain.DebtPaid, CreatedAt: time.Now().UTC(),
	}))

	d1, err := repos.DebtRepo.FindDebtByID(ctx, "alice", "d1")
	require.NoError(t, err)
	require.NotNil(t, d1.DueDate)
	assert.Equal(t, "2024-06-01", d1.DueDate.String())

	d2, err := repos.DebtRepo.FindDebtByID(ctx, "alice", "d2")
	require.NoError(t, err)
	assert.Nil(t, d2.DueDate)
	assert.Equal(t, domain.DebtPaid, d2.Status)
}

func TestSettings_FirstRunAndUpsert(t *testing.T) {
	ctx := context.Background()
	repos, _ := openProvider(t)

	_, err := repos.SettingsRepo.GetSettings(ctx, "alice")
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	settings := domain.DefaultSettings()
	settings.InitialBalances.Cash = decimal.NewFromInt(700)
	settings.CustomCategories.Expense = []domain.Category{{ID: "custom_expense_1", Name: "Pets"}}
	require.NoError(t, repos.SettingsRepo.SaveSettings(ctx, "alice", settings))

	got, err := repos.SettingsRepo.GetSettings(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, got.InitialBalances.Cash.Equal(decimal.NewFromInt(700)))
	assert.True(t, got.InitialBalances.Bank.IsZero())
	assert.Equal(t, settings.CustomCategories.Expense, got.CustomCategories.Expense)
	assert.NotNil(t, got.CustomCategories.Income)
	assert.False(t, got.UpdatedAt.IsZero())
}
