package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/Basri-akbas/Finance-Tracker/internal/apperrors"
	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	portsrepo "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/repositories"
	"github.com/Basri-akbas/Finance-Tracker/internal/models"
	"github.com/Basri-akbas/Finance-Tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, user_id, type, payment_method, amount, transaction_date, category, description,
		is_auto_generated, is_recurring, installment_id, recurring_id, created_at, last_updated_at`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.Type,
		&m.PaymentMethod,
		&m.Amount,
		&m.TransactionDate,
		&m.Category,
		&m.Description,
		&m.IsAutoGenerated,
		&m.IsRecurring,
		&m.InstallmentID,
		&m.RecurringID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// ListTransactions returns the user's transactions, newest date first, then newest created first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY transaction_date DESC, created_at DESC, transaction_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, dbError("failed to query transactions", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, dbError("failed to scan transactions", err)
	}

	txns, err := mapping.ToDomainTransactionSlice(modelTxns)
	r.warnMalformed(ctx, "transactions", err)
	return txns, nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND transaction_id = $2;
	`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, userID, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, dbError("failed to find transaction "+transactionID, err)
	}
	txn, err := mapping.ToDomainTransaction(m)
	if err != nil {
		return nil, dbError("failed to read transaction "+transactionID, err)
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, userID string, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(userID, txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.UserID,
		m.Type,
		m.PaymentMethod,
		m.Amount,
		m.TransactionDate,
		m.Category,
		m.Description,
		m.IsAutoGenerated,
		m.IsRecurring,
		m.InstallmentID,
		m.RecurringID,
		m.CreatedAt,
		time.Now().UTC(),
	)
	if err != nil {
		return dbError("failed to insert transaction "+m.TransactionID, err)
	}
	return nil
}

// UpdateTransaction replaces every stored field except the owner and the creation time.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, userID string, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(userID, txn)
	query := `
		UPDATE transactions
		SET type = $3,
		    payment_method = $4,
		    amount = $5,
		    transaction_date = $6,
		    category = $7,
		    description = $8,
		    is_auto_generated = $9,
		    is_recurring = $10,
		    installment_id = $11,
		    recurring_id = $12,
		    last_updated_at = $13
		WHERE user_id = $1 AND transaction_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.TransactionID,
		m.Type,
		m.PaymentMethod,
		m.Amount,
		m.TransactionDate,
		m.Category,
		m.Description,
		m.IsAutoGenerated,
		m.IsRecurring,
		m.InstallmentID,
		m.RecurringID,
		time.Now().UTC(),
	)
	if err != nil {
		return dbError("failed to update transaction "+m.TransactionID, err)
	}
	return mustAffect(tag, "transaction "+m.TransactionID)
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE user_id = $1 AND transaction_id = $2;`, userID, transactionID)
	if err != nil {
		return dbError("failed to delete transaction "+transactionID, err)
	}
	return mustAffect(tag, "transaction "+transactionID)
}
