package repositories

import (
	"context"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
)

// TransactionReader defines read operations for ledger transactions
type TransactionReader interface {
	// ListTransactions retrieves every transaction of the user, newest date first.
	// Transactions sharing a date are ordered by creation time, newest first.
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)

	// FindTransactionByID retrieves a single transaction. Returns apperrors.ErrNotFound when absent.
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger transactions
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, userID string, txn domain.Transaction) error

	// UpdateTransaction replaces a stored transaction. Returns apperrors.ErrNotFound when absent.
	UpdateTransaction(ctx context.Context, userID string, txn domain.Transaction) error

	// DeleteTransaction removes a transaction. Returns apperrors.ErrNotFound when absent.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
