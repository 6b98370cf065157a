package services

import (
	"context"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	"github.com/Basri-akbas/Finance-Tracker/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines read operations and derived figures over the ledger
type LedgerReaderSvc interface {
	// ListTransactions returns a filtered page of transactions, newest first, and the token of the next page.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error)

	// GetTransaction retrieves a single transaction.
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// CurrentBalance is the initial balance plus the signed sum of the method's transactions.
	CurrentBalance(ctx context.Context, method domain.PaymentMethod) (decimal.Decimal, error)

	// Balances returns the cash, bank and combined current balances.
	Balances(ctx context.Context) (*domain.Balances, error)

	// MonthlyAggregate sums income and expense for a calendar month.
	MonthlyAggregate(ctx context.Context, month domain.MonthKey) (*domain.MonthlyTotals, error)

	// CategoryBreakdown groups the transactions of a type (optionally within a month) by category.
	CategoryBreakdown(ctx context.Context, txnType domain.TransactionType, month *domain.MonthKey) ([]domain.CategoryShare, error)

	// HistoryByMonth aggregates all transactions per month, most recent first.
	HistoryByMonth(ctx context.Context) ([]domain.MonthHistory, error)
}

// LedgerWriterSvc defines manual edits of the ledger
type LedgerWriterSvc interface {
	// CreateTransaction records a manual transaction.
	CreateTransaction(ctx context.Context, req dto.TransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction replaces the editable fields of a transaction, keeping its id and creation time.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.TransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction. Deleting an unknown id succeeds.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
