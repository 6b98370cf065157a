package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Basri-akbas/Finance-Tracker/internal/apperrors"
	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	portsrepo "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/repositories"
	portssvc "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/services"
	"github.com/Basri-akbas/Finance-Tracker/internal/dto"
	"github.com/Basri-akbas/Finance-Tracker/internal/utils/accounting"
	"github.com/Basri-akbas/Finance-Tracker/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// ledgerService keeps the transaction set and derives balances from it.
type ledgerService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(txnRepo portsrepo.TransactionRepositoryFacade, settingsRepo portsrepo.SettingsRepositoryFacade, options ...ServiceOption) portssvc.LedgerSvcFacade {
	return &ledgerService{
		BaseService:  newBaseService(options),
		txnRepo:      txnRepo,
		settingsRepo: settingsRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, nil, err
	}

	filter := domain.TransactionFilter{}
	if params.Type != "" && params.Type != "all" {
		filter.Type = domain.TransactionType(params.Type)
		if !filter.Type.IsValid() {
			return nil, nil, apperrors.NewValidationError("invalid transaction type filter %q", params.Type)
		}
	}
	if params.Month != "" {
		month, err := domain.ParseMonthKey(params.Month)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		filter.Month = &month
	}

	txns, err := s.txnRepo.ListTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	filtered := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		if filter.Matches(txn) {
			filtered = append(filtered, txn)
		}
	}

	page, next, err := pagination.Page(filtered, params.NextToken, params.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return page, next, nil
}

func (s *ledgerService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	txn, err := s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (s *ledgerService) CreateTransaction(ctx context.Context, req dto.TransactionRequest) (*domain.Transaction, error) {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	txn, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}
	txn.ID = uuid.NewString()
	txn.CreatedAt = time.Now().UTC()

	if err := s.txnRepo.SaveTransaction(ctx, userID, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.ID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.ID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (s *ledgerService) UpdateTransaction(ctx context.Context, transactionID string, req dto.TransactionRequest) (*domain.Transaction, error) {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	edit, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := edit.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.txnRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction %s: %w", transactionID, err)
	}

	updated := existing.ApplyEdit(edit)
	if err := s.txnRepo.UpdateTransaction(ctx, userID, updated); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return &updated, nil
}

func (s *ledgerService) DeleteTransaction(ctx context.Context, transactionID string) error {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if err := ignoreNotFound(s.txnRepo.DeleteTransaction(ctx, userID, transactionID)); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// snapshot loads everything balance math needs.
func (s *ledgerService) snapshot(ctx context.Context) (domain.Settings, []domain.Transaction, error) {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return domain.Settings{}, nil, err
	}
	settings, err := loadSettings(ctx, s.settingsRepo, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings")
		return domain.Settings{}, nil, fmt.Errorf("failed to load settings: %w", err)
	}
	txns, err := s.txnRepo.ListTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return domain.Settings{}, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return settings, txns, nil
}

func (s *ledgerService) CurrentBalance(ctx context.Context, method domain.PaymentMethod) (decimal.Decimal, error) {
	if !method.IsValid() {
		return decimal.Zero, apperrors.NewValidationError("invalid payment method %q", method)
	}
	settings, txns, err := s.snapshot(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return accounting.CurrentBalance(settings.InitialBalances, txns, method), nil
}

func (s *ledgerService) Balances(ctx context.Context) (*domain.Balances, error) {
	settings, txns, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	balances := accounting.Balances(settings.InitialBalances, txns)
	return &balances, nil
}

func (s *ledgerService) MonthlyAggregate(ctx context.Context, month domain.MonthKey) (*domain.MonthlyTotals, error) {
	_, txns, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	totals := accounting.MonthlyAggregate(txns, month)
	return &totals, nil
}

func (s *ledgerService) CategoryBreakdown(ctx context.Context, txnType domain.TransactionType, month *domain.MonthKey) ([]domain.CategoryShare, error) {
	if !txnType.IsValid() {
		return nil, apperrors.NewValidationError("invalid transaction type %q", txnType)
	}
	settings, txns, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if month != nil {
		inMonth := make([]domain.Transaction, 0, len(txns))
		for _, txn := range txns {
			if txn.InMonth(*month) {
				inMonth = append(inMonth, txn)
			}
		}
		txns = inMonth
	}
	resolver := domain.NewCategoryResolver(settings.CustomCategories)
	return accounting.CategoryBreakdown(txns, txnType, resolver), nil
}

func (s *ledgerService) HistoryByMonth(ctx context.Context) ([]domain.MonthHistory, error) {
	_, txns, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return accounting.HistoryByMonth(txns), nil
}
