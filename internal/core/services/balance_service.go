package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Basri-akbas/Finance-Tracker/internal/apperrors"
	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	portsrepo "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/repositories"
	portssvc "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/services"
	"github.com/Basri-akbas/Finance-Tracker/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// balanceService edits the initial balances.
type balanceService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
	txnRepo      portsrepo.TransactionRepositoryFacade
}

// NewBalanceService creates a new balance service.
func NewBalanceService(settingsRepo portsrepo.SettingsRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade, options ...ServiceOption) portssvc.BalanceSvcFacade {
	return &balanceService{
		BaseService:  newBaseService(options),
		settingsRepo: settingsRepo,
		txnRepo:      txnRepo,
	}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

func (s *balanceService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := loadSettings(ctx, s.settingsRepo, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings")
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &settings, nil
}

func (s *balanceService) SetInitialBalance(ctx context.Context, method domain.PaymentMethod, amount decimal.Decimal) (decimal.Decimal, error) {
	if !method.IsValid() {
		return decimal.Zero, apperrors.NewValidationError("invalid payment method %q", method)
	}
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	if err := s.storeInitial(ctx, userID, method, amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// SetTargetBalance stores target minus the signed sum of the method's transactions,
// so the current balance reads target afterwards. Repeating the call changes nothing.
func (s *balanceService) SetTargetBalance(ctx context.Context, method domain.PaymentMethod, target decimal.Decimal) (decimal.Decimal, error) {
	if !method.IsValid() {
		return decimal.Zero, apperrors.NewValidationError("invalid payment method %q", method)
	}
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	txns, err := s.txnRepo.ListTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return decimal.Zero, fmt.Errorf("failed to list transactions: %w", err)
	}

	initial := accounting.InitialBalanceForTarget(txns, method, target)
	if err := s.storeInitial(ctx, userID, method, initial); err != nil {
		return decimal.Zero, err
	}
	s.LogInfo(ctx, "Balance reconciled to target",
		slog.String("payment_method", string(method)),
		slog.String("target", target.String()),
		slog.String("initial", initial.String()))
	return initial, nil
}

func (s *balanceService) storeInitial(ctx context.Context, userID string, method domain.PaymentMethod, amount decimal.Decimal) error {
	settings, err := loadSettings(ctx, s.settingsRepo, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings")
		return fmt.Errorf("failed to load settings: %w", err)
	}
	settings.InitialBalances = settings.InitialBalances.With(method, amount)
	settings.UpdatedAt = time.Now().UTC()

	if err := s.settingsRepo.SaveSettings(ctx, userID, settings); err != nil {
		s.LogError(ctx, err, "Failed to save initial balance", slog.String("payment_method", string(method)))
		return fmt.Errorf("failed to save initial balance: %w", err)
	}
	s.LogInfo(ctx, "Initial balance set",
		slog.String("payment_method", string(method)),
		slog.String("amount", amount.String()))
	return nil
}
