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
)

type debtService struct {
	BaseService
	debtRepo portsrepo.DebtRepositoryFacade
}

// NewDebtService creates a new debt service.
func NewDebtService(debtRepo portsrepo.DebtRepositoryFacade, options ...ServiceOption) portssvc.DebtSvcFacade {
	return &debtService{
		BaseService: newBaseService(options),
		debtRepo:    debtRepo,
	}
}

var _ portssvc.DebtSvcFacade = (*debtService)(nil)

func (s *debtService) ListDebts(ctx context.Context) ([]domain.Debt, error) {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	debts, err := s.debtRepo.ListDebts(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list debts")
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	if debts == nil {
		return []domain.Debt{}, nil
	}
	return debts, nil
}

func (s *debtService) CreateDebt(ctx context.Context, req dto.DebtRequest) (*domain.Debt, error) {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	debt, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := debt.Validate(); err != nil {
		return nil, err
	}
	debt.ID = uuid.NewString()
	debt.CreatedAt = time.Now().UTC()

	if err := s.debtRepo.SaveDebt(ctx, userID, debt); err != nil {
		s.LogError(ctx, err, "Failed to save debt")
		return nil, fmt.Errorf("failed to save debt: %w", err)
	}
	s.LogInfo(ctx, "Debt created", slog.String("debt_id", debt.ID), slog.String("type", string(debt.Type)))
	return &debt, nil
}

func (s *debtService) UpdateDebt(ctx context.Context, debtID string, req dto.DebtRequest) (*domain.Debt, error) {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := s.debtRepo.FindDebtByID(ctx, userID, debtID)
	if err != nil {
		return nil, fmt.Errorf("failed to load debt %s: %w", debtID, err)
	}
	edit, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	edit.ID = existing.ID
	edit.CreatedAt = existing.CreatedAt
	edit.Status = existing.Status
	if err := edit.Validate(); err != nil {
		return nil, err
	}

	if err := s.debtRepo.UpdateDebt(ctx, userID, edit); err != nil {
		s.LogError(ctx, err, "Failed to update debt", slog.String("debt_id", debtID))
		return nil, fmt.Errorf("failed to update debt %s: %w", debtID, err)
	}
	return &edit, nil
}

func (s *debtService) MarkDebtPaid(ctx context.Context, debtID string) (*domain.Debt, error) {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	debt, err := s.debtRepo.FindDebtByID(ctx, userID, debtID)
	if err != nil {
		return nil, fmt.Errorf("failed to load debt %s: %w", debtID, err)
	}
	if debt.Status == domain.DebtPaid {
		return debt, nil
	}
	paid := *debt
	paid.Status = domain.DebtPaid
	if err := s.debtRepo.UpdateDebt(ctx, userID, paid); err != nil {
		s.LogError(ctx, err, "Failed to mark debt paid", slog.String("debt_id", debtID))
		return nil, fmt.Errorf("failed to mark debt %s paid: %w", debtID, err)
	}
	s.LogInfo(ctx, "Debt marked paid", slog.String("debt_id", debtID))
	return &paid, nil
}

func (s *debtService) DeleteDebt(ctx context.Context, debtID string) error {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if err := ignoreNotFound(s.debtRepo.DeleteDebt(ctx, userID, debtID)); err != nil {
		s.LogError(ctx, err, "Failed to delete debt", slog.String("debt_id", debtID))
		return fmt.Errorf("failed to delete debt %s: %w", debtID, err)
	}
	return nil
}

func (s *debtService) WaitingTotals(ctx context.Context) (*domain.DebtTotals, error) {
	debts, err := s.ListDebts(ctx)
	if err != nil {
		return nil, err
	}
	totals := accounting.WaitingDebtTotals(debts)
	return &totals, nil
}
