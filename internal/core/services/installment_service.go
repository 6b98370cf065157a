package services

import (
	"context"
	"errors"
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
	"github.com/shopspring/decimal"
)

// CatchUpSlack is how many loop steps beyond the installment count one catch-up run may take
// before giving up on that installment.
const CatchUpSlack = 5

var (
	ErrCatchUpBoundExceeded = errors.New("catch-up step bound exceeded")
)

// InstallmentCatchUpBound is the maximum number of periods one run may examine for inst.
func InstallmentCatchUpBound(inst domain.Installment, slack int) int {
	return inst.InstallmentCount + slack
}

// installmentService manages installments and materializes their due periods.
type installmentService struct {
	BaseService
	installmentRepo portsrepo.InstallmentRepositoryFacade
	txnRepo         portsrepo.TransactionRepositoryFacade
}

// NewInstallmentService creates a new installment service.
func NewInstallmentService(installmentRepo portsrepo.InstallmentRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade, options ...ServiceOption) portssvc.InstallmentSvcFacade {
	return &installmentService{
		BaseService:     newBaseService(options),
		installmentRepo: installmentRepo,
		txnRepo:         txnRepo,
	}
}

var _ portssvc.InstallmentSvcFacade = (*installmentService)(nil)

func (s *installmentService) ListInstallments(ctx context.Context) ([]domain.Installment, error) {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.installmentRepo.ListInstallments(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list installments")
		return nil, fmt.Errorf("failed to list installments: %w", err)
	}
	if items == nil {
		return []domain.Installment{}, nil
	}
	return items, nil
}

func (s *installmentService) GetInstallment(ctx context.Context, installmentID string) (*domain.Installment, error) {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	inst, err := s.installmentRepo.FindInstallmentByID(ctx, userID, installmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get installment %s: %w", installmentID, err)
	}
	return inst, nil
}

func (s *installmentService) ActiveInstallmentTotal(ctx context.Context) (decimal.Decimal, error) {
	items, err := s.ListInstallments(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return accounting.ActiveInstallmentTotal(items), nil
}

func (s *installmentService) CreateInstallment(ctx context.Context, req dto.CreateInstallmentRequest) (*domain.Installment, error) {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	inst, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	inst.ID = uuid.NewString()
	inst.CreatedAt = time.Now().UTC()

	if err := s.installmentRepo.SaveInstallment(ctx, userID, inst); err != nil {
		s.LogError(ctx, err, "Failed to save installment", slog.String("installment_id", inst.ID))
		return nil, fmt.Errorf("failed to save installment: %w", err)
	}

	s.LogInfo(ctx, "Installment created",
		slog.String("installment_id", inst.ID),
		slog.Int("count", inst.InstallmentCount),
		slog.String("monthly_amount", inst.MonthlyAmount.String()))
	return &inst, nil
}

func (s *installmentService) PayInstallment(ctx context.Context, installmentID string) (*domain.Installment, error) {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	inst, err := s.installmentRepo.FindInstallmentByID(ctx, userID, installmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load installment %s: %w", installmentID, err)
	}
	if inst.IsSettled() {
		s.LogDebug(ctx, "Installment already settled", slog.String("installment_id", installmentID))
		return inst, nil
	}

	paid := inst.PaidCount + 1
	if err := s.installmentRepo.UpdateInstallmentPaidCount(ctx, userID, installmentID, paid); err != nil {
		s.LogError(ctx, err, "Failed to record installment payment", slog.String("installment_id", installmentID))
		return nil, fmt.Errorf("failed to record payment of installment %s: %w", installmentID, err)
	}
	inst.PaidCount = paid
	s.LogInfo(ctx, "Installment paid manually", slog.String("installment_id", installmentID), slog.Int("paid_count", paid))
	return inst, nil
}

func (s *installmentService) DeleteInstallment(ctx context.Context, installmentID string) error {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if err := ignoreNotFound(s.installmentRepo.DeleteInstallment(ctx, userID, installmentID)); err != nil {
		s.LogError(ctx, err, "Failed to delete installment", slog.String("installment_id", installmentID))
		return fmt.Errorf("failed to delete installment %s: %w", installmentID, err)
	}
	s.LogInfo(ctx, "Installment deleted", slog.String("installment_id", installmentID))
	return nil
}

// CatchUp walks every unsettled installment in stored order. For each, periods are visited
// oldest first from the paid count while their payment date is on or before today. A period
// that already has a transaction for this installment in its month only advances the paid
// count; any other period gets a new expense transaction, then the paid count is advanced.
// A failure stops that installment and is recorded in the report; the others still run.
func (s *installmentService) CatchUp(ctx context.Context, today domain.Date) (domain.CatchUpReport, error) {
	var report domain.CatchUpReport

	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return report, err
	}
	items, err := s.installmentRepo.ListInstallments(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list installments for catch-up")
		return report, fmt.Errorf("failed to list installments: %w", err)
	}
	txns, err := s.txnRepo.ListTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for catch-up")
		return report, fmt.Errorf("failed to list transactions: %w", err)
	}

	coverage := domain.InstallmentCoverage(txns)

	for _, inst := range items {
		if inst.IsSettled() {
			continue
		}
		report.Processed++
		if err := s.catchUpInstallment(ctx, userID, inst, today, coverage, &report); err != nil {
			s.LogError(ctx, err, "Installment catch-up aborted", slog.String("installment_id", inst.ID))
			report.AddFailure(inst.ID, err)
		}
	}

	s.LogInfo(ctx, "Installment catch-up finished",
		slog.String("today", today.String()),
		slog.Int("processed", report.Processed),
		slog.Int("created", report.Created),
		slog.Int("reconciled", report.Reconciled),
		slog.Int("failed", len(report.Failures)))
	return report, nil
}

func (s *installmentService) catchUpInstallment(ctx context.Context, userID string, inst domain.Installment, today domain.Date, coverage domain.MonthCoverage, report *domain.CatchUpReport) error {
	bound := InstallmentCatchUpBound(inst, s.Slack)
	paid := inst.PaidCount

	for steps := 0; paid < inst.InstallmentCount; steps++ {
		due := inst.DueMonth(paid)
		if inst.DueDate(paid).After(today) {
			return nil
		}
		if steps >= bound {
			return fmt.Errorf("%w: installment %s stopped after %d steps", ErrCatchUpBoundExceeded, inst.ID, steps)
		}

		if coverage.Covered(inst.ID, due) {
			s.LogDebug(ctx, "Installment period already covered",
				slog.String("installment_id", inst.ID),
				slog.String("month", due.String()))
			report.Reconciled++
		} else {
			txn := domain.Transaction{
				ID:              uuid.NewString(),
				Type:            domain.Expense,
				PaymentMethod:   inst.PaymentMethod.OrDefault(),
				Amount:          inst.MonthlyAmount,
				Date:            inst.DueDate(paid),
				Category:        domain.CategoryBills,
				Description:     inst.PeriodDescription(paid + 1),
				CreatedAt:       time.Now().UTC(),
				IsAutoGenerated: true,
				InstallmentID:   inst.ID,
			}
			if err := s.txnRepo.SaveTransaction(ctx, userID, txn); err != nil {
				return fmt.Errorf("failed to materialize period %d: %w", paid+1, err)
			}
			coverage.Add(inst.ID, due)
			report.Created++
			s.LogInfo(ctx, "Installment period materialized",
				slog.String("installment_id", inst.ID),
				slog.String("transaction_id", txn.ID),
				slog.String("date", txn.Date.String()))
		}

		if err := s.installmentRepo.UpdateInstallmentPaidCount(ctx, userID, inst.ID, paid+1); err != nil {
			return fmt.Errorf("failed to persist paid count %d: %w", paid+1, err)
		}
		paid++
	}
	return nil
}
