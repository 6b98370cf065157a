package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	portsrepo "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/repositories"
	portssvc "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/services"
	"github.com/Basri-akbas/Finance-Tracker/internal/utils/accounting"
)

// sessionService runs the start-of-session catch-up and builds the dashboard figures.
type sessionService struct {
	BaseService
	repos       portsrepo.RepositoryProvider
	installment portssvc.InstallmentProjectorSvc
	recurring   portssvc.RecurringProjectorSvc
}

// NewSessionService creates a new session service over the given projectors.
func NewSessionService(repos portsrepo.RepositoryProvider, installment portssvc.InstallmentProjectorSvc, recurring portssvc.RecurringProjectorSvc, options ...ServiceOption) portssvc.SessionSvcFacade {
	return &sessionService{
		BaseService: newBaseService(options),
		repos:       repos,
		installment: installment,
		recurring:   recurring,
	}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

// StartSession catches up installments first, then recurring templates, both against the
// clock's today, and finally computes the summary over the updated ledger. Per-item catch-up
// failures are reported, not returned.
func (s *sessionService) StartSession(ctx context.Context) (*domain.SessionReport, error) {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	today := s.Today()

	installments, err := s.installment.CatchUp(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("installment catch-up failed: %w", err)
	}
	recurring, err := s.recurring.CatchUp(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("recurring catch-up failed: %w", err)
	}
	summary, err := s.summaryFor(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	report := &domain.SessionReport{
		Installments: installments,
		Recurring:    recurring,
		Summary:      *summary,
	}
	if failed := len(installments.Failures) + len(recurring.Failures); failed > 0 {
		s.LogWarn(ctx, "Session started with catch-up failures", slog.Int("failed", failed))
	}
	s.track(userID, "session_started", map[string]any{
		"installments_created": installments.Created,
		"recurring_created":    recurring.Created,
		"failures":             len(installments.Failures) + len(recurring.Failures),
	})
	return report, nil
}

func (s *sessionService) Summary(ctx context.Context) (*domain.Summary, error) {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.summaryFor(ctx, userID, s.Today())
}

func (s *sessionService) summaryFor(ctx context.Context, userID string, today domain.Date) (*domain.Summary, error) {
	settings, err := loadSettings(ctx, s.repos.SettingsRepo, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings")
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	txns, err := s.repos.TransactionRepo.ListTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	installments, err := s.repos.InstallmentRepo.ListInstallments(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list installments")
		return nil, fmt.Errorf("failed to list installments: %w", err)
	}

	month := accounting.MonthlyAggregate(txns, today.MonthKey())
	return &domain.Summary{
		Today:                  today,
		MonthIncome:            month.Income,
		MonthExpense:           month.Expense,
		Balances:               accounting.Balances(settings.InitialBalances, txns),
		ActiveInstallmentTotal: accounting.ActiveInstallmentTotal(installments),
	}, nil
}

func (s *sessionService) Export(ctx context.Context) (*domain.Snapshot, error) {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := loadSettings(ctx, s.repos.SettingsRepo, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	txns, err := s.repos.TransactionRepo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	installments, err := s.repos.InstallmentRepo.ListInstallments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list installments: %w", err)
	}
	templates, err := s.repos.RecurringRepo.ListRecurringTemplates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring templates: %w", err)
	}
	debts, err := s.repos.DebtRepo.ListDebts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	s.LogInfo(ctx, "Snapshot exported", slog.Int("transactions", len(txns)))
	return &domain.Snapshot{
		UserID:             userID,
		ExportedAt:         time.Now().UTC(),
		Settings:           settings,
		Transactions:       txns,
		Installments:       installments,
		RecurringTemplates: templates,
		Debts:              debts,
	}, nil
}
