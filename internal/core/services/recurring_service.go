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
)

// MaxRecurringCatchUp caps the months one template may advance in a single catch-up run.
const MaxRecurringCatchUp = 600

// recurringService manages recurring templates and materializes their occurrences.
type recurringService struct {
	BaseService
	recurringRepo portsrepo.RecurringRepositoryFacade
	txnRepo       portsrepo.TransactionRepositoryFacade
}

// NewRecurringService creates a new recurring template service.
func NewRecurringService(recurringRepo portsrepo.RecurringRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade, options ...ServiceOption) portssvc.RecurringSvcFacade {
	return &recurringService{
		BaseService:   newBaseService(options),
		recurringRepo: recurringRepo,
		txnRepo:       txnRepo,
	}
}

var _ portssvc.RecurringSvcFacade = (*recurringService)(nil)

func (s *recurringService) ListRecurringTemplates(ctx context.Context) ([]domain.RecurringTemplate, error) {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	templates, err := s.recurringRepo.ListRecurringTemplates(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recurring templates")
		return nil, fmt.Errorf("failed to list recurring templates: %w", err)
	}
	if templates == nil {
		return []domain.RecurringTemplate{}, nil
	}
	return templates, nil
}

func (s *recurringService) GetRecurringTemplate(ctx context.Context, templateID string) (*domain.RecurringTemplate, error) {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	tmpl, err := s.recurringRepo.FindRecurringTemplateByID(ctx, userID, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recurring template %s: %w", templateID, err)
	}
	return tmpl, nil
}

func (s *recurringService) CreateRecurringTemplate(ctx context.Context, req dto.RecurringTemplateRequest) (*domain.RecurringTemplate, error) {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	tmpl, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	tmpl.ID = uuid.NewString()
	tmpl.CreatedAt = time.Now().UTC()

	if err := s.recurringRepo.SaveRecurringTemplate(ctx, userID, tmpl); err != nil {
		s.LogError(ctx, err, "Failed to save recurring template")
		return nil, fmt.Errorf("failed to save recurring template: %w", err)
	}
	s.LogInfo(ctx, "Recurring template created",
		slog.String("template_id", tmpl.ID),
		slog.String("next_date", tmpl.NextDate.String()))
	return &tmpl, nil
}

func (s *recurringService) UpdateRecurringTemplate(ctx context.Context, templateID string, req dto.RecurringTemplateRequest) (*domain.RecurringTemplate, error) {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := s.recurringRepo.FindRecurringTemplateByID(ctx, userID, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring template %s: %w", templateID, err)
	}

	edit, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	edit.ID = existing.ID
	edit.CreatedAt = existing.CreatedAt
	// nextDate never moves backwards.
	if edit.NextDate.Before(existing.NextDate) {
		return nil, apperrors.NewValidationError("nextDate %s is before the template's next due date %s", edit.NextDate, existing.NextDate)
	}
	if err := edit.Validate(); err != nil {
		return nil, err
	}

	if err := s.recurringRepo.UpdateRecurringTemplate(ctx, userID, edit); err != nil {
		s.LogError(ctx, err, "Failed to update recurring template", slog.String("template_id", templateID))
		return nil, fmt.Errorf("failed to update recurring template %s: %w", templateID, err)
	}
	s.LogInfo(ctx, "Recurring template updated", slog.String("template_id", templateID))
	return &edit, nil
}

func (s *recurringService) DeleteRecurringTemplate(ctx context.Context, templateID string) error {
	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if err := ignoreNotFound(s.recurringRepo.DeleteRecurringTemplate(ctx, userID, templateID)); err != nil {
		s.LogError(ctx, err, "Failed to delete recurring template", slog.String("template_id", templateID))
		return fmt.Errorf("failed to delete recurring template %s: %w", templateID, err)
	}
	s.LogInfo(ctx, "Recurring template deleted", slog.String("template_id", templateID))
	return nil
}

// CatchUp materializes every occurrence dated on or before today. Months that already hold a
// transaction of the template are skipped. The template's next date is written once, after
// its loop completes; a failed save leaves the stored next date where it was so the next run
// retries from there and relies on the month dedupe.
func (s *recurringService) CatchUp(ctx context.Context, today domain.Date) (domain.CatchUpReport, error) {
	var report domain.CatchUpReport

	userID, err := s.CurrentUser(ctx)
	if err != nil {
		return report, err
	}
	templates, err := s.recurringRepo.ListRecurringTemplates(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recurring templates for catch-up")
		return report, fmt.Errorf("failed to list recurring templates: %w", err)
	}
	txns, err := s.txnRepo.ListTransactions(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for catch-up")
		return report, fmt.Errorf("failed to list transactions: %w", err)
	}

	coverage := domain.RecurringCoverage(txns)
	for _, tmpl := range templates {
		if tmpl.NextDate.IsZero() || tmpl.NextDate.After(today) {
			continue
		}
		report.Processed++
		if err := s.catchUpTemplate(ctx, userID, tmpl, today, coverage, &report); err != nil {
			s.LogError(ctx, err, "Recurring catch-up aborted", slog.String("template_id", tmpl.ID))
			report.AddFailure(tmpl.ID, err)
		}
	}

	s.LogInfo(ctx, "Recurring catch-up finished",
		slog.String("today", today.String()),
		slog.Int("processed", report.Processed),
		slog.Int("created", report.Created),
		slog.Int("reconciled", report.Reconciled),
		slog.Int("failed", len(report.Failures)))
	return report, nil
}

func (s *recurringService) catchUpTemplate(ctx context.Context, userID string, tmpl domain.RecurringTemplate, today domain.Date, coverage domain.MonthCoverage, report *domain.CatchUpReport) error {
	next := tmpl.NextDate
	steps := 0
	for ; !next.After(today) && steps < MaxRecurringCatchUp; steps++ {
		month := next.MonthKey()
		if coverage.Covered(tmpl.ID, month) {
			s.LogDebug(ctx, "Recurring occurrence already covered",
				slog.String("template_id", tmpl.ID),
				slog.String("month", month.String()))
			report.Reconciled++
		} else {
			txn := tmpl.Occurrence(next)
			txn.ID = uuid.NewString()
			txn.CreatedAt = time.Now().UTC()
			if err := s.txnRepo.SaveTransaction(ctx, userID, txn); err != nil {
				return fmt.Errorf("failed to materialize occurrence %s: %w", next, err)
			}
			coverage.Add(tmpl.ID, month)
			report.Created++
			s.LogInfo(ctx, "Recurring occurrence materialized",
				slog.String("template_id", tmpl.ID),
				slog.String("transaction_id", txn.ID),
				slog.String("date", next.String()))
		}
		next = next.AddMonths(1)
	}

	if next != tmpl.NextDate {
		if err := s.recurringRepo.UpdateRecurringNextDate(ctx, userID, tmpl.ID, next); err != nil {
			return fmt.Errorf("failed to persist next date %s: %w", next, err)
		}
	}
	if !next.After(today) {
		return fmt.Errorf("%w: template %s stopped at %s after %d months", ErrCatchUpBoundExceeded, tmpl.ID, next, steps)
	}
	return nil
}
