package repositories

import (
	"context"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
)

// RecurringReader defines read operations for recurring templates
type RecurringReader interface {
	// ListRecurringTemplates retrieves the user's templates in stored order (newest first).
	ListRecurringTemplates(ctx context.Context, userID string) ([]domain.RecurringTemplate, error)

	// FindRecurringTemplateByID retrieves a single template. Returns apperrors.ErrNotFound when absent.
	FindRecurringTemplateByID(ctx context.Context, userID, templateID string) (*domain.RecurringTemplate, error)
}

// RecurringWriter defines write operations for recurring templates
type RecurringWriter interface {
	// SaveRecurringTemplate persists a new template.
	SaveRecurringTemplate(ctx context.Context, userID string, template domain.RecurringTemplate) error

	// UpdateRecurringTemplate replaces a stored template. Returns apperrors.ErrNotFound when absent.
	UpdateRecurringTemplate(ctx context.Context, userID string, template domain.RecurringTemplate) error

	// UpdateRecurringNextDate moves the template's next occurrence. Returns apperrors.ErrNotFound when absent.
	UpdateRecurringNextDate(ctx context.Context, userID, templateID string, nextDate domain.Date) error

	// DeleteRecurringTemplate removes a template. Returns apperrors.ErrNotFound when absent.
	DeleteRecurringTemplate(ctx context.Context, userID, templateID string) error
}

// RecurringRepositoryFacade combines all recurring-template repository interfaces
type RecurringRepositoryFacade interface {
	RecurringReader
	RecurringWriter
}
