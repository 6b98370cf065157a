package services

import (
	"context"

	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	"github.com/Basri-akbas/Finance-Tracker/internal/dto"
)

// RecurringReaderSvc defines read operations for recurring templates
type RecurringReaderSvc interface {
	ListRecurringTemplates(ctx context.Context) ([]domain.RecurringTemplate, error)
	GetRecurringTemplate(ctx context.Context, templateID string) (*domain.RecurringTemplate, error)
}

// RecurringWriterSvc defines write operations for recurring templates
type RecurringWriterSvc interface {
	CreateRecurringTemplate(ctx context.Context, req dto.RecurringTemplateRequest) (*domain.RecurringTemplate, error)

	// UpdateRecurringTemplate replaces the editable fields, including the next date.
	UpdateRecurringTemplate(ctx context.Context, templateID string, req dto.RecurringTemplateRequest) (*domain.RecurringTemplate, error)

	// DeleteRecurringTemplate stops future materialization. Past transactions stay.
	DeleteRecurringTemplate(ctx context.Context, templateID string) error
}

// RecurringProjectorSvc materializes due recurring occurrences
type RecurringProjectorSvc interface {
	// CatchUp creates one transaction per due, uncovered occurrence up to and including today.
	CatchUp(ctx context.Context, today domain.Date) (domain.CatchUpReport, error)
}

// RecurringSvcFacade combines all recurring-template service interfaces
type RecurringSvcFacade interface {
	RecurringReaderSvc
	RecurringWriterSvc
	RecurringProjectorSvc
}
