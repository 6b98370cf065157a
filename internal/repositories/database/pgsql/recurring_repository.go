package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/Basri-akbas/Finance-Tracker/internal/apperrors"
	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	portsrepo "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/repositories"
	"github.com/Basri-akbas/Finance-Tracker/internal/models"
	"github.com/Basri-akbas/Finance-Tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const recurringColumns = `template_id, user_id, description, type, payment_method, amount, category, next_date,
		created_at, last_updated_at`

type PgxRecurringRepository struct {
	BaseRepository
}

func newPgxRecurringRepository(pool *pgxpool.Pool) portsrepo.RecurringRepositoryFacade {
	return &PgxRecurringRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RecurringRepositoryFacade = (*PgxRecurringRepository)(nil)

func scanRecurringTemplate(row pgx.Row) (models.RecurringTemplate, error) {
	var m models.RecurringTemplate
	err := row.Scan(
		&m.TemplateID,
		&m.UserID,
		&m.Description,
		&m.Type,
		&m.PaymentMethod,
		&m.Amount,
		&m.Category,
		&m.NextDate,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxRecurringRepository) ListRecurringTemplates(ctx context.Context, userID string) ([]domain.RecurringTemplate, error) {
	query := `
		SELECT ` + recurringColumns + `
		FROM recurring_templates
		WHERE user_id = $1
		ORDER BY created_at DESC, template_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, dbError("failed to query recurring templates", err)
	}
	defer rows.Close()

	modelTemplates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.RecurringTemplate, error) {
		return scanRecurringTemplate(row)
	})
	if err != nil {
		return nil, dbError("failed to scan recurring templates", err)
	}

	templates, err := mapping.ToDomainRecurringTemplateSlice(modelTemplates)
	r.warnMalformed(ctx, "recurring_templates", err)
	return templates, nil
}

func (r *PgxRecurringRepository) FindRecurringTemplateByID(ctx context.Context, userID, templateID string) (*domain.RecurringTemplate, error) {
	query := `
		SELECT ` + recurringColumns + `
		FROM recurring_templates
		WHERE user_id = $1 AND template_id = $2;
	`
	m, err := scanRecurringTemplate(r.Pool.QueryRow(ctx, query, userID, templateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, dbError("failed to find recurring template "+templateID, err)
	}
	tmpl, err := mapping.ToDomainRecurringTemplate(m)
	if err != nil {
		return nil, dbError("failed to read recurring template "+templateID, err)
	}
	return &tmpl, nil
}

func (r *PgxRecurringRepository) SaveRecurringTemplate(ctx context.Context, userID string, template domain.RecurringTemplate) error {
	m := mapping.ToModelRecurringTemplate(userID, template)
	query := `
		INSERT INTO recurring_templates (` + recurringColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TemplateID,
		m.UserID,
		m.Description,
		m.Type,
		m.PaymentMethod,
		m.Amount,
		m.Category,
		m.NextDate,
		m.CreatedAt,
		time.Now().UTC(),
	)
	if err != nil {
		return dbError("failed to insert recurring template "+m.TemplateID, err)
	}
	return nil
}

func (r *PgxRecurringRepository) UpdateRecurringTemplate(ctx context.Context, userID string, template domain.RecurringTemplate) error {
	m := mapping.ToModelRecurringTemplate(userID, template)
	query := `
		UPDATE recurring_templates
		SET description = $3,
		    type = $4,
		    payment_method = $5,
		    amount = $6,
		    category = $7,
		    next_date = $8,
		    last_updated_at = $9
		WHERE user_id = $1 AND template_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.TemplateID,
		m.Description,
		m.Type,
		m.PaymentMethod,
		m.Amount,
		m.Category,
		m.NextDate,
		time.Now().UTC(),
	)
	if err != nil {
		return dbError("failed to update recurring template "+m.TemplateID, err)
	}
	return mustAffect(tag, "recurring template "+m.TemplateID)
}

func (r *PgxRecurringRepository) UpdateRecurringNextDate(ctx context.Context, userID, templateID string, nextDate domain.Date) error {
	query := `
		UPDATE recurring_templates
		SET next_date = $3,
		    last_updated_at = $4
		WHERE user_id = $1 AND template_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, templateID, nextDate.Time(), time.Now().UTC())
	if err != nil {
		return dbError("failed to update next date of recurring template "+templateID, err)
	}
	return mustAffect(tag, "recurring template "+templateID)
}

func (r *PgxRecurringRepository) DeleteRecurringTemplate(ctx context.Context, userID, templateID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM recurring_templates WHERE user_id = $1 AND template_id = $2;`, userID, templateID)
	if err != nil {
		return dbError("failed to delete recurring template "+templateID, err)
	}
	return mustAffect(tag, "recurring template "+templateID)
}
