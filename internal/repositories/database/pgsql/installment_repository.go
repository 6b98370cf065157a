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

const installmentColumns = `installment_id, user_id, description, total_amount, installment_count, monthly_amount,
		start_date, paid_count, payment_method, created_at, last_updated_at`

type PgxInstallmentRepository struct {
	BaseRepository
}

func newPgxInstallmentRepository(pool *pgxpool.Pool) portsrepo.InstallmentRepositoryFacade {
	return &PgxInstallmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.InstallmentRepositoryFacade = (*PgxInstallmentRepository)(nil)

func scanInstallment(row pgx.Row) (models.Installment, error) {
	var m models.Installment
	err := row.Scan(
		&m.InstallmentID,
		&m.UserID,
		&m.Description,
		&m.TotalAmount,
		&m.InstallmentCount,
		&m.MonthlyAmount,
		&m.StartDate,
		&m.PaidCount,
		&m.PaymentMethod,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxInstallmentRepository) ListInstallments(ctx context.Context, userID string) ([]domain.Installment, error) {
	query := `
		SELECT ` + installmentColumns + `
		FROM installments
		WHERE user_id = $1
		ORDER BY created_at DESC, installment_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, dbError("failed to query installments", err)
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Installment, error) {
		return scanInstallment(row)
	})
	if err != nil {
		return nil, dbError("failed to scan installments", err)
	}

	items, err := mapping.ToDomainInstallmentSlice(modelItems)
	r.warnMalformed(ctx, "installments", err)
	return items, nil
}

func (r *PgxInstallmentRepository) FindInstallmentByID(ctx context.Context, userID, installmentID string) (*domain.Installment, error) {
	query := `
		SELECT ` + installmentColumns + `
		FROM installments
		WHERE user_id = $1 AND installment_id = $2;
	`
	m, err := scanInstallment(r.Pool.QueryRow(ctx, query, userID, installmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, dbError("failed to find installment "+installmentID, err)
	}
	inst, err := mapping.ToDomainInstallment(m)
	if err != nil {
		return nil, dbError("failed to read installment "+installmentID, err)
	}
	return &inst, nil
}

func (r *PgxInstallmentRepository) SaveInstallment(ctx context.Context, userID string, installment domain.Installment) error {
	m := mapping.ToModelInstallment(userID, installment)
	query := `
		INSERT INTO installments (` + installmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.InstallmentID,
		m.UserID,
		m.Description,
		m.TotalAmount,
		m.InstallmentCount,
		m.MonthlyAmount,
		m.StartDate,
		m.PaidCount,
		m.PaymentMethod,
		m.CreatedAt,
		time.Now().UTC(),
	)
	if err != nil {
		return dbError("failed to insert installment "+m.InstallmentID, err)
	}
	return nil
}

// UpdateInstallmentPaidCount never lowers the stored paid count.
func (r *PgxInstallmentRepository) UpdateInstallmentPaidCount(ctx context.Context, userID, installmentID string, paidCount int) error {
	query := `
		UPDATE installments
		SET paid_count = GREATEST(paid_count, LEAST($3, installment_count)),
		    last_updated_at = $4
		WHERE user_id = $1 AND installment_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, installmentID, paidCount, time.Now().UTC())
	if err != nil {
		return dbError("failed to update paid count of installment "+installmentID, err)
	}
	return mustAffect(tag, "installment "+installmentID)
}

func (r *PgxInstallmentRepository) DeleteInstallment(ctx context.Context, userID, installmentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM installments WHERE user_id = $1 AND installment_id = $2;`, userID, installmentID)
	if err != nil {
		return dbError("failed to delete installment "+installmentID, err)
	}
	return mustAffect(tag, "installment "+installmentID)
}
