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

const debtColumns = `debt_id, user_id, type, person, amount, due_date, description, status, created_at, last_updated_at`

type PgxDebtRepository struct {
	BaseRepository
}

func newPgxDebtRepository(pool *pgxpool.Pool) portsrepo.DebtRepositoryFacade {
	return &PgxDebtRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DebtRepositoryFacade = (*PgxDebtRepository)(nil)

func scanDebt(row pgx.Row) (models.Debt, error) {
	var m models.Debt
	err := row.Scan(
		&m.DebtID,
		&m.UserID,
		&m.Type,
		&m.Person,
		&m.Amount,
		&m.DueDate,
		&m.Description,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

func (r *PgxDebtRepository) ListDebts(ctx context.Context, userID string) ([]domain.Debt, error) {
	query := `
		SELECT ` + debtColumns + `
		FROM debts
		WHERE user_id = $1
		ORDER BY created_at DESC, debt_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, dbError("failed to query debts", err)
	}
	defer rows.Close()

	modelDebts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Debt, error) {
		return scanDebt(row)
	})
	if err != nil {
		return nil, dbError("failed to scan debts", err)
	}

	debts, err := mapping.ToDomainDebtSlice(modelDebts)
	r.warnMalformed(ctx, "debts", err)
	return debts, nil
}

func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, userID, debtID string) (*domain.Debt, error) {
	query := `
		SELECT ` + debtColumns + `
		FROM debts
		WHERE user_id = $1 AND debt_id = $2;
	`
	m, err := scanDebt(r.Pool.QueryRow(ctx, query, userID, debtID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, dbError("failed to find debt "+debtID, err)
	}
	debt, err := mapping.ToDomainDebt(m)
	if err != nil {
		return nil, dbError("failed to read debt "+debtID, err)
	}
	return &debt, nil
}

func (r *PgxDebtRepository) SaveDebt(ctx context.Context, userID string, debt domain.Debt) error {
	m := mapping.ToModelDebt(userID, debt)
	query := `
		INSERT INTO debts (` + debtColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DebtID,
		m.UserID,
		m.Type,
		m.Person,
		m.Amount,
		m.DueDate,
		m.Description,
		m.Status,
		m.CreatedAt,
		time.Now().UTC(),
	)
	if err != nil {
		return dbError("failed to insert debt "+m.DebtID, err)
	}
	return nil
}

func (r *PgxDebtRepository) UpdateDebt(ctx context.Context, userID string, debt domain.Debt) error {
	m := mapping.ToModelDebt(userID, debt)
	query := `
		UPDATE debts
		SET type = $3,
		    person = $4,
		    amount = $5,
		    due_date = $6,
		    description = $7,
		    status = $8,
		    last_updated_at = $9
		WHERE user_id = $1 AND debt_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.DebtID,
		m.Type,
		m.Person,
		m.Amount,
		m.DueDate,
		m.Description,
		m.Status,
		time.Now().UTC(),
	)
	if err != nil {
		return dbError("failed to update debt "+m.DebtID, err)
	}
	return mustAffect(tag, "debt "+m.DebtID)
}

func (r *PgxDebtRepository) DeleteDebt(ctx context.Context, userID, debtID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM debts WHERE user_id = $1 AND debt_id = $2;`, userID, debtID)
	if err != nil {
		return dbError("failed to delete debt "+debtID, err)
	}
	return mustAffect(tag, "debt "+debtID)
}
