package pgsql

import (
	portsrepo "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every PostgreSQL-backed repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		InstallmentRepo: newPgxInstallmentRepository(dbPool),
		RecurringRepo:   newPgxRecurringRepository(dbPool),
		DebtRepo:        newPgxDebtRepository(dbPool),
		SettingsRepo:    newPgxSettingsRepository(dbPool),
	}
}
