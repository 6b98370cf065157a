package services

import (
	portsrepo "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/repositories"
	portssvc "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/services"
)

// NewServiceContainer wires every service over one repository provider.
// The options are applied to each service.
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	installment := NewInstallmentService(repos.InstallmentRepo, repos.TransactionRepo, options...)
	recurring := NewRecurringService(repos.RecurringRepo, repos.TransactionRepo, options...)

	return &portssvc.ServiceContainer{
		Ledger:      NewLedgerService(repos.TransactionRepo, repos.SettingsRepo, options...),
		Installment: installment,
		Recurring:   recurring,
		Category:    NewCategoryService(repos.SettingsRepo, options...),
		Balance:     NewBalanceService(repos.SettingsRepo, repos.TransactionRepo, options...),
		Debt:        NewDebtService(repos.DebtRepo, options...),
		Session:     NewSessionService(repos, installment, recurring, options...),
	}
}
