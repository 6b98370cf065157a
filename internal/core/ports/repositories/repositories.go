package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Both the PostgreSQL and the bbolt backends fill it in.
type RepositoryProvider struct {
	TransactionRepo TransactionRepositoryFacade
	InstallmentRepo InstallmentRepositoryFacade
	RecurringRepo   RecurringRepositoryFacade
	DebtRepo        DebtRepositoryFacade
	SettingsRepo    SettingsRepositoryFacade
}
