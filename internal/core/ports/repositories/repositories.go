package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	FxRateRepo      FxRateRepositoryFacade
	ShareRepo       ShareRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	AccountRepo     AccountRepositoryFacade
	CategoryRepo    CategoryRepositoryFacade
	BudgetRepo      BudgetRepositoryFacade
	RecurringRepo   RecurringRepositoryFacade
	UserRepo        UserRepositoryFacade
}
