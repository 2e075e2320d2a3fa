package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/blance-app/blance_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider builds all pgx-backed repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		FxRateRepo:      newPgxFxRateRepository(dbPool),
		ShareRepo:       newPgxShareRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		AccountRepo:     newPgxAccountRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		BudgetRepo:      newPgxBudgetRepository(dbPool),
		RecurringRepo:   newPgxRecurringRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}

// Compile-time checks that each repository satisfies its port facade.
var (
	_ portsrepo.FxRateRepositoryFacade      = (*PgxFxRateRepository)(nil)
	_ portsrepo.ShareRepositoryFacade       = (*PgxShareRepository)(nil)
	_ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)
	_ portsrepo.AccountRepositoryFacade     = (*PgxAccountRepository)(nil)
	_ portsrepo.CategoryRepositoryFacade    = (*PgxCategoryRepository)(nil)
	_ portsrepo.BudgetRepositoryFacade      = (*PgxBudgetRepository)(nil)
	_ portsrepo.RecurringRepositoryFacade   = (*PgxRecurringRepository)(nil)
	_ portsrepo.UserRepositoryFacade        = (*PgxUserRepository)(nil)
	_ portsrepo.TransactionManager          = (*BaseRepository)(nil)
)
