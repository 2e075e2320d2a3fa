package services

import (
	"github.com/blance-app/blance_backend/internal/clients/frankfurter"
	portsrepo "github.com/blance-app/blance_backend/internal/core/ports/repositories"
	portssvc "github.com/blance-app/blance_backend/internal/core/ports/services"
	"github.com/blance-app/blance_backend/internal/platform/cache"
	"github.com/blance-app/blance_backend/internal/platform/config"
)

// NewServiceContainer creates the service container with properly wired
// dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	fxClient := frankfurter.NewClient(frankfurter.WithBaseURL(cfg.FxProviderBaseURL))
	ratesCache := cache.NewRatesCache()
	container.FxService = NewFxService(repos.FxRateRepo, fxClient, ratesCache)

	// The share service doubles as the dashboard authorizer for everything
	// that reads or writes another user's data.
	shareSvc := NewShareService(repos.ShareRepo, repos.UserRepo)
	container.ShareService = shareSvc

	container.TransactionService = NewTransactionService(repos.TransactionRepo, shareSvc)
	container.AccountService = NewAccountService(repos.AccountRepo)
	container.CategoryService = NewCategoryService(repos.CategoryRepo)
	container.BudgetService = NewBudgetService(repos.BudgetRepo, repos.TransactionRepo, container.FxService)
	recurringSvc := NewRecurringService(repos.RecurringRepo)
	container.RecurringService = recurringSvc
	container.RecurringProcessor = recurringSvc
	container.SummaryService = NewSummaryService(repos.TransactionRepo, container.FxService, shareSvc)

	container.UserService = NewUserService(repos.UserRepo)
	container.TokenService = NewTokenService(cfg)
	googleOAuth := NewGoogleOAuthService(cfg)
	container.AuthService = NewAuthService(container.UserService, container.TokenService, googleOAuth)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.FxSvcFacade          = (*fxService)(nil)
	_ portssvc.ShareSvcFacade       = (*shareService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.AccountSvcFacade     = (*accountService)(nil)
	_ portssvc.CategorySvcFacade    = (*categoryService)(nil)
	_ portssvc.BudgetSvcFacade      = (*budgetService)(nil)
	_ portssvc.RecurringSvcFacade   = (*recurringService)(nil)
	_ portssvc.RecurringProcessorSvc = (*recurringService)(nil)
	_ portssvc.SummarySvcFacade     = (*summaryService)(nil)
	_ portssvc.UserSvcFacade        = (*userService)(nil)
	_ portssvc.AuthSvcFacade        = (*authService)(nil)
)
