package services

// ServiceContainer holds all service facades and is passed to the handler
// registration layer.
type ServiceContainer struct {
	FxService          FxSvcFacade
	ShareService       ShareSvcFacade
	TransactionService TransactionSvcFacade
	AccountService     AccountSvcFacade
	CategoryService    CategorySvcFacade
	BudgetService      BudgetSvcFacade
	RecurringService   RecurringSvcFacade
	RecurringProcessor RecurringProcessorSvc
	SummaryService     SummarySvcFacade
	UserService        UserSvcFacade
	AuthService        AuthSvcFacade
	TokenService       TokenSvcFacade
}
