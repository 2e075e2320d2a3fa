package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blance-app/blance_backend/internal/apperrors"
	"github.com/blance-app/blance_backend/internal/core/domain"
	portsrepo "github.com/blance-app/blance_backend/internal/core/ports/repositories"
	portssvc "github.com/blance-app/blance_backend/internal/core/ports/services"
	"github.com/blance-app/blance_backend/internal/dto"
)

// progressPageSize bounds each transaction page pulled while summing a
// budget window.
const progressPageSize = 200

// budgetService manages budgets and computes spend against them. Spend is
// summed from the owner's expense transactions in the budget's current
// period window and converted into the budget's currency.
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
	txnRepo    portsrepo.TransactionRepositoryFacade
	fxService  portssvc.FxSvcFacade
	now        func() time.Time
}

// NewBudgetService creates a new budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, txnRepo portsrepo.TransactionRepositoryFacade, fxService portssvc.FxSvcFacade) *budgetService {
	return &budgetService{
		budgetRepo: budgetRepo,
		txnRepo:    txnRepo,
		fxService:  fxService,
		now:        time.Now,
	}
}

// CreateBudget sets an overall or per-category budget. One active budget per
// (category, period) pair is allowed.
func (s *budgetService) CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	period := domain.BudgetPeriod(req.Period)
	if !period.IsValid() {
		return nil, fmt.Errorf("%w: period must be weekly, monthly or yearly", apperrors.ErrValidation)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: budget amount must be positive", apperrors.ErrValidation)
	}

	existing, err := s.budgetRepo.ListBudgetsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	for _, b := range existing {
		if b.IsActive && b.Period == period && sameCategory(b.Category, req.Category) {
			return nil, fmt.Errorf("%w: an active budget for this category and period already exists", apperrors.ErrDuplicate)
		}
	}

	now := s.now()
	budget := domain.Budget{
		BudgetID:     uuid.NewString(),
		UserID:       userID,
		Category:     req.Category,
		Amount:       req.Amount,
		CurrencyCode: strings.ToUpper(req.CurrencyCode),
		Period:       period,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		return nil, fmt.Errorf("saving budget: %w", err)
	}
	return &budget, nil
}

func sameCategory(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return strings.EqualFold(*a, *b)
}

// ListBudgets returns all of the user's budgets.
func (s *budgetService) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgetsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	return budgets, nil
}

// DeleteBudget removes the budget. Budgets reference no other rows, so a
// hard delete is safe.
func (s *budgetService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return fmt.Errorf("finding budget %s: %w", budgetID, err)
	}
	if budget.UserID != userID {
		return fmt.Errorf("%w: budget belongs to another user", apperrors.ErrForbidden)
	}
	if err := s.budgetRepo.DeleteBudget(ctx, budgetID); err != nil {
		return fmt.Errorf("deleting budget: %w", err)
	}
	return nil
}

// GetBudgetProgress reports current-period spend for every active budget.
// Expenses recorded in other currencies are converted into the budget's
// currency via the daily rate table.
func (s *budgetService) GetBudgetProgress(ctx context.Context, userID string) ([]domain.BudgetProgress, error) {
	budgets, err := s.budgetRepo.ListBudgetsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}

	now := s.now()
	progress := make([]domain.BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		if !b.IsActive {
			continue
		}
		start, end := b.Period.Window(now)
		spentMinor, err := s.sumExpenses(ctx, userID, b, start, end)
		if err != nil {
			return nil, err
		}
		progress = append(progress, domain.BudgetProgress{
			Budget:      b,
			PeriodStart: start,
			PeriodEnd:   end,
			SpentMinor:  spentMinor,
			Spent:       domain.MinorToDecimal(spentMinor, b.CurrencyCode),
		})
	}
	return progress, nil
}

// sumExpenses totals expense amounts in [start, end) for the budget's scope,
// converted to the budget's currency.
func (s *budgetService) sumExpenses(ctx context.Context, userID string, b domain.Budget, start, end time.Time) (int64, error) {
	// The repository filter is inclusive of To, so step back to the last
	// instant inside the window.
	to := end.Add(-time.Nanosecond)
	filter := domain.TransactionFilter{
		From:     &start,
		To:       &to,
		Category: b.Category,
	}

	var total int64
	token := ""
	for {
		txns, next, err := s.txnRepo.ListTransactions(ctx, userID, filter, progressPageSize, token)
		if err != nil {
			return 0, fmt.Errorf("listing transactions for budget %s: %w", b.BudgetID, err)
		}
		for _, t := range txns {
			if t.ExpenseMinor == 0 {
				continue
			}
			converted, _, err := s.fxService.ConvertMinor(ctx, t.ExpenseMinor, t.CurrencyCode, b.CurrencyCode)
			if err != nil {
				return 0, fmt.Errorf("converting expense for budget %s: %w", b.BudgetID, err)
			}
			total += converted
		}
		if next == "" {
			return total, nil
		}
		token = next
	}
}
