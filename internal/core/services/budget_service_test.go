package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/blance-app/blance_backend/internal/apperrors"
	"github.com/blance-app/blance_backend/internal/core/domain"
	portssvc "github.com/blance-app/blance_backend/internal/core/ports/services"
	"github.com/blance-app/blance_backend/internal/core/services"
	"github.com/blance-app/blance_backend/internal/dto"
)

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgetsByUser(ctx context.Context, userID string) ([]domain.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	args := m.Called(ctx, budgetID)
	return args.Error(0)
}

// --- Mock FxService ---
type MockFxService struct {
	mock.Mock
}

func (m *MockFxService) EnsureDailyRates(ctx context.Context, base string) (*domain.FxRateRow, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FxRateRow), args.Error(1)
}

func (m *MockFxService) ConvertMinor(ctx context.Context, amountMinor int64, from, to string) (int64, string, error) {
	args := m.Called(ctx, amountMinor, from, to)
	return args.Get(0).(int64), args.String(1), args.Error(2)
}

// --- Test Suite ---
type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo *MockBudgetRepository
	mockTxnRepo    *MockTransactionRepository
	mockFx         *MockFxService
	service        portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockFx = new(MockFxService)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockTxnRepo, suite.mockFx)
}

func groceries() *string {
	c := "Groceries"
	return &c
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_Success() {
	ctx := context.Background()
	suite.mockBudgetRepo.On("ListBudgetsByUser", ctx, "user-1").Return([]domain.Budget{}, nil)
	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil)

	budget, err := suite.service.CreateBudget(ctx, "user-1", dto.CreateBudgetRequest{
		Category:     groceries(),
		Amount:       decimal.NewFromInt(300),
		CurrencyCode: "eur",
		Period:       "monthly",
	})

	suite.Require().NoError(err)
	suite.Equal("EUR", budget.CurrencyCode)
	suite.Equal(domain.BudgetPeriodMonthly, budget.Period)
	suite.True(budget.IsActive)
	suite.NotEmpty(budget.BudgetID)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_DuplicateActivePair() {
	ctx := context.Background()
	suite.mockBudgetRepo.On("ListBudgetsByUser", ctx, "user-1").Return([]domain.Budget{
		{BudgetID: "b-1", UserID: "user-1", Category: groceries(), Period: domain.BudgetPeriodMonthly, IsActive: true},
	}, nil)

	_, err := suite.service.CreateBudget(ctx, "user-1", dto.CreateBudgetRequest{
		Category:     groceries(),
		Amount:       decimal.NewFromInt(100),
		CurrencyCode: "EUR",
		Period:       "monthly",
	})

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_InactiveDuplicateDoesNotBlock() {
	ctx := context.Background()
	suite.mockBudgetRepo.On("ListBudgetsByUser", ctx, "user-1").Return([]domain.Budget{
		{BudgetID: "b-1", UserID: "user-1", Category: groceries(), Period: domain.BudgetPeriodMonthly, IsActive: false},
	}, nil)
	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil)

	_, err := suite.service.CreateBudget(ctx, "user-1", dto.CreateBudgetRequest{
		Category:     groceries(),
		Amount:       decimal.NewFromInt(100),
		CurrencyCode: "EUR",
		Period:       "monthly",
	})

	suite.Require().NoError(err)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_NonPositiveAmount() {
	_, err := suite.service.CreateBudget(context.Background(), "user-1", dto.CreateBudgetRequest{
		Amount:       decimal.Zero,
		CurrencyCode: "EUR",
		Period:       "monthly",
	})
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestDeleteBudget_ForeignForbidden() {
	ctx := context.Background()
	suite.mockBudgetRepo.On("FindBudgetByID", ctx, "b-1").Return(&domain.Budget{
		BudgetID: "b-1", UserID: "someone-else",
	}, nil)

	err := suite.service.DeleteBudget(ctx, "user-1", "b-1")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "DeleteBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestGetBudgetProgress_SumsAndConverts() {
	ctx := context.Background()
	budget := domain.Budget{
		BudgetID:     "b-1",
		UserID:       "user-1",
		Category:     groceries(),
		Amount:       decimal.NewFromInt(300),
		CurrencyCode: "EUR",
		Period:       domain.BudgetPeriodMonthly,
		IsActive:     true,
	}
	suite.mockBudgetRepo.On("ListBudgetsByUser", ctx, "user-1").Return([]domain.Budget{budget}, nil)

	txns := []domain.Transaction{
		{TransactionID: "t-1", CurrencyCode: "EUR", ExpenseMinor: 1000},
		{TransactionID: "t-2", CurrencyCode: "USD", ExpenseMinor: 1080},
		{TransactionID: "t-3", CurrencyCode: "EUR", NetIncomeMinor: 5000}, // income is not spend
	}
	suite.mockTxnRepo.On("ListTransactions", ctx, "user-1", mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.From != nil && f.To != nil && f.Category != nil && *f.Category == "Groceries"
	}), 200, "").Return(txns, "", nil)

	suite.mockFx.On("ConvertMinor", ctx, int64(1000), "EUR", "EUR").Return(int64(1000), "", nil)
	suite.mockFx.On("ConvertMinor", ctx, int64(1080), "USD", "EUR").Return(int64(1000), "2026-08-28", nil)

	progress, err := suite.service.GetBudgetProgress(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Require().Len(progress, 1)
	suite.Equal(int64(2000), progress[0].SpentMinor)
	suite.True(progress[0].Spent.Equal(decimal.New(2000, -2)))
	suite.True(progress[0].PeriodStart.Before(time.Now()))
	suite.True(progress[0].PeriodEnd.After(time.Now()))
}

func (suite *BudgetServiceTestSuite) TestGetBudgetProgress_ZeroDecimalCurrency() {
	ctx := context.Background()
	budget := domain.Budget{
		BudgetID:     "b-2",
		UserID:       "user-1",
		Amount:       decimal.NewFromInt(50000),
		CurrencyCode: "JPY",
		Period:       domain.BudgetPeriodMonthly,
		IsActive:     true,
	}
	suite.mockBudgetRepo.On("ListBudgetsByUser", ctx, "user-1").Return([]domain.Budget{budget}, nil)

	txns := []domain.Transaction{
		{TransactionID: "t-1", CurrencyCode: "JPY", ExpenseMinor: 1200},
	}
	suite.mockTxnRepo.On("ListTransactions", ctx, "user-1", mock.AnythingOfType("domain.TransactionFilter"), 200, "").
		Return(txns, "", nil)
	suite.mockFx.On("ConvertMinor", ctx, int64(1200), "JPY", "JPY").Return(int64(1200), "", nil)

	progress, err := suite.service.GetBudgetProgress(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Require().Len(progress, 1)
	// Yen has no minor unit, so 1200 minor units are 1200 yen, not 12.
	suite.Equal(int64(1200), progress[0].SpentMinor)
	suite.True(progress[0].Spent.Equal(decimal.NewFromInt(1200)))
}

func (suite *BudgetServiceTestSuite) TestGetBudgetProgress_SkipsInactiveBudgets() {
	ctx := context.Background()
	suite.mockBudgetRepo.On("ListBudgetsByUser", ctx, "user-1").Return([]domain.Budget{
		{BudgetID: "b-1", UserID: "user-1", Period: domain.BudgetPeriodMonthly, IsActive: false},
	}, nil)

	progress, err := suite.service.GetBudgetProgress(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Empty(progress)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
