package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/blance-app/blance_backend/internal/apperrors"
	"github.com/blance-app/blance_backend/internal/core/domain"
	portssvc "github.com/blance-app/blance_backend/internal/core/ports/services"
	"github.com/blance-app/blance_backend/internal/core/services"
	"github.com/blance-app/blance_backend/internal/dto"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter, limit int, nextToken string) ([]domain.Transaction, string, error) {
	args := m.Called(ctx, userID, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.String(1), args.Error(2)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Mock DashboardAuthorizer ---
type MockDashboardAuthorizer struct {
	mock.Mock
}

func (m *MockDashboardAuthorizer) AuthorizeDashboardAccess(ctx context.Context, actorID, ownerID string, write bool) error {
	args := m.Called(ctx, actorID, ownerID, write)
	return args.Error(0)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo    *MockTransactionRepository
	mockAuthorizer *MockDashboardAuthorizer
	service        portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAuthorizer = new(MockDashboardAuthorizer)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockAuthorizer)
}

func expenseRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Date:          time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Account:       "Checking",
		Category:      "Groceries",
		PaymentMethod: "card",
		CurrencyCode:  "eur",
		ExpenseMinor:  2350,
	}
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_OwnerSuccess() {
	ctx := context.Background()
	suite.mockAuthorizer.On("AuthorizeDashboardAccess", ctx, "u1", "u1", true).Return(nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, "u1", "u1", expenseRequest())

	suite.Require().NoError(err)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal("EUR", txn.CurrencyCode, "currency code is normalized to upper case")
	suite.Equal("u1", txn.CreatedBy)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_EditorWritesOnForeignDashboard() {
	ctx := context.Background()
	suite.mockAuthorizer.On("AuthorizeDashboardAccess", ctx, "editor", "owner", true).Return(nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, "editor", "owner", expenseRequest())

	suite.Require().NoError(err)
	suite.Equal("owner", txn.UserID, "the row belongs to the dashboard owner")
	suite.Equal("editor", txn.CreatedBy)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ViewerDenied() {
	ctx := context.Background()
	suite.mockAuthorizer.On("AuthorizeDashboardAccess", ctx, "viewer", "owner", true).
		Return(apperrors.ErrForbidden).Once()

	_, err := suite.service.CreateTransaction(ctx, "viewer", "owner", expenseRequest())

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_AmountValidation() {
	ctx := context.Background()
	suite.mockAuthorizer.On("AuthorizeDashboardAccess", ctx, "u1", "u1", true).Return(nil)

	both := expenseRequest()
	both.GrossIncomeMinor = 100
	both.NetIncomeMinor = 80
	_, err := suite.service.CreateTransaction(ctx, "u1", "u1", both)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)

	neither := expenseRequest()
	neither.ExpenseMinor = 0
	_, err = suite.service.CreateTransaction(ctx, "u1", "u1", neither)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)

	netOverGross := expenseRequest()
	netOverGross.ExpenseMinor = 0
	netOverGross.GrossIncomeMinor = 100
	netOverGross.NetIncomeMinor = 120
	_, err = suite.service.CreateTransaction(ctx, "u1", "u1", netOverGross)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestGetTransaction_ReadGatedByOwner() {
	ctx := context.Background()
	txn := &domain.Transaction{TransactionID: "t1", UserID: "owner"}
	suite.mockTxnRepo.On("FindTransactionByID", ctx, "t1").Return(txn, nil).Once()
	suite.mockAuthorizer.On("AuthorizeDashboardAccess", ctx, "viewer", "owner", false).Return(nil).Once()

	got, err := suite.service.GetTransaction(ctx, "viewer", "t1")

	suite.Require().NoError(err)
	suite.Equal("t1", got.TransactionID)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_PassesFilterAndCursor() {
	ctx := context.Background()
	account := "Checking"
	req := dto.ListTransactionsRequest{Account: &account, Limit: 10, NextToken: "tok"}

	suite.mockAuthorizer.On("AuthorizeDashboardAccess", ctx, "u1", "u1", false).Return(nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx, "u1",
		domain.TransactionFilter{Account: &account}, 10, "tok").
		Return([]domain.Transaction{{TransactionID: "t1"}}, "tok2", nil).Once()

	txns, next, err := suite.service.ListTransactions(ctx, "u1", "u1", req)

	suite.Require().NoError(err)
	suite.Len(txns, 1)
	suite.Equal("tok2", next)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_ReplacesFields() {
	ctx := context.Background()
	existing := &domain.Transaction{
		TransactionID: "t1",
		UserID:        "owner",
		AuditFields:   domain.AuditFields{CreatedBy: "owner"},
	}
	suite.mockTxnRepo.On("FindTransactionByID", ctx, "t1").Return(existing, nil).Once()
	suite.mockAuthorizer.On("AuthorizeDashboardAccess", ctx, "editor", "owner", true).Return(nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.ExpenseMinor == 2350 && t.LastUpdatedBy == "editor" && t.CreatedBy == "owner"
	})).Return(nil).Once()

	txn, err := suite.service.UpdateTransaction(ctx, "editor", "t1", expenseRequest())

	suite.Require().NoError(err)
	suite.Equal("editor", txn.LastUpdatedBy)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_WriteGated() {
	ctx := context.Background()
	txn := &domain.Transaction{TransactionID: "t1", UserID: "owner"}
	suite.mockTxnRepo.On("FindTransactionByID", ctx, "t1").Return(txn, nil).Twice()
	suite.mockAuthorizer.On("AuthorizeDashboardAccess", ctx, "owner", "owner", true).Return(nil).Once()
	suite.mockAuthorizer.On("AuthorizeDashboardAccess", ctx, "viewer", "owner", true).Return(apperrors.ErrForbidden).Once()
	suite.mockTxnRepo.On("DeleteTransaction", ctx, "t1").Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteTransaction(ctx, "owner", "t1"))
	suite.Require().ErrorIs(suite.service.DeleteTransaction(ctx, "viewer", "t1"), apperrors.ErrForbidden)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
