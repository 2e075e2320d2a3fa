package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/blance-app/blance_backend/internal/apperrors"
	"github.com/blance-app/blance_backend/internal/core/domain"
	portssvc "github.com/blance-app/blance_backend/internal/core/ports/services"
	"github.com/blance-app/blance_backend/internal/core/services"
	"github.com/blance-app/blance_backend/internal/dto"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.UserAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserAccount), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByUser(ctx context.Context, userID string, activeOnly bool) ([]domain.UserAccount, error) {
	args := m.Called(ctx, userID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserAccount), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.UserAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.UserAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// --- Test Suite ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	suite.mockRepo.On("ListAccountsByUser", ctx, "u1", false).Return([]domain.UserAccount{}, nil).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.UserAccount")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, "u1", dto.CreateAccountRequest{AccountName: "  Checking "})

	suite.Require().NoError(err)
	suite.Equal("Checking", account.AccountName)
	suite.True(account.IsActive)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateNameCaseInsensitive() {
	ctx := context.Background()
	suite.mockRepo.On("ListAccountsByUser", ctx, "u1", false).
		Return([]domain.UserAccount{{AccountName: "checking"}}, nil).Once()

	_, err := suite.service.CreateAccount(ctx, "u1", dto.CreateAccountRequest{AccountName: "Checking"})

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_DeactivateInsteadOfDelete() {
	ctx := context.Background()
	inactive := false
	existing := &domain.UserAccount{AccountID: "a1", UserID: "u1", AccountName: "Checking", IsActive: true}
	suite.mockRepo.On("FindAccountByID", ctx, "a1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.UserAccount) bool {
		return !a.IsActive && a.AccountName == "Checking"
	})).Return(nil).Once()

	account, err := suite.service.UpdateAccount(ctx, "u1", "a1", dto.UpdateAccountRequest{AccountName: "Checking", IsActive: &inactive})

	suite.Require().NoError(err)
	suite.False(account.IsActive)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_ForeignAccountDenied() {
	ctx := context.Background()
	existing := &domain.UserAccount{AccountID: "a1", UserID: "someone-else"}
	suite.mockRepo.On("FindAccountByID", ctx, "a1").Return(existing, nil).Once()

	_, err := suite.service.UpdateAccount(ctx, "u1", "a1", dto.UpdateAccountRequest{AccountName: "X"})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
