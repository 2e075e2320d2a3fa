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

// --- Mock ShareRepository ---
type MockShareRepository struct {
	mock.Mock
}

func (m *MockShareRepository) FindShareByID(ctx context.Context, shareID string) (*domain.DashboardShare, error) {
	args := m.Called(ctx, shareID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardShare), args.Error(1)
}

func (m *MockShareRepository) FindShareByParties(ctx context.Context, ownerID, sharedWithUserID string) (*domain.DashboardShare, error) {
	args := m.Called(ctx, ownerID, sharedWithUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardShare), args.Error(1)
}

func (m *MockShareRepository) ListSharesByOwner(ctx context.Context, ownerID string) ([]domain.DashboardShare, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DashboardShare), args.Error(1)
}

func (m *MockShareRepository) ListSharesBySharedWith(ctx context.Context, sharedWithUserID string) ([]domain.DashboardShare, error) {
	args := m.Called(ctx, sharedWithUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DashboardShare), args.Error(1)
}

func (m *MockShareRepository) SaveShare(ctx context.Context, share domain.DashboardShare) error {
	args := m.Called(ctx, share)
	return args.Error(0)
}

func (m *MockShareRepository) UpdateShareStatus(ctx context.Context, shareID string, status domain.ShareStatus) error {
	args := m.Called(ctx, shareID, status)
	return args.Error(0)
}

func (m *MockShareRepository) UpdateShareRole(ctx context.Context, shareID string, role domain.ShareRole) error {
	args := m.Called(ctx, shareID, role)
	return args.Error(0)
}

func (m *MockShareRepository) DeleteShare(ctx context.Context, shareID string) error {
	args := m.Called(ctx, shareID)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindProfilesByIDs(ctx context.Context, userIDs []string) (map[string]domain.Profile, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Profile), args.Error(1)
}

func (m *MockUserRepository) SearchProfiles(ctx context.Context, query, excludeUserID string, limit int) ([]domain.Profile, error) {
	args := m.Called(ctx, query, excludeUserID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiresAt *time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiresAt)
	return args.Error(0)
}

// --- Test Suite ---
type ShareServiceTestSuite struct {
	suite.Suite
	mockShareRepo *MockShareRepository
	mockUserRepo  *MockUserRepository
	service       portssvc.ShareSvcFacade
}

func (suite *ShareServiceTestSuite) SetupTest() {
	suite.mockShareRepo = new(MockShareRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewShareService(suite.mockShareRepo, suite.mockUserRepo)
}

const (
	ownerID   = "owner-1"
	inviteeID = "invitee-1"
)

func pendingShare() *domain.DashboardShare {
	return &domain.DashboardShare{
		ShareID:          "share-1",
		OwnerID:          ownerID,
		SharedWithUserID: inviteeID,
		Role:             domain.ShareRoleViewer,
		Status:           domain.ShareStatusPending,
		CreatedAt:        time.Now(),
	}
}

// --- CreateInvite ---

func (suite *ShareServiceTestSuite) TestCreateInvite_Success() {
	ctx := context.Background()
	req := dto.CreateInviteRequest{SharedWithUserID: inviteeID, Role: "editor"}

	suite.mockUserRepo.On("FindUserByID", ctx, inviteeID).Return(&domain.User{UserID: inviteeID}, nil).Once()
	suite.mockShareRepo.On("FindShareByParties", ctx, ownerID, inviteeID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockShareRepo.On("SaveShare", ctx, mock.AnythingOfType("domain.DashboardShare")).Return(nil).Once()

	share, err := suite.service.CreateInvite(ctx, ownerID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(share.ShareID)
	suite.Equal(domain.ShareStatusPending, share.Status)
	suite.Equal(domain.ShareRoleEditor, share.Role)
	suite.mockShareRepo.AssertExpectations(suite.T())
}

func (suite *ShareServiceTestSuite) TestCreateInvite_SelfInviteRejected() {
	ctx := context.Background()
	req := dto.CreateInviteRequest{SharedWithUserID: ownerID, Role: "viewer"}

	_, err := suite.service.CreateInvite(ctx, ownerID, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockShareRepo.AssertNotCalled(suite.T(), "SaveShare", mock.Anything, mock.Anything)
}

func (suite *ShareServiceTestSuite) TestCreateInvite_DuplicateActiveRejected() {
	ctx := context.Background()
	req := dto.CreateInviteRequest{SharedWithUserID: inviteeID, Role: "viewer"}

	suite.mockUserRepo.On("FindUserByID", ctx, inviteeID).Return(&domain.User{UserID: inviteeID}, nil).Once()
	suite.mockShareRepo.On("FindShareByParties", ctx, ownerID, inviteeID).Return(pendingShare(), nil).Once()

	_, err := suite.service.CreateInvite(ctx, ownerID, req)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ShareServiceTestSuite) TestCreateInvite_RejectedRowDoesNotBlock() {
	ctx := context.Background()
	req := dto.CreateInviteRequest{SharedWithUserID: inviteeID, Role: "viewer"}

	rejected := pendingShare()
	rejected.Status = domain.ShareStatusRejected

	suite.mockUserRepo.On("FindUserByID", ctx, inviteeID).Return(&domain.User{UserID: inviteeID}, nil).Once()
	suite.mockShareRepo.On("FindShareByParties", ctx, ownerID, inviteeID).Return(rejected, nil).Once()
	suite.mockShareRepo.On("SaveShare", ctx, mock.AnythingOfType("domain.DashboardShare")).Return(nil).Once()

	share, err := suite.service.CreateInvite(ctx, ownerID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.ShareStatusPending, share.Status)
}

func (suite *ShareServiceTestSuite) TestCreateInvite_UnknownUserRejected() {
	ctx := context.Background()
	req := dto.CreateInviteRequest{SharedWithUserID: "ghost", Role: "viewer"}

	suite.mockUserRepo.On("FindUserByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateInvite(ctx, ownerID, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ShareServiceTestSuite) TestCreateInvite_AdminRoleNotAssignable() {
	ctx := context.Background()
	req := dto.CreateInviteRequest{SharedWithUserID: inviteeID, Role: "admin"}

	_, err := suite.service.CreateInvite(ctx, ownerID, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

// --- RespondToInvite ---

func (suite *ShareServiceTestSuite) TestRespondToInvite_Accept() {
	ctx := context.Background()
	suite.mockShareRepo.On("FindShareByID", ctx, "share-1").Return(pendingShare(), nil).Once()
	suite.mockShareRepo.On("UpdateShareStatus", ctx, "share-1", domain.ShareStatusAccepted).Return(nil).Once()

	share, err := suite.service.RespondToInvite(ctx, inviteeID, "share-1", dto.RespondInviteRequest{Decision: "accept"})

	suite.Require().NoError(err)
	suite.Equal(domain.ShareStatusAccepted, share.Status)
}

func (suite *ShareServiceTestSuite) TestRespondToInvite_NaturalKeyFallback() {
	ctx := context.Background()
	suite.mockShareRepo.On("FindShareByParties", ctx, ownerID, inviteeID).Return(pendingShare(), nil).Once()
	suite.mockShareRepo.On("UpdateShareStatus", ctx, "share-1", domain.ShareStatusRejected).Return(nil).Once()

	req := dto.RespondInviteRequest{Decision: "reject", OwnerID: ownerID, SharedWithUserID: inviteeID}
	share, err := suite.service.RespondToInvite(ctx, inviteeID, "", req)

	suite.Require().NoError(err)
	suite.Equal(domain.ShareStatusRejected, share.Status)
	suite.mockShareRepo.AssertNotCalled(suite.T(), "FindShareByID", mock.Anything, mock.Anything)
}

func (suite *ShareServiceTestSuite) TestRespondToInvite_OnlyInviteeMayRespond() {
	ctx := context.Background()
	suite.mockShareRepo.On("FindShareByID", ctx, "share-1").Return(pendingShare(), nil).Once()

	_, err := suite.service.RespondToInvite(ctx, ownerID, "share-1", dto.RespondInviteRequest{Decision: "accept"})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockShareRepo.AssertNotCalled(suite.T(), "UpdateShareStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ShareServiceTestSuite) TestRespondToInvite_AnsweredInviteIsFinal() {
	ctx := context.Background()
	accepted := pendingShare()
	accepted.Status = domain.ShareStatusAccepted
	suite.mockShareRepo.On("FindShareByID", ctx, "share-1").Return(accepted, nil).Once()

	_, err := suite.service.RespondToInvite(ctx, inviteeID, "share-1", dto.RespondInviteRequest{Decision: "reject"})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

// --- UpdateRole / Revoke / Leave ---

func (suite *ShareServiceTestSuite) TestUpdateRole_OwnerOnly() {
	ctx := context.Background()
	suite.mockShareRepo.On("FindShareByID", ctx, "share-1").Return(pendingShare(), nil).Twice()
	suite.mockShareRepo.On("UpdateShareRole", ctx, "share-1", domain.ShareRoleEditor).Return(nil).Once()

	share, err := suite.service.UpdateRole(ctx, ownerID, "share-1", domain.ShareRoleEditor)
	suite.Require().NoError(err)
	suite.Equal(domain.ShareRoleEditor, share.Role)

	_, err = suite.service.UpdateRole(ctx, inviteeID, "share-1", domain.ShareRoleEditor)
	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ShareServiceTestSuite) TestRevokeInvite_OwnerOnly() {
	ctx := context.Background()
	suite.mockShareRepo.On("FindShareByID", ctx, "share-1").Return(pendingShare(), nil).Twice()
	suite.mockShareRepo.On("DeleteShare", ctx, "share-1").Return(nil).Once()

	suite.Require().NoError(suite.service.RevokeInvite(ctx, ownerID, "share-1"))

	err := suite.service.RevokeInvite(ctx, inviteeID, "share-1")
	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ShareServiceTestSuite) TestLeaveShared_InviteeOnly() {
	ctx := context.Background()
	suite.mockShareRepo.On("FindShareByID", ctx, "share-1").Return(pendingShare(), nil).Twice()
	suite.mockShareRepo.On("DeleteShare", ctx, "share-1").Return(nil).Once()

	suite.Require().NoError(suite.service.LeaveShared(ctx, inviteeID, "share-1"))

	err := suite.service.LeaveShared(ctx, ownerID, "share-1")
	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

// --- Listing and enrichment ---

func (suite *ShareServiceTestSuite) TestListInvites_EnrichesCounterparties() {
	ctx := context.Background()
	sent := []domain.DashboardShare{*pendingShare()}
	recv := pendingShare()
	recv.ShareID = "share-2"
	recv.OwnerID = "owner-2"
	recv.SharedWithUserID = ownerID

	suite.mockShareRepo.On("ListSharesByOwner", ctx, ownerID).Return(sent, nil).Once()
	suite.mockShareRepo.On("ListSharesBySharedWith", ctx, ownerID).Return([]domain.DashboardShare{*recv}, nil).Once()
	// One batched lookup covers both directions.
	suite.mockUserRepo.On("FindProfilesByIDs", ctx, []string{inviteeID, "owner-2"}).Return(map[string]domain.Profile{
		inviteeID: {ID: inviteeID, FullName: "Invitee One", Email: "invitee@example.com"},
		"owner-2": {ID: "owner-2", Email: "owner2@example.com"},
	}, nil).Once()

	sentDetails, receivedDetails, err := suite.service.ListInvites(ctx, ownerID)

	suite.Require().NoError(err)
	suite.Require().Len(sentDetails, 1)
	suite.Require().Len(receivedDetails, 1)
	suite.Equal("Invitee One", sentDetails[0].CounterpartyName)
	// No full name: falls back to email.
	suite.Equal("owner2@example.com", receivedDetails[0].CounterpartyName)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *ShareServiceTestSuite) TestListInvites_MissingProfileFallsBackToRawID() {
	ctx := context.Background()
	suite.mockShareRepo.On("ListSharesByOwner", ctx, ownerID).Return([]domain.DashboardShare{*pendingShare()}, nil).Once()
	suite.mockShareRepo.On("ListSharesBySharedWith", ctx, ownerID).Return([]domain.DashboardShare{}, nil).Once()
	suite.mockUserRepo.On("FindProfilesByIDs", ctx, []string{inviteeID}).Return(map[string]domain.Profile{}, nil).Once()

	sentDetails, _, err := suite.service.ListInvites(ctx, ownerID)

	suite.Require().NoError(err)
	suite.Equal(inviteeID, sentDetails[0].CounterpartyName)
}

func (suite *ShareServiceTestSuite) TestListSharedWithMe_AcceptedOnly() {
	ctx := context.Background()
	accepted := pendingShare()
	accepted.Status = domain.ShareStatusAccepted
	rejected := pendingShare()
	rejected.ShareID = "share-3"
	rejected.Status = domain.ShareStatusRejected

	suite.mockShareRepo.On("ListSharesBySharedWith", ctx, inviteeID).
		Return([]domain.DashboardShare{*accepted, *pendingShare(), *rejected}, nil).Once()
	suite.mockUserRepo.On("FindProfilesByIDs", ctx, []string{ownerID}).Return(map[string]domain.Profile{
		ownerID: {ID: ownerID, FullName: "Owner One"},
	}, nil).Once()

	shared, err := suite.service.ListSharedWithMe(ctx, inviteeID)

	suite.Require().NoError(err)
	suite.Require().Len(shared, 1)
	suite.Equal("share-1", shared[0].ShareID)
	suite.Equal("Owner One", shared[0].CounterpartyName)
}

// --- Authorization ---

func (suite *ShareServiceTestSuite) TestAuthorizeDashboardAccess() {
	ctx := context.Background()

	// Owner always passes without a repo lookup.
	suite.Require().NoError(suite.service.AuthorizeDashboardAccess(ctx, ownerID, ownerID, true))

	viewer := pendingShare()
	viewer.Status = domain.ShareStatusAccepted
	suite.mockShareRepo.On("FindShareByParties", ctx, ownerID, inviteeID).Return(viewer, nil).Times(2)

	suite.Require().NoError(suite.service.AuthorizeDashboardAccess(ctx, inviteeID, ownerID, false))
	suite.Require().ErrorIs(suite.service.AuthorizeDashboardAccess(ctx, inviteeID, ownerID, true), apperrors.ErrForbidden)
}

func (suite *ShareServiceTestSuite) TestAuthorizeDashboardAccess_EditorMayWrite() {
	ctx := context.Background()
	editor := pendingShare()
	editor.Status = domain.ShareStatusAccepted
	editor.Role = domain.ShareRoleEditor
	suite.mockShareRepo.On("FindShareByParties", ctx, ownerID, inviteeID).Return(editor, nil).Once()

	suite.Require().NoError(suite.service.AuthorizeDashboardAccess(ctx, inviteeID, ownerID, true))
}

func (suite *ShareServiceTestSuite) TestAuthorizeDashboardAccess_PendingDenied() {
	ctx := context.Background()
	suite.mockShareRepo.On("FindShareByParties", ctx, ownerID, inviteeID).Return(pendingShare(), nil).Once()

	err := suite.service.AuthorizeDashboardAccess(ctx, inviteeID, ownerID, false)
	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ShareServiceTestSuite) TestAuthorizeDashboardAccess_NoShareDenied() {
	ctx := context.Background()
	suite.mockShareRepo.On("FindShareByParties", ctx, ownerID, "stranger").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AuthorizeDashboardAccess(ctx, "stranger", ownerID, false)
	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func TestShareServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShareServiceTestSuite))
}
