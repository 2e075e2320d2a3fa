package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blance-app/blance_backend/internal/apperrors"
	"github.com/blance-app/blance_backend/internal/core/domain"
	portsrepo "github.com/blance-app/blance_backend/internal/core/ports/repositories"
	"github.com/blance-app/blance_backend/internal/dto"
)

// shareService implements the dashboard share and invite lifecycle.
type shareService struct {
	BaseService
	shareRepo portsrepo.ShareRepositoryFacade
	userRepo  portsrepo.UserRepositoryFacade
}

// NewShareService creates a new share service.
func NewShareService(shareRepo portsrepo.ShareRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) *shareService {
	return &shareService{
		shareRepo: shareRepo,
		userRepo:  userRepo,
	}
}

// CreateInvite inserts a pending share from ownerID to the requested user.
// Inviting yourself is rejected, as is a second invite while a pending or
// accepted row already occupies the pair. A rejected row does not block.
func (s *shareService) CreateInvite(ctx context.Context, ownerID string, req dto.CreateInviteRequest) (*domain.DashboardShare, error) {
	role := domain.ShareRole(req.Role)
	if !role.IsAssignable() {
		return nil, fmt.Errorf("%w: role must be viewer or editor", apperrors.ErrValidation)
	}
	if req.SharedWithUserID == ownerID {
		return nil, fmt.Errorf("%w: cannot share a dashboard with yourself", apperrors.ErrValidation)
	}

	if _, err := s.userRepo.FindUserByID(ctx, req.SharedWithUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invited user not found", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("validating invited user: %w", err)
	}

	existing, err := s.shareRepo.FindShareByParties(ctx, ownerID, req.SharedWithUserID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("checking for existing share: %w", err)
	}
	if existing != nil && existing.Status.IsActive() {
		return nil, fmt.Errorf("%w: an invite for this user already exists", apperrors.ErrDuplicate)
	}

	share := domain.DashboardShare{
		ShareID:          uuid.NewString(),
		OwnerID:          ownerID,
		SharedWithUserID: req.SharedWithUserID,
		Role:             role,
		Status:           domain.ShareStatusPending,
		CreatedAt:        time.Now(),
	}
	if err := s.shareRepo.SaveShare(ctx, share); err != nil {
		return nil, fmt.Errorf("saving share: %w", err)
	}

	s.LogInfo(ctx, "dashboard invite created", "share_id", share.ShareID, "owner_id", ownerID, "role", req.Role)
	return &share, nil
}

// RespondToInvite accepts or rejects a pending invite. The invite is
// addressed by shareID when given, otherwise by the (owner, invitee) pair in
// the request. Only the invitee may respond, and only while pending.
func (s *shareService) RespondToInvite(ctx context.Context, actorID, shareID string, req dto.RespondInviteRequest) (*domain.DashboardShare, error) {
	var target domain.ShareStatus
	switch req.Decision {
	case "accept":
		target = domain.ShareStatusAccepted
	case "reject":
		target = domain.ShareStatusRejected
	default:
		return nil, fmt.Errorf("%w: decision must be accept or reject", apperrors.ErrValidation)
	}

	share, err := s.resolveShare(ctx, shareID, req.OwnerID, req.SharedWithUserID)
	if err != nil {
		return nil, err
	}

	if share.SharedWithUserID != actorID {
		return nil, fmt.Errorf("%w: only the invited user can respond to an invite", apperrors.ErrForbidden)
	}
	if !share.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: invite is %s and can no longer be answered", apperrors.ErrValidation, share.Status)
	}

	if err := s.shareRepo.UpdateShareStatus(ctx, share.ShareID, target); err != nil {
		return nil, fmt.Errorf("updating share status: %w", err)
	}

	share.Status = target
	s.LogInfo(ctx, "invite answered", "share_id", share.ShareID, "status", string(target))
	return share, nil
}

// resolveShare loads a share by synthetic id or, when shareID is empty, by
// the natural (owner, invitee) key.
func (s *shareService) resolveShare(ctx context.Context, shareID, ownerID, sharedWithUserID string) (*domain.DashboardShare, error) {
	if shareID != "" {
		share, err := s.shareRepo.FindShareByID(ctx, shareID)
		if err != nil {
			return nil, fmt.Errorf("finding share %s: %w", shareID, err)
		}
		return share, nil
	}
	if ownerID == "" || sharedWithUserID == "" {
		return nil, fmt.Errorf("%w: share id or both owner and invited user ids are required", apperrors.ErrValidation)
	}
	share, err := s.shareRepo.FindShareByParties(ctx, ownerID, sharedWithUserID)
	if err != nil {
		return nil, fmt.Errorf("finding share for owner %s: %w", ownerID, err)
	}
	return share, nil
}

// UpdateRole changes the granted role. Only the owner may change it; the
// invite's status does not matter.
func (s *shareService) UpdateRole(ctx context.Context, actorID, shareID string, role domain.ShareRole) (*domain.DashboardShare, error) {
	if !role.IsAssignable() {
		return nil, fmt.Errorf("%w: role must be viewer or editor", apperrors.ErrValidation)
	}

	share, err := s.shareRepo.FindShareByID(ctx, shareID)
	if err != nil {
		return nil, fmt.Errorf("finding share %s: %w", shareID, err)
	}
	if share.OwnerID != actorID {
		return nil, fmt.Errorf("%w: only the owner can change a share's role", apperrors.ErrForbidden)
	}

	if err := s.shareRepo.UpdateShareRole(ctx, shareID, role); err != nil {
		return nil, fmt.Errorf("updating share role: %w", err)
	}

	share.Role = role
	return share, nil
}

// RevokeInvite hard-deletes the share. Owner only, any status.
func (s *shareService) RevokeInvite(ctx context.Context, actorID, shareID string) error {
	share, err := s.shareRepo.FindShareByID(ctx, shareID)
	if err != nil {
		return fmt.Errorf("finding share %s: %w", shareID, err)
	}
	if share.OwnerID != actorID {
		return fmt.Errorf("%w: only the owner can revoke a share", apperrors.ErrForbidden)
	}

	if err := s.shareRepo.DeleteShare(ctx, shareID); err != nil {
		return fmt.Errorf("deleting share: %w", err)
	}
	s.LogInfo(ctx, "share revoked", "share_id", shareID)
	return nil
}

// LeaveShared hard-deletes the share from the invitee side.
func (s *shareService) LeaveShared(ctx context.Context, actorID, shareID string) error {
	share, err := s.shareRepo.FindShareByID(ctx, shareID)
	if err != nil {
		return fmt.Errorf("finding share %s: %w", shareID, err)
	}
	if share.SharedWithUserID != actorID {
		return fmt.Errorf("%w: only the invited user can leave a shared dashboard", apperrors.ErrForbidden)
	}

	if err := s.shareRepo.DeleteShare(ctx, shareID); err != nil {
		return fmt.Errorf("deleting share: %w", err)
	}
	s.LogInfo(ctx, "left shared dashboard", "share_id", shareID)
	return nil
}

// ListInvites returns the user's sent and received invites enriched with
// counterparty display names via one batched profile lookup.
func (s *shareService) ListInvites(ctx context.Context, userID string) ([]domain.ShareDetails, []domain.ShareDetails, error) {
	sent, err := s.shareRepo.ListSharesByOwner(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("listing sent invites: %w", err)
	}
	received, err := s.shareRepo.ListSharesBySharedWith(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("listing received invites: %w", err)
	}

	ids := make([]string, 0, len(sent)+len(received))
	for _, sh := range sent {
		ids = append(ids, sh.SharedWithUserID)
	}
	for _, sh := range received {
		ids = append(ids, sh.OwnerID)
	}
	profiles, err := s.lookupProfiles(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	sentDetails := make([]domain.ShareDetails, len(sent))
	for i, sh := range sent {
		sentDetails[i] = enrichShare(sh, profiles, sh.SharedWithUserID)
	}
	receivedDetails := make([]domain.ShareDetails, len(received))
	for i, sh := range received {
		receivedDetails[i] = enrichShare(sh, profiles, sh.OwnerID)
	}
	return sentDetails, receivedDetails, nil
}

// ListSharedWithMe returns only accepted received shares, enriched with the
// owner's display name.
func (s *shareService) ListSharedWithMe(ctx context.Context, userID string) ([]domain.ShareDetails, error) {
	received, err := s.shareRepo.ListSharesBySharedWith(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing received shares: %w", err)
	}

	accepted := received[:0:0]
	ids := make([]string, 0, len(received))
	for _, sh := range received {
		if sh.Status == domain.ShareStatusAccepted {
			accepted = append(accepted, sh)
			ids = append(ids, sh.OwnerID)
		}
	}

	profiles, err := s.lookupProfiles(ctx, ids)
	if err != nil {
		return nil, err
	}

	details := make([]domain.ShareDetails, len(accepted))
	for i, sh := range accepted {
		details[i] = enrichShare(sh, profiles, sh.OwnerID)
	}
	return details, nil
}

// lookupProfiles batch-resolves profiles for distinct ids. A lookup failure
// degrades to raw ids instead of failing the listing.
func (s *shareService) lookupProfiles(ctx context.Context, ids []string) (map[string]domain.Profile, error) {
	if len(ids) == 0 {
		return map[string]domain.Profile{}, nil
	}
	seen := make(map[string]struct{}, len(ids))
	distinct := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	profiles, err := s.userRepo.FindProfilesByIDs(ctx, distinct)
	if err != nil {
		s.LogWarn(ctx, "profile lookup failed, falling back to raw ids", "error", err.Error())
		return map[string]domain.Profile{}, nil
	}
	return profiles, nil
}

// enrichShare attaches the counterparty display name, falling back to the
// raw id when no profile is known.
func enrichShare(sh domain.DashboardShare, profiles map[string]domain.Profile, counterpartyID string) domain.ShareDetails {
	name := counterpartyID
	if p, ok := profiles[counterpartyID]; ok {
		name = p.DisplayName()
	}
	return domain.ShareDetails{DashboardShare: sh, CounterpartyName: name}
}

// AuthorizeDashboardAccess grants access when the actor is the owner, or
// holds an accepted share with a sufficient role. Write access requires a
// role that allows writes.
func (s *shareService) AuthorizeDashboardAccess(ctx context.Context, actorID, ownerID string, write bool) error {
	if actorID == ownerID {
		return nil
	}

	share, err := s.shareRepo.FindShareByParties(ctx, ownerID, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: no access to this dashboard", apperrors.ErrForbidden)
		}
		return fmt.Errorf("checking dashboard access: %w", err)
	}
	if share.Status != domain.ShareStatusAccepted {
		return fmt.Errorf("%w: no access to this dashboard", apperrors.ErrForbidden)
	}
	if write && !share.Role.AllowsWrite() {
		return fmt.Errorf("%w: viewer access is read only", apperrors.ErrForbidden)
	}
	return nil
}
