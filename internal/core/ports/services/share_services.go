package services

import (
	"context"

	"github.com/blance-app/blance_backend/internal/core/domain"
	"github.com/blance-app/blance_backend/internal/dto"
)

// ShareReaderSvc defines read operations over dashboard shares.
type ShareReaderSvc interface {
	// ListInvites returns the user's sent and received invites across all
	// statuses, each enriched with the counterparty's display name.
	ListInvites(ctx context.Context, userID string) (sent, received []domain.ShareDetails, err error)

	// ListSharedWithMe returns only accepted received shares; this drives
	// the "shared with me" navigation list.
	ListSharedWithMe(ctx context.Context, userID string) ([]domain.ShareDetails, error)
}

// ShareWriterSvc defines the invite lifecycle operations.
type ShareWriterSvc interface {
	// CreateInvite inserts a pending share from the owner to the invitee.
	CreateInvite(ctx context.Context, ownerID string, req dto.CreateInviteRequest) (*domain.DashboardShare, error)

	// RespondToInvite accepts or rejects a pending invite. Only the invitee
	// may respond. When shareID is empty the natural key carried in the
	// request addresses the invite instead.
	RespondToInvite(ctx context.Context, actorID, shareID string, req dto.RespondInviteRequest) (*domain.DashboardShare, error)

	// UpdateRole changes the granted role. Owner only, any status.
	UpdateRole(ctx context.Context, actorID, shareID string, role domain.ShareRole) (*domain.DashboardShare, error)

	// RevokeInvite hard-deletes the share. Owner only.
	RevokeInvite(ctx context.Context, actorID, shareID string) error

	// LeaveShared hard-deletes the share. Invitee only.
	LeaveShared(ctx context.Context, actorID, shareID string) error
}

// DashboardAuthorizerSvc answers whether an actor may read or write a given
// user's dashboard, based on ownership or an accepted share.
type DashboardAuthorizerSvc interface {
	// AuthorizeDashboardAccess returns nil when actorID may access
	// ownerID's dashboard; write access additionally requires an editor
	// role. Returns apperrors.ErrForbidden otherwise.
	AuthorizeDashboardAccess(ctx context.Context, actorID, ownerID string, write bool) error
}

// ShareSvcFacade combines all dashboard share service interfaces.
type ShareSvcFacade interface {
	ShareReaderSvc
	ShareWriterSvc
	DashboardAuthorizerSvc
}
