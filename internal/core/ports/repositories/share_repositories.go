package repositories

import (
	"context"

	"github.com/blance-app/blance_backend/internal/core/domain"
)

// ShareReader defines read operations for dashboard share rows.
type ShareReader interface {
	// FindShareByID retrieves a share by its synthetic id.
	FindShareByID(ctx context.Context, shareID string) (*domain.DashboardShare, error)

	// FindShareByParties retrieves a share by its natural key. Used as the
	// fallback addressing path when the synthetic id is unavailable, and
	// for duplicate-invite detection.
	FindShareByParties(ctx context.Context, ownerID, sharedWithUserID string) (*domain.DashboardShare, error)

	// ListSharesByOwner returns all shares the user has sent, across all statuses.
	ListSharesByOwner(ctx context.Context, ownerID string) ([]domain.DashboardShare, error)

	// ListSharesBySharedWith returns all shares the user has received, across all statuses.
	ListSharesBySharedWith(ctx context.Context, sharedWithUserID string) ([]domain.DashboardShare, error)
}

// ShareWriter defines write operations for dashboard share rows.
type ShareWriter interface {
	// SaveShare inserts a new share row.
	SaveShare(ctx context.Context, share domain.DashboardShare) error

	// UpdateShareStatus sets the status of the share with the given id.
	UpdateShareStatus(ctx context.Context, shareID string, status domain.ShareStatus) error

	// UpdateShareRole sets the role of the share with the given id.
	UpdateShareRole(ctx context.Context, shareID string, role domain.ShareRole) error

	// DeleteShare hard-deletes the share row. Used by both owner revoke and
	// invitee leave.
	DeleteShare(ctx context.Context, shareID string) error
}

// ShareRepositoryFacade combines all dashboard share repository interfaces.
type ShareRepositoryFacade interface {
	ShareReader
	ShareWriter
}
