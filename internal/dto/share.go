package dto

import (
	"time"

	"github.com/blance-app/blance_backend/internal/core/domain"
)

// CreateInviteRequest invites another user to the caller's dashboard.
type CreateInviteRequest struct {
	SharedWithUserID string `json:"sharedWithUserID" binding:"required"`
	Role             string `json:"role" binding:"required,sharerole"`
}

// RespondInviteRequest answers a received invite.
type RespondInviteRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accept reject"`

	// ShareID addresses the invite directly when the caller knows it.
	ShareID string `json:"shareID,omitempty"`

	// Fallback natural-key addressing, used when the share id is unknown
	// to the caller. Both paths address the same logical invite.
	OwnerID          string `json:"ownerID,omitempty"`
	SharedWithUserID string `json:"sharedWithUserID,omitempty"`
}

// UpdateShareRoleRequest changes the role on an existing invite.
type UpdateShareRoleRequest struct {
	Role string `json:"role" binding:"required,sharerole"`
}

// ShareResponse is one share row with the counterparty's display name.
type ShareResponse struct {
	ShareID          string    `json:"shareID"`
	OwnerID          string    `json:"ownerID"`
	SharedWithUserID string    `json:"sharedWithUserID"`
	Role             string    `json:"role"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	CounterpartyName string    `json:"counterpartyName"`
}

// ListInvitesResponse groups a user's invites by direction.
type ListInvitesResponse struct {
	Sent     []ShareResponse `json:"sent"`
	Received []ShareResponse `json:"received"`
}

// SharedDashboardResponse is one dashboard visible to the caller through an
// accepted share.
type SharedDashboardResponse struct {
	OwnerID   string `json:"ownerID"`
	OwnerName string `json:"ownerName"`
	Role      string `json:"role"`
}

// ToShareResponse converts an enriched domain share to its response DTO.
func ToShareResponse(d domain.ShareDetails) ShareResponse {
	return ShareResponse{
		ShareID:          d.ShareID,
		OwnerID:          d.OwnerID,
		SharedWithUserID: d.SharedWithUserID,
		Role:             string(d.Role),
		Status:           string(d.Status),
		CreatedAt:        d.CreatedAt,
		CounterpartyName: d.CounterpartyName,
	}
}

// ToShareResponseSlice converts a slice of enriched shares.
func ToShareResponseSlice(ds []domain.ShareDetails) []ShareResponse {
	out := make([]ShareResponse, len(ds))
	for i, d := range ds {
		out[i] = ToShareResponse(d)
	}
	return out
}
