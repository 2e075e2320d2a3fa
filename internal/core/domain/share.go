package domain

import "time"

// ShareRole defines the access level a share grants on the owner's dashboard.
type ShareRole string

const (
	ShareRoleViewer ShareRole = "viewer"
	ShareRoleEditor ShareRole = "editor"
	// ShareRoleAdmin exists in the schema but is never produced by the
	// invite flow; treat it as a reserved value.
	ShareRoleAdmin ShareRole = "admin"
)

// AllowsWrite reports whether the role grants write access to the owner's
// transaction data. Viewer is read-only.
func (r ShareRole) AllowsWrite() bool {
	return r == ShareRoleEditor || r == ShareRoleAdmin
}

// IsAssignable reports whether the invite flow may produce this role.
func (r ShareRole) IsAssignable() bool {
	return r == ShareRoleViewer || r == ShareRoleEditor
}

// ShareStatus is the lifecycle state of an invite.
type ShareStatus string

const (
	ShareStatusPending  ShareStatus = "pending"
	ShareStatusAccepted ShareStatus = "accepted"
	ShareStatusRejected ShareStatus = "rejected"
)

// IsActive reports whether the share still occupies the (owner, invitee)
// pair: pending and accepted rows block a new invite, rejected rows do not.
func (s ShareStatus) IsActive() bool {
	return s == ShareStatusPending || s == ShareStatusAccepted
}

// DashboardShare is one owner-to-invitee sharing relationship.
//
// Status transitions: pending -> accepted and pending -> rejected, both by
// the invitee only. Rejected is terminal; re-sharing requires a new row.
// Revoke (owner) and leave (invitee) hard-delete the row rather than
// transitioning it. Role is mutable by the owner independent of status.
type DashboardShare struct {
	ShareID          string      `json:"shareID"`
	OwnerID          string      `json:"ownerID"`
	SharedWithUserID string      `json:"sharedWithUserID"`
	Role             ShareRole   `json:"role"`
	Status           ShareStatus `json:"status"`
	CreatedAt        time.Time   `json:"createdAt"`
}

// CanTransitionTo reports whether the invitee may move the share to the
// target status. Only pending invites can be answered.
func (s DashboardShare) CanTransitionTo(target ShareStatus) bool {
	if s.Status != ShareStatusPending {
		return false
	}
	return target == ShareStatusAccepted || target == ShareStatusRejected
}

// ShareDetails is a share row enriched with the counterparty's display name
// for list views. For sent invites the counterparty is the invitee, for
// received invites it is the owner.
type ShareDetails struct {
	DashboardShare
	CounterpartyName string `json:"counterpartyName"`
}
