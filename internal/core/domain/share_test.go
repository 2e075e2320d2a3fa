package domain_test

import (
	"testing"

	"github.com/blance-app/blance_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestShareStatus_Transitions(t *testing.T) {
	pending := domain.DashboardShare{Status: domain.ShareStatusPending}
	assert.True(t, pending.CanTransitionTo(domain.ShareStatusAccepted))
	assert.True(t, pending.CanTransitionTo(domain.ShareStatusRejected))
	assert.False(t, pending.CanTransitionTo(domain.ShareStatusPending))

	accepted := domain.DashboardShare{Status: domain.ShareStatusAccepted}
	assert.False(t, accepted.CanTransitionTo(domain.ShareStatusRejected))
	assert.False(t, accepted.CanTransitionTo(domain.ShareStatusAccepted))

	// rejected is terminal
	rejected := domain.DashboardShare{Status: domain.ShareStatusRejected}
	assert.False(t, rejected.CanTransitionTo(domain.ShareStatusAccepted))
	assert.False(t, rejected.CanTransitionTo(domain.ShareStatusPending))
}

func TestShareStatus_IsActive(t *testing.T) {
	assert.True(t, domain.ShareStatusPending.IsActive())
	assert.True(t, domain.ShareStatusAccepted.IsActive())
	assert.False(t, domain.ShareStatusRejected.IsActive())
}

func TestShareRole(t *testing.T) {
	assert.False(t, domain.ShareRoleViewer.AllowsWrite())
	assert.True(t, domain.ShareRoleEditor.AllowsWrite())
	assert.True(t, domain.ShareRoleAdmin.AllowsWrite())

	assert.True(t, domain.ShareRoleViewer.IsAssignable())
	assert.True(t, domain.ShareRoleEditor.IsAssignable())
	assert.False(t, domain.ShareRoleAdmin.IsAssignable(), "admin is reserved, the invite flow never assigns it")
}

func TestProfile_DisplayName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", domain.Profile{ID: "u1", FullName: "Ada Lovelace", Email: "ada@example.com"}.DisplayName())
	assert.Equal(t, "ada@example.com", domain.Profile{ID: "u1", Email: "ada@example.com"}.DisplayName())
	assert.Equal(t, "u1", domain.Profile{ID: "u1"}.DisplayName())
}
