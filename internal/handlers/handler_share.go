package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blance-app/blance_backend/internal/core/domain"
	portssvc "github.com/blance-app/blance_backend/internal/core/ports/services"
	"github.com/blance-app/blance_backend/internal/dto"
)

// shareHandler manages dashboard invites and the shares they produce.
type shareHandler struct {
	shareService portssvc.ShareSvcFacade
}

func newShareHandler(ss portssvc.ShareSvcFacade) *shareHandler {
	return &shareHandler{shareService: ss}
}

func registerShareRoutes(rg *gin.RouterGroup, shareService portssvc.ShareSvcFacade) {
	h := newShareHandler(shareService)

	shares := rg.Group("/shares")
	{
		shares.GET("/invites", h.listInvites)
		shares.POST("/invites", h.createInvite)
		shares.POST("/respond", h.respondToInvite)
		shares.PATCH("/invites/:shareID/role", h.updateRole)
		shares.DELETE("/invites/:shareID", h.revokeInvite)
		shares.GET("/shared-with-me", h.listSharedWithMe)
		shares.DELETE("/shared-with-me/:shareID", h.leaveShared)
	}
}

// listInvites godoc
// @Summary List invites
// @Description Returns the caller's sent and received invites across all
// @Description statuses, with counterparty display names.
// @Tags shares
// @Produce json
// @Success 200 {object} dto.ListInvitesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shares/invites [get]
func (h *shareHandler) listInvites(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	sent, received, err := h.shareService.ListInvites(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list invites")
		return
	}
	c.JSON(http.StatusOK, dto.ListInvitesResponse{
		Sent:     dto.ToShareResponseSlice(sent),
		Received: dto.ToShareResponseSlice(received),
	})
}

// createInvite godoc
// @Summary Invite a user
// @Description Invites another user to the caller's dashboard as viewer or
// @Description editor. A pending or accepted invite for the same user blocks
// @Description a new one; a rejected invite does not.
// @Tags shares
// @Accept json
// @Produce json
// @Param invite body dto.CreateInviteRequest true "Invite details"
// @Success 201 {object} dto.ShareResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Invitee not found"
// @Failure 409 {object} ErrorResponse "Invite already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shares/invites [post]
func (h *shareHandler) createInvite(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	share, err := h.shareService.CreateInvite(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create invite")
		return
	}
	c.JSON(http.StatusCreated, dto.ToShareResponse(domain.ShareDetails{DashboardShare: *share}))
}

// respondToInvite godoc
// @Summary Accept or reject an invite
// @Description Answers a pending invite addressed either by share id or by
// @Description the (owner, invitee) pair. Only the invitee may respond.
// @Tags shares
// @Accept json
// @Produce json
// @Param response body dto.RespondInviteRequest true "Decision"
// @Success 200 {object} dto.ShareResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shares/respond [post]
func (h *shareHandler) respondToInvite(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.RespondInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	share, err := h.shareService.RespondToInvite(c.Request.Context(), userID, req.ShareID, req)
	if err != nil {
		respondError(c, err, "Failed to respond to invite")
		return
	}
	c.JSON(http.StatusOK, dto.ToShareResponse(domain.ShareDetails{DashboardShare: *share}))
}

// updateRole godoc
// @Summary Change an invite's role
// @Description Switches an invite between viewer and editor. Owner only.
// @Tags shares
// @Accept json
// @Produce json
// @Param shareID path string true "Share ID"
// @Param role body dto.UpdateShareRoleRequest true "New role"
// @Success 200 {object} dto.ShareResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shares/invites/{shareID}/role [patch]
func (h *shareHandler) updateRole(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.UpdateShareRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	share, err := h.shareService.UpdateRole(c.Request.Context(), userID, c.Param("shareID"), domain.ShareRole(req.Role))
	if err != nil {
		respondError(c, err, "Failed to update share role")
		return
	}
	c.JSON(http.StatusOK, dto.ToShareResponse(domain.ShareDetails{DashboardShare: *share}))
}

// revokeInvite godoc
// @Summary Revoke an invite
// @Description Removes a sent invite or share entirely. Owner only.
// @Tags shares
// @Produce json
// @Param shareID path string true "Share ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shares/invites/{shareID} [delete]
func (h *shareHandler) revokeInvite(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.shareService.RevokeInvite(c.Request.Context(), userID, c.Param("shareID")); err != nil {
		respondError(c, err, "Failed to revoke invite")
		return
	}
	c.Status(http.StatusNoContent)
}

// listSharedWithMe godoc
// @Summary List dashboards shared with me
// @Description Returns accepted shares where the caller is the invitee,
// @Description with the owner's display name.
// @Tags shares
// @Produce json
// @Success 200 {array} dto.SharedDashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shares/shared-with-me [get]
func (h *shareHandler) listSharedWithMe(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	shares, err := h.shareService.ListSharedWithMe(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list shared dashboards")
		return
	}

	out := make([]dto.SharedDashboardResponse, len(shares))
	for i, s := range shares {
		out[i] = dto.SharedDashboardResponse{
			OwnerID:   s.OwnerID,
			OwnerName: s.CounterpartyName,
			Role:      string(s.Role),
		}
	}
	c.JSON(http.StatusOK, out)
}

// leaveShared godoc
// @Summary Leave a shared dashboard
// @Description Removes the caller's own access to a dashboard shared with
// @Description them. Invitee only.
// @Tags shares
// @Produce json
// @Param shareID path string true "Share ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /shares/shared-with-me/{shareID} [delete]
func (h *shareHandler) leaveShared(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.shareService.LeaveShared(c.Request.Context(), userID, c.Param("shareID")); err != nil {
		respondError(c, err, "Failed to leave shared dashboard")
		return
	}
	c.Status(http.StatusNoContent)
}
