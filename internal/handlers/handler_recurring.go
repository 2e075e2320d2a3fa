package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/blance-app/blance_backend/internal/core/ports/services"
	"github.com/blance-app/blance_backend/internal/dto"
)

// recurringHandler manages recurring transaction templates. The worker that
// materializes them runs as a separate binary.
type recurringHandler struct {
	recurringService portssvc.RecurringSvcFacade
}

func newRecurringHandler(rs portssvc.RecurringSvcFacade) *recurringHandler {
	return &recurringHandler{recurringService: rs}
}

func registerRecurringRoutes(rg *gin.RouterGroup, recurringService portssvc.RecurringSvcFacade) {
	h := newRecurringHandler(recurringService)

	recurring := rg.Group("/recurring")
	{
		recurring.POST("", h.createRecurring)
		recurring.GET("", h.listRecurring)
		recurring.PUT("/:recurringID", h.updateRecurring)
		recurring.DELETE("/:recurringID", h.deleteRecurring)
	}
}

// createRecurring godoc
// @Summary Create a recurring template
// @Description Registers a transaction that repeats on a schedule. The first
// @Description occurrence lands on the start date.
// @Tags recurring
// @Accept json
// @Produce json
// @Param recurring body dto.CreateRecurringRequest true "Template details"
// @Success 201 {object} dto.RecurringResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring [post]
func (h *recurringHandler) createRecurring(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.CreateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	rec, err := h.recurringService.CreateRecurring(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create recurring transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRecurringResponse(*rec))
}

// listRecurring godoc
// @Summary List recurring templates
// @Tags recurring
// @Produce json
// @Success 200 {array} dto.RecurringResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring [get]
func (h *recurringHandler) listRecurring(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	recs, err := h.recurringService.ListRecurring(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list recurring transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecurringResponseSlice(recs))
}

// updateRecurring godoc
// @Summary Update a recurring template
// @Description Replaces a template's amounts and metadata. The start date and
// @Description frequency anchor the schedule and cannot change.
// @Tags recurring
// @Accept json
// @Produce json
// @Param recurringID path string true "Recurring ID"
// @Param recurring body dto.UpdateRecurringRequest true "New values"
// @Success 200 {object} dto.RecurringResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring/{recurringID} [put]
func (h *recurringHandler) updateRecurring(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.UpdateRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	rec, err := h.recurringService.UpdateRecurring(c.Request.Context(), userID, c.Param("recurringID"), req)
	if err != nil {
		respondError(c, err, "Failed to update recurring transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecurringResponse(*rec))
}

// deleteRecurring godoc
// @Summary Delete a recurring template
// @Description Removes the template. Transactions it already materialized
// @Description stay on the dashboard.
// @Tags recurring
// @Produce json
// @Param recurringID path string true "Recurring ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /recurring/{recurringID} [delete]
func (h *recurringHandler) deleteRecurring(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.recurringService.DeleteRecurring(c.Request.Context(), userID, c.Param("recurringID")); err != nil {
		respondError(c, err, "Failed to delete recurring transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
