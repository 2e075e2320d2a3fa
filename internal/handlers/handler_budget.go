package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/blance-app/blance_backend/internal/core/ports/services"
	"github.com/blance-app/blance_backend/internal/dto"
)

// budgetHandler manages spending budgets and their progress report.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets")
	{
		budgets.POST("", h.createBudget)
		budgets.GET("", h.listBudgets)
		budgets.GET("/progress", h.getBudgetProgress)
		budgets.DELETE("/:budgetID", h.deleteBudget)
	}
}

// createBudget godoc
// @Summary Create a budget
// @Description Caps spending per period, overall or for one category. One
// @Description active budget per (category, period) pair.
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Budget already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create budget")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBudgetResponse(*budget))
}

// listBudgets godoc
// @Summary List budgets
// @Tags budgets
// @Produce json
// @Success 200 {array} dto.BudgetResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	budgets, err := h.budgetService.ListBudgets(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list budgets")
		return
	}

	out := make([]dto.BudgetResponse, len(budgets))
	for i, b := range budgets {
		out[i] = dto.ToBudgetResponse(b)
	}
	c.JSON(http.StatusOK, out)
}

// getBudgetProgress godoc
// @Summary Get budget progress
// @Description Returns each active budget with the spend accumulated in its
// @Description current period, converted into the budget's currency.
// @Tags budgets
// @Produce json
// @Success 200 {array} dto.BudgetProgressResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets/progress [get]
func (h *budgetHandler) getBudgetProgress(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	progress, err := h.budgetService.GetBudgetProgress(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to compute budget progress")
		return
	}

	out := make([]dto.BudgetProgressResponse, len(progress))
	for i, p := range progress {
		out[i] = dto.ToBudgetProgressResponse(p)
	}
	c.JSON(http.StatusOK, out)
}

// deleteBudget godoc
// @Summary Delete a budget
// @Tags budgets
// @Produce json
// @Param budgetID path string true "Budget ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets/{budgetID} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.budgetService.DeleteBudget(c.Request.Context(), userID, c.Param("budgetID")); err != nil {
		respondError(c, err, "Failed to delete budget")
		return
	}
	c.Status(http.StatusNoContent)
}
