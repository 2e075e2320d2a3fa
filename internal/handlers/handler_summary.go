package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/blance-app/blance_backend/internal/core/ports/services"
	"github.com/blance-app/blance_backend/internal/dto"
)

// summaryHandler serves dashboard reporting: monthly totals, category
// breakdowns and account balances, each converted to a display currency.
type summaryHandler struct {
	summaryService portssvc.SummarySvcFacade
}

func newSummaryHandler(ss portssvc.SummarySvcFacade) *summaryHandler {
	return &summaryHandler{summaryService: ss}
}

func registerSummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvcFacade) {
	h := newSummaryHandler(summaryService)

	// Own dashboard.
	summary := rg.Group("/summary")
	{
		summary.GET("/monthly", h.getMonthlySummary)
		summary.GET("/categories", h.getCategoryBreakdown)
		summary.GET("/balances", h.getAccountBalances)
	}

	// Shared dashboards, addressed by owner.
	shared := rg.Group("/dashboards/:ownerID/summary")
	{
		shared.GET("/monthly", h.getMonthlySummary)
		shared.GET("/categories", h.getCategoryBreakdown)
		shared.GET("/balances", h.getAccountBalances)
	}
}

// getMonthlySummary godoc
// @Summary Monthly dashboard summary
// @Description Totals a month's expenses and income per currency, plus a
// @Description combined view converted to the display currency.
// @Tags summary
// @Produce json
// @Param ownerID path string false "Dashboard owner (shared dashboards)"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Param displayCurrency query string false "Display currency" default(EUR)
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /summary/monthly [get]
func (h *summaryHandler) getMonthlySummary(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.MonthlySummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	summary, err := h.summaryService.GetMonthlySummary(c.Request.Context(), userID, dashboardOwner(c, userID), req)
	if err != nil {
		respondError(c, err, "Failed to compute monthly summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(*summary))
}

// getCategoryBreakdown godoc
// @Summary Monthly category breakdown
// @Description Totals a month's transactions per category, converted to the
// @Description display currency, largest first.
// @Tags summary
// @Produce json
// @Param ownerID path string false "Dashboard owner (shared dashboards)"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Param displayCurrency query string false "Display currency" default(EUR)
// @Success 200 {object} dto.CategoryBreakdownResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /summary/categories [get]
func (h *summaryHandler) getCategoryBreakdown(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var req dto.MonthlySummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	categories, displayCurrency, err := h.summaryService.GetCategoryBreakdown(c.Request.Context(), userID, dashboardOwner(c, userID), req)
	if err != nil {
		respondError(c, err, "Failed to compute category breakdown")
		return
	}
	c.JSON(http.StatusOK, dto.CategoryBreakdownResponse{
		DisplayCurrency: displayCurrency,
		Categories:      categories,
	})
}

// getAccountBalances godoc
// @Summary Account balances
// @Description Returns each account's lifetime net flow converted to the
// @Description display currency.
// @Tags summary
// @Produce json
// @Param ownerID path string false "Dashboard owner (shared dashboards)"
// @Param displayCurrency query string false "Display currency" default(EUR)
// @Success 200 {object} dto.AccountBalancesResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /summary/balances [get]
func (h *summaryHandler) getAccountBalances(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	balances, displayCurrency, err := h.summaryService.GetAccountBalances(c.Request.Context(), userID, dashboardOwner(c, userID), c.Query("displayCurrency"))
	if err != nil {
		respondError(c, err, "Failed to compute account balances")
		return
	}
	c.JSON(http.StatusOK, dto.AccountBalancesResponse{
		DisplayCurrency: displayCurrency,
		Accounts:        balances,
	})
}
