package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/blance-app/blance_backend/internal/core/ports/services"
	"github.com/blance-app/blance_backend/internal/dto"
)

// fxHandler exposes the daily rate table and minor-unit conversion.
type fxHandler struct {
	fxService portssvc.FxSvcFacade
}

func newFxHandler(fs portssvc.FxSvcFacade) *fxHandler {
	return &fxHandler{fxService: fs}
}

// RegisterFxRoutes mounts the FX endpoints on the given group.
func RegisterFxRoutes(rg *gin.RouterGroup, fxService portssvc.FxSvcFacade) {
	h := newFxHandler(fxService)

	fx := rg.Group("/fx")
	{
		fx.GET("/rates", h.getRates)
		fx.GET("/convert", h.convert)
	}
}

// getRates godoc
// @Summary Get today's FX rates
// @Description Returns the freshest available rate table for the base
// @Description currency, fetching from the provider when nothing is stored.
// @Tags fx
// @Produce json
// @Param base query string false "Base currency code" default(EUR)
// @Success 200 {object} dto.FxRatesResponse
// @Failure 502 {object} ErrorResponse "Rate provider unavailable"
// @Failure 504 {object} ErrorResponse "Rate provider timed out"
// @Security BearerAuth
// @Router /fx/rates [get]
func (h *fxHandler) getRates(c *gin.Context) {
	row, err := h.fxService.EnsureDailyRates(c.Request.Context(), c.Query("base"))
	if err != nil {
		respondError(c, err, "Failed to load FX rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToFxRatesResponse(*row))
}

// convert godoc
// @Summary Convert a minor-unit amount
// @Description Converts an integer minor-unit amount between two currencies
// @Description using today's rates, rounding half away from zero.
// @Tags fx
// @Produce json
// @Param amountMinor query int true "Amount in minor units"
// @Param from query string true "Source currency code"
// @Param to query string true "Target currency code"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Rate provider unavailable"
// @Failure 504 {object} ErrorResponse "Rate provider timed out"
// @Security BearerAuth
// @Router /fx/convert [get]
func (h *fxHandler) convert(c *gin.Context) {
	var req dto.ConvertRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	converted, rateDate, err := h.fxService.ConvertMinor(c.Request.Context(), req.AmountMinor, req.From, req.To)
	if err != nil {
		respondError(c, err, "Failed to convert amount")
		return
	}
	c.JSON(http.StatusOK, dto.ConvertResponse{
		AmountMinor:    req.AmountMinor,
		From:           req.From,
		To:             req.To,
		ConvertedMinor: converted,
		RateDate:       rateDate,
	})
}
