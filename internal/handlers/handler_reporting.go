package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/validation"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles the dashboard statistics and history series.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the statistics routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	stats := rg.Group("/stats")
	{
		stats.GET("/balance", h.getBalanceStats)
		stats.GET("/categories", h.getCategoryStats)
		stats.GET("/overview", h.getOverview)
	}
	rg.GET("/history-data", h.getHistoryData)
	rg.GET("/history-periods", h.getHistoryPeriods)
}

// getBalanceStats godoc
// @Summary Balance statistics
// @Description Income, expense and VAT of invoices issued between from and to.
// @Tags stats
// @Produce json
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} dto.BalanceStatsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stats/balance [get]
func (h *reportingHandler) getBalanceStats(c *gin.Context) {
	rng, ok := bindDateRange(c)
	if !ok {
		return
	}
	stats, err := h.reportingService.BalanceStats(c.Request.Context(), rng)
	if err != nil {
		respondError(c, err, "Failed to compute balance statistics")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceStatsResponse(*stats))
}

// getCategoryStats godoc
// @Summary Category statistics
// @Description Gross totals per type and category, largest first.
// @Tags stats
// @Produce json
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {array} dto.CategoryStatResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /stats/categories [get]
func (h *reportingHandler) getCategoryStats(c *gin.Context) {
	rng, ok := bindDateRange(c)
	if !ok {
		return
	}
	stats, err := h.reportingService.CategoryStats(c.Request.Context(), rng)
	if err != nil {
		respondError(c, err, "Failed to compute category statistics")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryStatsResponse(stats))
}

// getOverview godoc
// @Summary Dashboard overview
// @Description Balance and category statistics in one call.
// @Tags stats
// @Produce json
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} dto.OverviewResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /stats/overview [get]
func (h *reportingHandler) getOverview(c *gin.Context) {
	rng, ok := bindDateRange(c)
	if !ok {
		return
	}
	overview, err := h.reportingService.Overview(c.Request.Context(), rng)
	if err != nil {
		respondError(c, err, "Failed to compute overview")
		return
	}
	c.JSON(http.StatusOK, dto.OverviewResponse{
		Balance:    dto.ToBalanceStatsResponse(overview.Balance),
		Categories: dto.ToCategoryStatsResponse(overview.Categories),
	})
}

// getHistoryData godoc
// @Summary History series
// @Description Income, expense and VAT balance per day of a month or per month of a year, zero filled. Empty when the period has no invoices.
// @Tags stats
// @Produce json
// @Param timeframe query string true "Granularity" Enums(month, year)
// @Param year query int true "Year"
// @Param month query int false "Month (1-12), required for the month timeframe"
// @Success 200 {array} domain.HistoryPoint
// @Failure 400 {object} ValidationErrorResponse
// @Security BearerAuth
// @Router /history-data [get]
func (h *reportingHandler) getHistoryData(c *gin.Context) {
	var params dto.HistoryDataParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}
	if res := validation.Validate(params); !res.OK() {
		respondError(c, res.Err(), "Invalid query parameters")
		return
	}

	points, err := h.reportingService.HistoryData(c.Request.Context(), params.Timeframe, params.Year, params.Month)
	if err != nil {
		respondError(c, err, "Failed to load history data")
		return
	}
	c.JSON(http.StatusOK, points)
}

// getHistoryPeriods godoc
// @Summary History periods
// @Description Years that have invoices, ascending. The current year when there are none.
// @Tags stats
// @Produce json
// @Success 200 {object} dto.HistoryPeriodsResponse
// @Security BearerAuth
// @Router /history-periods [get]
func (h *reportingHandler) getHistoryPeriods(c *gin.Context) {
	years, err := h.reportingService.HistoryPeriods(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load history periods")
		return
	}
	c.JSON(http.StatusOK, dto.HistoryPeriodsResponse{Years: years})
}
