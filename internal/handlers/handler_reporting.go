package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/martapiva/presenze_tracker_app/internal/core/ports/services"
	"github.com/martapiva/presenze_tracker_app/internal/dto"
	"github.com/martapiva/presenze_tracker_app/internal/middleware"
)

// reportingHandler handles the admin reporting endpoints. CSV rendering is the
// client's job; these return the raw rows.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// RegisterReportingRoutes registers the admin reporting routes.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/entries", h.listEntries)
		reports.GET("/monthly", h.monthlyReport)
		reports.GET("/summary", h.workerSummaries)
	}
}

// listEntries godoc
// @Summary List finalized time entries
// @Description Retrieves entries date-descending. The date range applies only when both bounds are given.
// @Tags reports
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Param workerId query string false "Filter by worker"
// @Success 200 {object} dto.ListTimeEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to query entries"
// @Security BearerAuth
// @Router /reports/entries [get]
func (h *reportingHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ReportQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.reportingService.GetTimeEntries(c.Request.Context(), params.StartDate, params.EndDate, params.WorkerID)
	if err != nil {
		logger.Error("Failed to query entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ListTimeEntriesResponse{Entries: dto.ToTimeEntryResponses(entries)})
}

// monthlyReport godoc
// @Summary Entries grouped by month
// @Description Partitions entries into MM.YYYY buckets, most recent month first
// @Tags reports
// @Produce json
// @Param workerId query string false "Filter by worker"
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 500 {object} map[string]string "Failed to build monthly report"
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) monthlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID := c.Query("workerId")

	buckets, err := h.reportingService.GetTimeEntriesGroupedByMonth(c.Request.Context(), workerID)
	if err != nil {
		logger.Error("Failed to build monthly report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build monthly report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyReportResponse(buckets))
}

// workerSummaries godoc
// @Summary Per-worker hour and earning totals
// @Description Aggregates hours and earnings per worker over the given range
// @Tags reports
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryReportResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build summary report"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) workerSummaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ReportQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for WorkerSummaries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	summaries, err := h.reportingService.GetWorkerSummaries(c.Request.Context(), params.StartDate, params.EndDate)
	if err != nil {
		logger.Error("Failed to build summary report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryReportResponse(summaries))
}
