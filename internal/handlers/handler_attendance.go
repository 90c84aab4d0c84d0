package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martapiva/presenze_tracker_app/internal/apperrors"
	portssvc "github.com/martapiva/presenze_tracker_app/internal/core/ports/services"
	"github.com/martapiva/presenze_tracker_app/internal/dto"
	"github.com/martapiva/presenze_tracker_app/internal/middleware"
)

// attendanceHandler handles the kiosk check-in/check-out flow and the admin
// session and entry management endpoints.
type attendanceHandler struct {
	attendanceService portssvc.AttendanceSvcFacade
}

func newAttendanceHandler(as portssvc.AttendanceSvcFacade) *attendanceHandler {
	return &attendanceHandler{attendanceService: as}
}

// RegisterPublicAttendanceRoutes registers the unauthenticated kiosk routes.
func RegisterPublicAttendanceRoutes(rg *gin.RouterGroup, attendanceService portssvc.AttendanceSvcFacade) {
	h := newAttendanceHandler(attendanceService)

	attendance := rg.Group("/attendance")
	{
		attendance.POST("/checkin", h.checkIn)
		attendance.POST("/checkout", h.checkOut)
		attendance.GET("/sessions", h.listActiveSessions)
	}
}

// RegisterAttendanceRoutes registers the admin attendance routes.
func RegisterAttendanceRoutes(rg *gin.RouterGroup, attendanceService portssvc.AttendanceSvcFacade) {
	h := newAttendanceHandler(attendanceService)

	attendance := rg.Group("/attendance")
	{
		attendance.POST("/autoclose", h.autoCloseSessions)
		attendance.POST("/forceclose", h.forceCloseSessions)
	}

	entries := rg.Group("/entries")
	{
		entries.POST("", h.addManualEntry)
		entries.PUT("/:id", h.updateEntry)
		entries.DELETE("/:id", h.deleteEntry)
	}
}

// checkIn godoc
// @Summary Check a worker in
// @Description Opens an attendance session. Fails if the worker already has a session or a finalized entry for today.
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.CheckInRequest true "Worker to check in"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Worker not found"
// @Failure 500 {object} map[string]string "Check-in failed"
// @Router /attendance/checkin [post]
func (h *attendanceHandler) checkIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CheckIn", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.attendanceService.CheckIn(c.Request.Context(), req.WorkerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
			return
		}
		logger.Error("Check-in failed", slog.String("error", err.Error()), slog.String("worker_id", req.WorkerID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Check-in failed"})
		return
	}

	// Business rejections (already checked in) travel on the result so the
	// kiosk can show the message verbatim.
	c.JSON(http.StatusOK, result)
}

// checkOut godoc
// @Summary Check a worker out
// @Description Closes the worker's open session into a finalized entry. A missing session is a no-op.
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.CheckOutRequest true "Worker to check out"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Check-out failed"
// @Router /attendance/checkout [post]
func (h *attendanceHandler) checkOut(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CheckOut", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.attendanceService.CheckOut(c.Request.Context(), req.WorkerID); err != nil {
		logger.Error("Check-out failed", slog.String("error", err.Error()), slog.String("worker_id", req.WorkerID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Check-out failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Check-out registrato"})
}

// listActiveSessions godoc
// @Summary List open sessions
// @Description Retrieves every worker currently checked in
// @Tags attendance
// @Produce json
// @Success 200 {object} dto.ListActiveSessionsResponse
// @Failure 500 {object} map[string]string "Failed to list sessions"
// @Router /attendance/sessions [get]
func (h *attendanceHandler) listActiveSessions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sessions, err := h.attendanceService.ListActiveSessions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list active sessions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sessions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListActiveSessionsResponse(sessions))
}

// autoCloseSessions godoc
// @Summary Run the auto-close sweep
// @Description Closes eligible open sessions at the configured or given cutoff. A custom time also overrides a disabled sweep.
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.SweepRequest false "Optional cutoff override (HH:MM)"
// @Success 200 {object} domain.SweepResult
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Sweep failed"
// @Security BearerAuth
// @Router /attendance/autoclose [post]
func (h *attendanceHandler) autoCloseSessions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SweepRequest
	// The body is optional; an empty one means "use the configured cutoff".
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Failed to bind JSON for AutoClose", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.attendanceService.AutoCloseSessions(c.Request.Context(), req.CloseTime)
	if err != nil {
		logger.Error("Auto-close sweep failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sweep failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// forceCloseSessions godoc
// @Summary Force-close every open session
// @Description Unconditionally closes all open sessions, regardless of settings or session day
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.SweepRequest false "Optional close time (HH:MM); defaults to now"
// @Success 200 {object} domain.SweepResult
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Force-close failed"
// @Security BearerAuth
// @Router /attendance/forceclose [post]
func (h *attendanceHandler) forceCloseSessions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Failed to bind JSON for ForceClose", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.attendanceService.ForceCloseAllSessions(c.Request.Context(), req.CloseTime)
	if err != nil {
		logger.Error("Force-close failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Force-close failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// addManualEntry godoc
// @Summary Add a manual time entry
// @Description Persists an admin-typed entry after duplicate-day and time-range validation
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateManualEntryRequest true "Entry details"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Failed to add entry"
// @Security BearerAuth
// @Router /entries [post]
func (h *attendanceHandler) addManualEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateManualEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddManualEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.attendanceService.AddManualTimeEntry(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to add manual entry", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add entry"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// updateEntry godoc
// @Summary Update a time entry
// @Description Overwrites an entry's date and times; the duration is recomputed
// @Tags entries
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param entry body dto.UpdateTimeEntryRequest true "New date and times"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to update entry"
// @Security BearerAuth
// @Router /entries/{id} [put]
func (h *attendanceHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	var req dto.UpdateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.attendanceService.UpdateTimeEntry(c.Request.Context(), entryID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		logger.Error("Failed to update entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update entry"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// deleteEntry godoc
// @Summary Delete a time entry
// @Tags entries
// @Produce json
// @Param id path string true "Entry ID"
// @Success 204 "Entry deleted"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Security BearerAuth
// @Router /entries/{id} [delete]
func (h *attendanceHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	if err := h.attendanceService.DeleteTimeEntry(c.Request.Context(), entryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		logger.Error("Failed to delete entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
		return
	}

	c.Status(http.StatusNoContent)
}
