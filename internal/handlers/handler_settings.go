package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martapiva/presenze_tracker_app/internal/core/domain"
	portssvc "github.com/martapiva/presenze_tracker_app/internal/core/ports/services"
	"github.com/martapiva/presenze_tracker_app/internal/dto"
	"github.com/martapiva/presenze_tracker_app/internal/middleware"
)

// settingsHandler handles the auto-close sweep configuration.
type settingsHandler struct {
	attendanceService portssvc.AttendanceSvcFacade
}

func newSettingsHandler(as portssvc.AttendanceSvcFacade) *settingsHandler {
	return &settingsHandler{attendanceService: as}
}

// RegisterSettingsRoutes registers the admin settings routes.
func RegisterSettingsRoutes(rg *gin.RouterGroup, attendanceService portssvc.AttendanceSvcFacade) {
	h := newSettingsHandler(attendanceService)

	settings := rg.Group("/settings")
	{
		settings.GET("/autoclose", h.getAutoCloseSettings)
		settings.PUT("/autoclose", h.updateAutoCloseSettings)
	}
}

// getAutoCloseSettings godoc
// @Summary Get the auto-close configuration
// @Description Retrieves the sweep cutoff and enablement; defaults apply if never saved
// @Tags settings
// @Produce json
// @Success 200 {object} domain.AutoCloseSettings
// @Failure 500 {object} map[string]string "Failed to read settings"
// @Security BearerAuth
// @Router /settings/autoclose [get]
func (h *settingsHandler) getAutoCloseSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.attendanceService.GetAutoCloseSettings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to read auto-close settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// updateAutoCloseSettings godoc
// @Summary Update the auto-close configuration
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.AutoCloseSettingsRequest true "New cutoff and enablement"
// @Success 200 {object} domain.AutoCloseSettings
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Failed to save settings"
// @Security BearerAuth
// @Router /settings/autoclose [put]
func (h *settingsHandler) updateAutoCloseSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AutoCloseSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAutoCloseSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	settings := domain.AutoCloseSettings{Time: req.Time, Enabled: *req.Enabled}
	if err := h.attendanceService.UpdateAutoCloseSettings(c.Request.Context(), settings); err != nil {
		logger.Error("Failed to save auto-close settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}
