package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martapiva/presenze_tracker_app/internal/apperrors"
	portssvc "github.com/martapiva/presenze_tracker_app/internal/core/ports/services"
	"github.com/martapiva/presenze_tracker_app/internal/dto"
	"github.com/martapiva/presenze_tracker_app/internal/middleware"
)

// workerHandler handles HTTP requests related to workers.
type workerHandler struct {
	workerService portssvc.WorkerSvcFacade
}

func newWorkerHandler(ws portssvc.WorkerSvcFacade) *workerHandler {
	return &workerHandler{workerService: ws}
}

// RegisterPublicWorkerRoutes registers the read-only worker routes the kiosk
// grid needs before any authentication happens.
func RegisterPublicWorkerRoutes(rg *gin.RouterGroup, workerService portssvc.WorkerSvcFacade) {
	h := newWorkerHandler(workerService)

	rg.GET("/workers", h.listWorkers)
}

// RegisterWorkerRoutes registers the admin worker management routes.
func RegisterWorkerRoutes(rg *gin.RouterGroup, workerService portssvc.WorkerSvcFacade) {
	h := newWorkerHandler(workerService)

	workers := rg.Group("/workers")
	{
		workers.POST("", h.createWorker)
		workers.GET("/:id", h.getWorker)
		workers.PUT("/:id", h.updateWorker)
		workers.DELETE("/:id", h.deleteWorker)
	}
}

// listWorkers godoc
// @Summary List workers
// @Description Retrieves the worker roster, ordered by name
// @Tags workers
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListWorkersResponse
// @Failure 500 {object} map[string]string "Failed to list workers"
// @Router /workers [get]
func (h *workerHandler) listWorkers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListWorkersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListWorkers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	workers, err := h.workerService.ListWorkers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list workers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list workers"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListWorkersResponse(workers))
}

// createWorker godoc
// @Summary Create a worker
// @Description Registers a new worker on the kiosk roster
// @Tags workers
// @Accept json
// @Produce json
// @Param worker body dto.CreateWorkerRequest true "Worker details"
// @Success 201 {object} dto.WorkerResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create worker"
// @Security BearerAuth
// @Router /workers [post]
func (h *workerHandler) createWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWorker", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	worker, err := h.workerService.CreateWorker(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create worker", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create worker"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkerResponse(worker))
}

// getWorker godoc
// @Summary Get a worker by ID
// @Tags workers
// @Produce json
// @Param id path string true "Worker ID"
// @Success 200 {object} dto.WorkerResponse
// @Failure 404 {object} map[string]string "Worker not found"
// @Failure 500 {object} map[string]string "Failed to retrieve worker"
// @Security BearerAuth
// @Router /workers/{id} [get]
func (h *workerHandler) getWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID := c.Param("id")

	worker, err := h.workerService.GetWorkerByID(c.Request.Context(), workerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
			return
		}
		logger.Error("Failed to get worker", slog.String("error", err.Error()), slog.String("worker_id", workerID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve worker"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkerResponse(worker))
}

// updateWorker godoc
// @Summary Update a worker
// @Tags workers
// @Accept json
// @Produce json
// @Param id path string true "Worker ID"
// @Param worker body dto.UpdateWorkerRequest true "Fields to update"
// @Success 200 {object} dto.WorkerResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Worker not found"
// @Failure 500 {object} map[string]string "Failed to update worker"
// @Security BearerAuth
// @Router /workers/{id} [put]
func (h *workerHandler) updateWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID := c.Param("id")

	var req dto.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateWorker", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	worker, err := h.workerService.UpdateWorker(c.Request.Context(), workerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
			return
		}
		logger.Error("Failed to update worker", slog.String("error", err.Error()), slog.String("worker_id", workerID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update worker"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkerResponse(worker))
}

// deleteWorker godoc
// @Summary Delete a worker
// @Description Removes a worker; their finalized time entries are kept
// @Tags workers
// @Produce json
// @Param id path string true "Worker ID"
// @Success 204 "Worker deleted"
// @Failure 404 {object} map[string]string "Worker not found"
// @Failure 500 {object} map[string]string "Failed to delete worker"
// @Security BearerAuth
// @Router /workers/{id} [delete]
func (h *workerHandler) deleteWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID := c.Param("id")

	if err := h.workerService.DeleteWorker(c.Request.Context(), workerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
			return
		}
		logger.Error("Failed to delete worker", slog.String("error", err.Error()), slog.String("worker_id", workerID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete worker"})
		return
	}

	c.Status(http.StatusNoContent)
}
