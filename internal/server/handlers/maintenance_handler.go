package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seogestao/condogest/internal/domain/models"
	"github.com/seogestao/condogest/internal/service/maintenance"
)

// MaintenanceHandler serves the inspection register.
type MaintenanceHandler struct {
	svc    *maintenance.Service
	logger *zap.Logger
}

// NewMaintenanceHandler constructs the maintenance adapter.
func NewMaintenanceHandler(svc *maintenance.Service, logger *zap.Logger) *MaintenanceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MaintenanceHandler{svc: svc, logger: logger}
}

// List returns all inspections ordered by next due date.
func (h *MaintenanceHandler) List(c *gin.Context) {
	inspections, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing inspections", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load inspections"})
		return
	}
	c.JSON(http.StatusOK, inspections)
}

type createInspectionRequest struct {
	Type     string `json:"type" binding:"required"`
	LastDate string `json:"lastDate"`
	NextDate string `json:"nextDate" binding:"required"`
}

// Create registers an inspection; the initial status is derived from the
// next due date, not taken from the request.
func (h *MaintenanceHandler) Create(c *gin.Context) {
	var req createInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.svc.Create(c.Request.Context(), models.Inspection{
		Type:     req.Type,
		LastDate: req.LastDate,
		NextDate: req.NextDate,
	})
	if err != nil {
		h.logger.Error("failed creating inspection", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create inspection"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

type updateInspectionStatusRequest struct {
	Status models.InspectionStatus `json:"status" binding:"required,oneof=OK WARNING EXPIRED COMPLETED CANCELLED"`
}

// UpdateStatus applies an explicit status override.
func (h *MaintenanceHandler) UpdateStatus(c *gin.Context) {
	var req updateInspectionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.logger.Error("failed updating inspection", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update inspection"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes an inspection.
func (h *MaintenanceHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("failed deleting inspection", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete inspection"})
		return
	}
	c.Status(http.StatusNoContent)
}
