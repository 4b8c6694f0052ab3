package handlers

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seogestao/condogest/internal/domain/models"
)

// StaffStore is the local persistence surface for staff records.
type StaffStore interface {
	List(ctx context.Context) ([]models.Staff, error)
	Create(ctx context.Context, st models.Staff) (models.Staff, error)
	Update(ctx context.Context, id string, st models.Staff) (models.Staff, error)
	Delete(ctx context.Context, id string) error
}

// StaffHandler serves the staff and service-provider registry.
type StaffHandler struct {
	store  StaffStore
	logger *zap.Logger
}

// NewStaffHandler constructs the staff adapter.
func NewStaffHandler(store StaffStore, logger *zap.Logger) *StaffHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaffHandler{store: store, logger: logger}
}

// List returns all staff records ordered by name.
func (h *StaffHandler) List(c *gin.Context) {
	out, err := h.store.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load staff", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load staff"})
		return
	}
	c.JSON(http.StatusOK, out)
}

type staffRequest struct {
	Name        string `json:"name" binding:"required"`
	Role        string `json:"role" binding:"required"`
	Contact     string `json:"contact"`
	ContractEnd string `json:"contractEnd"`
}

func (r staffRequest) model() models.Staff {
	return models.Staff{Name: r.Name, Role: r.Role, Contact: r.Contact, ContractEnd: r.ContractEnd}
}

// Create registers a staff record.
func (h *StaffHandler) Create(c *gin.Context) {
	var req staffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.store.Create(c.Request.Context(), req.model())
	if err != nil {
		h.logger.Error("failed to create staff", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create staff"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update overwrites a staff record's fields.
func (h *StaffHandler) Update(c *gin.Context) {
	var req staffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.store.Update(c.Request.Context(), c.Param("id"), req.model())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "staff member not found"})
			return
		}
		h.logger.Error("failed to update staff", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update staff"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a staff record.
func (h *StaffHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("failed to delete staff", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete staff"})
		return
	}
	c.Status(http.StatusNoContent)
}
