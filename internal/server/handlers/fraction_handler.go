package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seogestao/condogest/internal/domain/models"
)

// FractionStore is the slice of the gateway the fraction registry uses.
type FractionStore interface {
	ListFractions(ctx context.Context) ([]models.Fraction, error)
	CreateFraction(ctx context.Context, f models.Fraction) (models.Fraction, error)
	UpdateFraction(ctx context.Context, id string, f models.Fraction) (models.Fraction, error)
	DeleteFraction(ctx context.Context, id string) error
}

// FractionHandler serves the fraction/owner registry.
type FractionHandler struct {
	store  FractionStore
	logger *zap.Logger
}

// NewFractionHandler constructs the registry adapter.
func NewFractionHandler(store FractionStore, logger *zap.Logger) *FractionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FractionHandler{store: store, logger: logger}
}

type fractionListResponse struct {
	Fractions    []models.Fraction `json:"fractions"`
	PermilageSum int               `json:"permilageSum"`
}

// List returns all fractions with the building's permilage total. The total
// is expected to be 1000 but is not enforced; the caller surfaces drift.
func (h *FractionHandler) List(c *gin.Context) {
	fractions, err := h.store.ListFractions(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing fractions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load fractions"})
		return
	}

	var sum int
	for _, f := range fractions {
		sum += f.Permilage
	}
	c.JSON(http.StatusOK, fractionListResponse{Fractions: fractions, PermilageSum: sum})
}

type fractionRequest struct {
	Code         string               `json:"code" binding:"required"`
	OwnerName    string               `json:"ownerName" binding:"required"`
	Permilage    int                  `json:"permilage" binding:"required,gt=0"`
	MonthlyQuota float64              `json:"monthlyQuota" binding:"gte=0"`
	NIF          string               `json:"nif"`
	Status       models.PaymentStatus `json:"status" binding:"required,oneof=PAID PENDING OVERDUE"`
}

func (r fractionRequest) model() models.Fraction {
	return models.Fraction{
		Code:         r.Code,
		OwnerName:    r.OwnerName,
		Permilage:    r.Permilage,
		MonthlyQuota: r.MonthlyQuota,
		NIF:          r.NIF,
		Status:       r.Status,
	}
}

// Create registers a new fraction.
func (h *FractionHandler) Create(c *gin.Context) {
	var req fractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.store.CreateFraction(c.Request.Context(), req.model())
	if err != nil {
		h.logger.Error("failed creating fraction", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create fraction"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update overwrites a fraction's fields, payment status included.
func (h *FractionHandler) Update(c *gin.Context) {
	var req fractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.store.UpdateFraction(c.Request.Context(), c.Param("id"), req.model())
	if err != nil {
		h.logger.Error("failed updating fraction", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update fraction"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a fraction.
func (h *FractionHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteFraction(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("failed deleting fraction", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete fraction"})
		return
	}
	c.Status(http.StatusNoContent)
}
