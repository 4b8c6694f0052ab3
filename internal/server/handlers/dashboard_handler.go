package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seogestao/condogest/internal/domain/models"
	"github.com/seogestao/condogest/internal/service/finance"
)

// DashboardStore is the slice of the gateway the overview screens read from.
type DashboardStore interface {
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	ListFractions(ctx context.Context) ([]models.Fraction, error)
	ListInspections(ctx context.Context) ([]models.Inspection, error)
}

// DashboardHandler serves the aggregated overview figures.
type DashboardHandler struct {
	store  DashboardStore
	logger *zap.Logger
	now    func() time.Time
}

// NewDashboardHandler constructs the overview adapter.
func NewDashboardHandler(store DashboardStore, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{store: store, logger: logger, now: time.Now}
}

type dashboardResponse struct {
	Balance          float64                `json:"balance"`
	ReserveFund      float64                `json:"reserveFund"`
	PendingFractions int                    `json:"pendingFractions"`
	StatusBuckets    []finance.StatusBucket `json:"statusBuckets"`
	MonthlySeries    []finance.MonthEntry   `json:"monthlySeries"`
	Inspections      []models.Inspection    `json:"inspections"`
}

// Overview computes the dashboard figures from the current snapshots. The
// reserve figure here is the 12%-of-balance estimate; the finance summary
// shows the legal 10% one.
func (h *DashboardHandler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	transactions, err := h.store.ListTransactions(ctx)
	if err != nil {
		h.logger.Error("failed loading transactions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}
	fractions, err := h.store.ListFractions(ctx)
	if err != nil {
		h.logger.Error("failed loading fractions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}
	inspections, err := h.store.ListInspections(ctx)
	if err != nil {
		h.logger.Error("failed loading inspections", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard"})
		return
	}

	balance := finance.TotalBalance(transactions)
	c.JSON(http.StatusOK, dashboardResponse{
		Balance:          balance,
		ReserveFund:      finance.ReserveFromBalance(balance),
		PendingFractions: finance.PendingFractionCount(fractions),
		StatusBuckets:    finance.StatusBuckets(fractions),
		MonthlySeries:    finance.MonthlySeries(transactions, h.now().Year()),
		Inspections:      inspections,
	})
}
