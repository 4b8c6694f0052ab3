package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seogestao/condogest/internal/domain/models"
	"github.com/seogestao/condogest/internal/service/finance"
)

// FinanceStore is the slice of the gateway the finance screen uses.
// Transactions are immutable: list and create only.
type FinanceStore interface {
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error)
}

// FinanceHandler serves the transaction ledger and its derived summary.
type FinanceHandler struct {
	store  FinanceStore
	logger *zap.Logger
}

// NewFinanceHandler constructs the finance adapter.
func NewFinanceHandler(store FinanceStore, logger *zap.Logger) *FinanceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FinanceHandler{store: store, logger: logger}
}

// ListTransactions returns the ledger, most recent first.
func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	transactions, err := h.store.ListTransactions(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing transactions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load transactions"})
		return
	}
	c.JSON(http.StatusOK, transactions)
}

type createTransactionRequest struct {
	Date        string                 `json:"date" binding:"required"`
	Description string                 `json:"description" binding:"required"`
	Amount      float64                `json:"amount" binding:"required,gt=0"`
	IVARate     *int                   `json:"ivaRate" binding:"required"`
	Type        models.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Category    string                 `json:"category"`
}

// CreateTransaction registers a movement. Amounts are magnitudes; direction
// comes solely from the type field.
func (h *FinanceHandler) CreateTransaction(c *gin.Context) {
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !models.ValidVATRate(*req.IVARate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ivaRate must be one of 0, 6, 13, 23"})
		return
	}

	created, err := h.store.CreateTransaction(c.Request.Context(), models.Transaction{
		Date:        req.Date,
		Description: req.Description,
		Amount:      req.Amount,
		IVARate:     *req.IVARate,
		Type:        req.Type,
		Category:    req.Category,
	})
	if err != nil {
		h.logger.Error("failed creating transaction", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create transaction"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

type financeSummaryResponse struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
	VAT6         float64 `json:"vat6"`
	VAT23        float64 `json:"vat23"`
	LegalReserve float64 `json:"legalReserve"`
	IRSRetention float64 `json:"irsRetention"`
}

// Summary derives the finance screen's figures: VAT buckets, the legal 10%
// reserve and IRS retentions.
func (h *FinanceHandler) Summary(c *gin.Context) {
	transactions, err := h.store.ListTransactions(c.Request.Context())
	if err != nil {
		h.logger.Error("failed loading transactions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load summary"})
		return
	}

	income := finance.TotalIncome(transactions)
	c.JSON(http.StatusOK, financeSummaryResponse{
		TotalIncome:  income,
		TotalExpense: finance.TotalExpense(transactions),
		Balance:      finance.TotalBalance(transactions),
		VAT6:         finance.VATTotal(transactions, 6),
		VAT23:        finance.VATTotal(transactions, 23),
		LegalReserve: finance.LegalReserve(income),
		IRSRetention: finance.IRSRetentionTotal(transactions),
	})
}
