package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seogestao/condogest/pkg/clients/gemini"
)

// LegalHandler proxies free-text questions to the legal drafting assistant.
type LegalHandler struct {
	bridge gemini.Client
	logger *zap.Logger
}

// NewLegalHandler constructs the legal assistant adapter.
func NewLegalHandler(bridge gemini.Client, logger *zap.Logger) *LegalHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LegalHandler{bridge: bridge, logger: logger}
}

type legalAdviceRequest struct {
	Query string `json:"query" binding:"required"`
}

// Advice answers a legal question about the horizontal property regime.
// Bridge failures surface as the fallback text, never as an HTTP error.
func (h *LegalHandler) Advice(c *gin.Context) {
	var req legalAdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	answer := h.bridge.LegalAdvice(c.Request.Context(), req.Query)
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
