package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seogestao/condogest/internal/domain/models"
	"github.com/seogestao/condogest/internal/service/assembly"
)

var errFractionNotFound = errors.New("fraction not found")

// AssemblyHandler serves the assembly lifecycle: notice drafting, scheduling,
// minuting and finalization.
type AssemblyHandler struct {
	ledger    *assembly.Ledger
	fractions FractionStore
	logger    *zap.Logger
}

// NewAssemblyHandler constructs the assembly adapter.
func NewAssemblyHandler(ledger *assembly.Ledger, fractions FractionStore, logger *zap.Logger) *AssemblyHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssemblyHandler{ledger: ledger, fractions: fractions, logger: logger}
}

// List returns the assembly collection, most recent first.
func (h *AssemblyHandler) List(c *gin.Context) {
	assemblies, err := h.ledger.Assemblies(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing assemblies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load assemblies"})
		return
	}
	c.JSON(http.StatusOK, assemblies)
}

type noticeRequest struct {
	Title    string              `json:"title" binding:"required"`
	Date     string              `json:"date" binding:"required"`
	Time     string              `json:"time"`
	Location string              `json:"location"`
	Type     models.AssemblyType `json:"type" binding:"required,oneof=ORDINARY EXTRAORDINARY"`
	Agenda   string              `json:"agenda" binding:"required"`
}

func (r noticeRequest) input() assembly.NoticeInput {
	return assembly.NoticeInput{
		Title:    r.Title,
		Date:     r.Date,
		Time:     r.Time,
		Location: r.Location,
		Type:     r.Type,
		Agenda:   r.Agenda,
	}
}

// DraftNotice composes the convocation text. Nothing is persisted; the client
// holds the draft until it confirms with Schedule. Fallback text signals
// "draft unavailable" and the user may retry.
func (h *AssemblyHandler) DraftNotice(c *gin.Context) {
	var req noticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	text := h.ledger.DraftNotice(c.Request.Context(), req.input())
	c.JSON(http.StatusOK, gin.H{"noticeText": text})
}

type scheduleRequest struct {
	noticeRequest
	NoticeText string `json:"noticeText"`
}

// Schedule persists a PLANNED assembly seeded from the agenda.
func (h *AssemblyHandler) Schedule(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.ledger.Schedule(c.Request.Context(), assembly.ScheduleInput{
		NoticeInput: req.input(),
		NoticeText:  req.NoticeText,
	})
	if err != nil {
		h.logger.Error("failed scheduling assembly", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to schedule assembly"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Cancel moves a planned assembly to CANCELLED.
func (h *AssemblyHandler) Cancel(c *gin.Context) {
	updated, err := h.ledger.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondLedgerError(c, "failed cancelling assembly", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// StartMinuting initializes a working minutes draft for a planned assembly.
func (h *AssemblyHandler) StartMinuting(c *gin.Context) {
	a, err := h.ledger.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondLedgerError(c, "failed starting minutes", err)
		return
	}
	if a.Status != models.AssemblyPlanned {
		c.JSON(http.StatusConflict, gin.H{"error": "assembly is not planned"})
		return
	}

	c.JSON(http.StatusOK, h.ledger.StartMinuting(a))
}

type toggleAttendeeRequest struct {
	Draft        assembly.MinutesDraft `json:"draft" binding:"required"`
	FractionCode string                `json:"fractionCode" binding:"required"`
}

// ToggleAttendee adds or removes the fraction's owner on the working draft.
func (h *AssemblyHandler) ToggleAttendee(c *gin.Context) {
	var req toggleAttendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	fraction, err := h.findFraction(c.Request.Context(), req.FractionCode)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "fraction not found"})
		return
	}

	assembly.ToggleAttendee(&req.Draft, fraction)
	c.JSON(http.StatusOK, req.Draft)
}

type patchResolutionRequest struct {
	Draft assembly.MinutesDraft    `json:"draft" binding:"required"`
	Patch assembly.ResolutionPatch `json:"patch"`
}

type patchResolutionResponse struct {
	Draft            assembly.MinutesDraft   `json:"draft"`
	SuggestedOutcome models.ResolutionStatus `json:"suggestedOutcome"`
}

// PatchResolution merges a typed partial update into one draft resolution.
// The response carries the tally-implied outcome as advice; the declared
// status is whatever the operator entered.
func (h *AssemblyHandler) PatchResolution(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resolution index"})
		return
	}

	var req patchResolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := assembly.ApplyResolutionPatch(&req.Draft, index, req.Patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resolution index out of range"})
		return
	}

	c.JSON(http.StatusOK, patchResolutionResponse{
		Draft:            req.Draft,
		SuggestedOutcome: assembly.SuggestedOutcome(req.Draft.Resolutions[index]),
	})
}

// FinalizeMinutes merges the draft, drafts the minutes text and persists the
// COMPLETED record. On gateway failure the assembly stays PLANNED and the
// submitted draft remains valid for retry.
func (h *AssemblyHandler) FinalizeMinutes(c *gin.Context) {
	var draft assembly.MinutesDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	draft.AssemblyID = c.Param("id")

	updated, err := h.ledger.FinalizeMinutes(c.Request.Context(), draft)
	if err != nil {
		h.respondLedgerError(c, "failed finalizing minutes", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AssemblyHandler) findFraction(ctx context.Context, code string) (models.Fraction, error) {
	fractions, err := h.fractions.ListFractions(ctx)
	if err != nil {
		return models.Fraction{}, err
	}
	for _, f := range fractions {
		if f.Code == code {
			return f, nil
		}
	}
	return models.Fraction{}, errFractionNotFound
}

func (h *AssemblyHandler) respondLedgerError(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, assembly.ErrAssemblyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "assembly not found"})
	case errors.Is(err, assembly.ErrNotPlanned):
		c.JSON(http.StatusConflict, gin.H{"error": "assembly is not planned"})
	default:
		h.logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "assembly operation failed"})
	}
}
