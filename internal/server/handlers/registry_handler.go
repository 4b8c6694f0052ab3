package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seogestao/condogest/internal/domain/models"
	"github.com/seogestao/condogest/internal/server/auth"
)

// RegistryStore is the slice of the gateway covering the simple record
// registries: occurrences, visitor log, common areas, bookings and profiles.
type RegistryStore interface {
	ListOccurrences(ctx context.Context) ([]models.Occurrence, error)
	CreateOccurrence(ctx context.Context, o models.Occurrence) (models.Occurrence, error)
	UpdateOccurrenceStatus(ctx context.Context, id string, status models.OccurrenceStatus) (models.Occurrence, error)

	ListVisitors(ctx context.Context) ([]models.Visitor, error)
	CreateVisitor(ctx context.Context, v models.Visitor) (models.Visitor, error)
	MarkVisitorExit(ctx context.Context, id string) (models.Visitor, error)

	ListCommonAreas(ctx context.Context) ([]models.CommonArea, error)
	CreateCommonArea(ctx context.Context, a models.CommonArea) (models.CommonArea, error)
	UpdateCommonArea(ctx context.Context, id string, a models.CommonArea) (models.CommonArea, error)
	DeleteCommonArea(ctx context.Context, id string) error

	ListBookings(ctx context.Context) ([]models.Booking, error)
	CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error)

	ListProfiles(ctx context.Context) ([]models.Profile, error)
	CreateProfile(ctx context.Context, p models.Profile) (models.Profile, error)
	UpdateProfile(ctx context.Context, id string, p models.Profile) (models.Profile, error)
	DeleteProfile(ctx context.Context, id string) error
}

// RegistryHandler serves the simple list-and-form registries.
type RegistryHandler struct {
	store  RegistryStore
	logger *zap.Logger
}

// NewRegistryHandler constructs the registry adapter.
func NewRegistryHandler(store RegistryStore, logger *zap.Logger) *RegistryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistryHandler{store: store, logger: logger}
}

func (h *RegistryHandler) fail(c *gin.Context, msg string, err error) {
	h.logger.Error(msg, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// --- occurrences ---

// ListOccurrences returns the incident log, most recent first.
func (h *RegistryHandler) ListOccurrences(c *gin.Context) {
	out, err := h.store.ListOccurrences(c.Request.Context())
	if err != nil {
		h.fail(c, "failed to load occurrences", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type occurrenceRequest struct {
	Title        string                    `json:"title" binding:"required"`
	Description  string                    `json:"description" binding:"required"`
	Category     models.OccurrenceCategory `json:"category" binding:"required,oneof=MAINTENANCE NOISE SECURITY OTHER"`
	FractionCode string                    `json:"fractionCode"`
}

// CreateOccurrence reports an incident; residents may file their own.
func (h *RegistryHandler) CreateOccurrence(c *gin.Context) {
	var req occurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.store.CreateOccurrence(c.Request.Context(), models.Occurrence{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Status:       models.OccurrenceOpen,
		FractionCode: req.FractionCode,
	})
	if err != nil {
		h.fail(c, "failed to create occurrence", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type occurrenceStatusRequest struct {
	Status models.OccurrenceStatus `json:"status" binding:"required,oneof=OPEN IN_PROGRESS RESOLVED"`
}

// UpdateOccurrenceStatus moves an incident through its handling states.
func (h *RegistryHandler) UpdateOccurrenceStatus(c *gin.Context) {
	var req occurrenceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.store.UpdateOccurrenceStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.fail(c, "failed to update occurrence", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// --- visitors ---

// ListVisitors returns the visitor log, latest entries first.
func (h *RegistryHandler) ListVisitors(c *gin.Context) {
	out, err := h.store.ListVisitors(c.Request.Context())
	if err != nil {
		h.fail(c, "failed to load visitors", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type visitorRequest struct {
	Name         string `json:"name" binding:"required"`
	DocID        string `json:"docId" binding:"required"`
	FractionCode string `json:"fractionCode" binding:"required"`
	EntryTime    string `json:"entryTime" binding:"required"`
}

// CreateVisitor registers an entry.
func (h *RegistryHandler) CreateVisitor(c *gin.Context) {
	var req visitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.store.CreateVisitor(c.Request.Context(), models.Visitor{
		Name:         req.Name,
		DocID:        req.DocID,
		FractionCode: req.FractionCode,
		EntryTime:    req.EntryTime,
		Status:       models.VisitorIn,
	})
	if err != nil {
		h.fail(c, "failed to create visitor", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ExitVisitor stamps the exit time and flips the visitor to OUT.
func (h *RegistryHandler) ExitVisitor(c *gin.Context) {
	updated, err := h.store.MarkVisitorExit(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "failed to mark visitor exit", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// --- common areas & bookings ---

// ListCommonAreas returns the bookable facilities.
func (h *RegistryHandler) ListCommonAreas(c *gin.Context) {
	out, err := h.store.ListCommonAreas(c.Request.Context())
	if err != nil {
		h.fail(c, "failed to load common areas", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type commonAreaRequest struct {
	Name     string  `json:"name" binding:"required"`
	Capacity int     `json:"capacity" binding:"gte=0"`
	Price    float64 `json:"price" binding:"gte=0"`
	Rules    string  `json:"rules"`
}

func (r commonAreaRequest) model() models.CommonArea {
	return models.CommonArea{Name: r.Name, Capacity: r.Capacity, Price: r.Price, Rules: r.Rules}
}

// CreateCommonArea registers a facility.
func (h *RegistryHandler) CreateCommonArea(c *gin.Context) {
	var req commonAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.store.CreateCommonArea(c.Request.Context(), req.model())
	if err != nil {
		h.fail(c, "failed to create common area", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateCommonArea overwrites a facility's fields.
func (h *RegistryHandler) UpdateCommonArea(c *gin.Context) {
	var req commonAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.store.UpdateCommonArea(c.Request.Context(), c.Param("id"), req.model())
	if err != nil {
		h.fail(c, "failed to update common area", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCommonArea removes a facility.
func (h *RegistryHandler) DeleteCommonArea(c *gin.Context) {
	if err := h.store.DeleteCommonArea(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "failed to delete common area", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListBookings returns all reservations.
func (h *RegistryHandler) ListBookings(c *gin.Context) {
	out, err := h.store.ListBookings(c.Request.Context())
	if err != nil {
		h.fail(c, "failed to load bookings", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type bookingRequest struct {
	AreaID     string `json:"areaId" binding:"required"`
	FractionID string `json:"fractionId" binding:"required"`
	Date       string `json:"date" binding:"required"`
}

// CreateBooking reserves a common area; residents may book for themselves.
func (h *RegistryHandler) CreateBooking(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.store.CreateBooking(c.Request.Context(), models.Booking{
		AreaID:     req.AreaID,
		FractionID: req.FractionID,
		Date:       req.Date,
		Status:     models.BookingPending,
	})
	if err != nil {
		h.fail(c, "failed to create booking", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// --- profiles ---

// ListProfiles returns all user profiles ordered by name.
func (h *RegistryHandler) ListProfiles(c *gin.Context) {
	out, err := h.store.ListProfiles(c.Request.Context())
	if err != nil {
		h.fail(c, "failed to load profiles", err)
		return
	}
	for i := range out {
		out[i].PasswordHash = ""
	}
	c.JSON(http.StatusOK, out)
}

type profileRequest struct {
	Name         string      `json:"name" binding:"required"`
	Email        string      `json:"email" binding:"required,email"`
	Role         models.Role `json:"role" binding:"required,oneof=ADMIN RESIDENT STAFF"`
	FractionCode string      `json:"fractionCode"`
	Password     string      `json:"password"`
}

// CreateProfile registers a user profile with its sign-in credentials.
func (h *RegistryHandler) CreateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.fail(c, "failed to hash password", err)
		return
	}

	created, err := h.store.CreateProfile(c.Request.Context(), models.Profile{
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		FractionCode: req.FractionCode,
		PasswordHash: hash,
	})
	if err != nil {
		h.fail(c, "failed to create profile", err)
		return
	}
	created.PasswordHash = ""
	c.JSON(http.StatusCreated, created)
}

// UpdateProfile overwrites a profile's name, role and fraction binding.
func (h *RegistryHandler) UpdateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.store.UpdateProfile(c.Request.Context(), c.Param("id"), models.Profile{
		Name:         req.Name,
		Role:         req.Role,
		FractionCode: req.FractionCode,
	})
	if err != nil {
		h.fail(c, "failed to update profile", err)
		return
	}
	updated.PasswordHash = ""
	c.JSON(http.StatusOK, updated)
}

// DeleteProfile removes a profile record.
func (h *RegistryHandler) DeleteProfile(c *gin.Context) {
	if err := h.store.DeleteProfile(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "failed to delete profile", err)
		return
	}
	c.Status(http.StatusNoContent)
}
