package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seogestao/condogest/internal/domain/models"
	"github.com/seogestao/condogest/internal/server/auth"
)

// ProfileStore is the slice of the gateway the auth handler needs.
type ProfileStore interface {
	GetProfileByEmail(ctx context.Context, email string) (models.Profile, error)
}

// AuthHandler resolves sign-ins into signed profile tokens.
type AuthHandler struct {
	store  ProfileStore
	issuer *auth.TokenIssuer
	logger *zap.Logger
}

// NewAuthHandler constructs the sign-in adapter.
func NewAuthHandler(store ProfileStore, issuer *auth.TokenIssuer, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{store: store, issuer: issuer, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token   string         `json:"token"`
	Profile models.Profile `json:"profile"`
}

// Login checks credentials and issues a profile token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile, err := h.store.GetProfileByEmail(c.Request.Context(), req.Email)
	if err != nil || !auth.CheckPassword(req.Password, profile.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	profile.PasswordHash = ""
	token, err := h.issuer.Issue(profile)
	if err != nil {
		h.logger.Error("failed issuing token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign in"})
		return
	}

	c.JSON(http.StatusOK, loginResponse{Token: token, Profile: profile})
}

// Me returns the signed-in profile, refreshed from the gateway. The refresh
// is raced against a five-second bound; on expiry or failure the token's
// claims stand in, so a slow profile table never blocks the session.
func (h *AuthHandler) Me(c *gin.Context) {
	claimed, ok := auth.CurrentProfile(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), auth.ProfileFetchTimeout)
	defer cancel()

	fresh, err := h.store.GetProfileByEmail(ctx, claimed.Email)
	if err != nil {
		h.logger.Warn("profile refresh unavailable", zap.String("email", claimed.Email), zap.Error(err))
		c.JSON(http.StatusOK, claimed)
		return
	}

	fresh.PasswordHash = ""
	c.JSON(http.StatusOK, fresh)
}
