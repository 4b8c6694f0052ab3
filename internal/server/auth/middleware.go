package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/seogestao/condogest/internal/domain/models"
)

const profileKey = "auth.profile"

// Middleware resolves the bearer token into a profile on the request context.
func Middleware(issuer *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := issuer.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(profileKey, claims.Profile())
		c.Next()
	}
}

// RequireAdmin rejects requests from non-ADMIN profiles.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := CurrentProfile(c)
		if !ok || p.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}
		c.Next()
	}
}

// CurrentProfile returns the profile resolved by Middleware.
func CurrentProfile(c *gin.Context) (models.Profile, bool) {
	v, ok := c.Get(profileKey)
	if !ok {
		return models.Profile{}, false
	}
	p, ok := v.(models.Profile)
	return p, ok
}
