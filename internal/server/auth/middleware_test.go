package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seogestao/condogest/internal/domain/models"
)

func newProtectedRouter(issuer *TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	authed := r.Group("", Middleware(issuer))
	authed.GET("/me", func(c *gin.Context) {
		p, _ := CurrentProfile(c)
		c.JSON(http.StatusOK, p)
	})
	authed.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	r := newProtectedRouter(NewTokenIssuer("secret"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddlewareRejectsForgedToken(t *testing.T) {
	r := newProtectedRouter(NewTokenIssuer("secret"))

	forged, err := NewTokenIssuer("other-secret").Issue(models.Profile{ID: "p1"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddlewareResolvesProfile(t *testing.T) {
	issuer := NewTokenIssuer("secret")
	r := newProtectedRouter(issuer)

	token, err := issuer.Issue(models.Profile{ID: "p1", Name: "Ana", Role: models.RoleResident})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Ana"`)
}

func TestRequireAdminGatesByRole(t *testing.T) {
	issuer := NewTokenIssuer("secret")
	r := newProtectedRouter(issuer)

	resident, err := issuer.Issue(models.Profile{ID: "p1", Role: models.RoleResident})
	require.NoError(t, err)
	admin, err := issuer.Issue(models.Profile{ID: "p2", Role: models.RoleAdmin})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+resident)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
