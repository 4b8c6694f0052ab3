package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/seogestao/condogest/internal/server/auth"
	"github.com/seogestao/condogest/internal/server/handlers"
)

// Handlers bundles the request adapters the router mounts.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Dashboard   *handlers.DashboardHandler
	Fractions   *handlers.FractionHandler
	Finance     *handlers.FinanceHandler
	Maintenance *handlers.MaintenanceHandler
	Assemblies  *handlers.AssemblyHandler
	Legal       *handlers.LegalHandler
	Registry    *handlers.RegistryHandler
	Staff       *handlers.StaffHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, issuer *auth.TokenIssuer, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/auth/login", h.Auth.Login)

	authed := api.Group("", auth.Middleware(issuer))
	authed.GET("/auth/me", h.Auth.Me)

	authed.GET("/dashboard", h.Dashboard.Overview)

	authed.GET("/fractions", h.Fractions.List)
	authed.GET("/transactions", h.Finance.ListTransactions)
	authed.GET("/finance/summary", h.Finance.Summary)
	authed.GET("/inspections", h.Maintenance.List)
	authed.GET("/assemblies", h.Assemblies.List)
	authed.GET("/occurrences", h.Registry.ListOccurrences)
	authed.GET("/visitors", h.Registry.ListVisitors)
	authed.GET("/common-areas", h.Registry.ListCommonAreas)
	authed.GET("/bookings", h.Registry.ListBookings)
	authed.GET("/staff", h.Staff.List)

	authed.POST("/legal/advice", h.Legal.Advice)

	// Residents may report incidents and book common areas themselves.
	authed.POST("/occurrences", h.Registry.CreateOccurrence)
	authed.POST("/bookings", h.Registry.CreateBooking)

	admin := authed.Group("", auth.RequireAdmin())
	admin.POST("/fractions", h.Fractions.Create)
	admin.PUT("/fractions/:id", h.Fractions.Update)
	admin.DELETE("/fractions/:id", h.Fractions.Delete)

	admin.POST("/transactions", h.Finance.CreateTransaction)

	admin.POST("/inspections", h.Maintenance.Create)
	admin.PATCH("/inspections/:id/status", h.Maintenance.UpdateStatus)
	admin.DELETE("/inspections/:id", h.Maintenance.Delete)

	admin.POST("/notices", h.Assemblies.DraftNotice)
	admin.POST("/assemblies", h.Assemblies.Schedule)
	admin.POST("/assemblies/:id/cancel", h.Assemblies.Cancel)
	admin.POST("/assemblies/:id/minutes/start", h.Assemblies.StartMinuting)
	admin.POST("/minutes/attendees/toggle", h.Assemblies.ToggleAttendee)
	admin.POST("/minutes/resolutions/:index", h.Assemblies.PatchResolution)
	admin.POST("/assemblies/:id/minutes/finalize", h.Assemblies.FinalizeMinutes)

	admin.PATCH("/occurrences/:id/status", h.Registry.UpdateOccurrenceStatus)
	admin.POST("/visitors", h.Registry.CreateVisitor)
	admin.POST("/visitors/:id/exit", h.Registry.ExitVisitor)
	admin.POST("/common-areas", h.Registry.CreateCommonArea)
	admin.PUT("/common-areas/:id", h.Registry.UpdateCommonArea)
	admin.DELETE("/common-areas/:id", h.Registry.DeleteCommonArea)

	admin.GET("/profiles", h.Registry.ListProfiles)
	admin.POST("/profiles", h.Registry.CreateProfile)
	admin.PUT("/profiles/:id", h.Registry.UpdateProfile)
	admin.DELETE("/profiles/:id", h.Registry.DeleteProfile)

	admin.POST("/staff", h.Staff.Create)
	admin.PUT("/staff/:id", h.Staff.Update)
	admin.DELETE("/staff/:id", h.Staff.Delete)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
