package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/clubsync/events-backend/internal/config"
	"github.com/clubsync/events-backend/internal/handler"
	"github.com/clubsync/events-backend/internal/middleware"
	"github.com/clubsync/events-backend/internal/response"
	"github.com/clubsync/events-backend/internal/service"
)

// Per-route denial messages for admin-gated writes.
const (
	denyAddEvents        = "Access Denied: Only admins can add events"
	denyAddAnnouncements = "Access Denied: Only admins can add announcements"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth         *handler.AuthHandler
	Event        *handler.EventHandler
	Announcement *handler.AnnouncementHandler
}

// SetupRouter configures all Gin routes with appropriate middlewares.
// Paths are mounted at the root; they are part of the public contract.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Request ID, compression, and body cap apply to every route.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Brotli())
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for credential routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── Auth (Public, Rate Limited) ───────────────────────────────────
	router.POST("/register", authLimiter.Middleware(), handlers.Auth.RegisterAdmin)
	router.POST("/register-user", authLimiter.Middleware(), handlers.Auth.RegisterUser)
	router.POST("/login", authLimiter.Middleware(), handlers.Auth.LoginAdmin)
	router.POST("/login-user", authLimiter.Middleware(), handlers.Auth.LoginUser)

	// ─── Events ────────────────────────────────────────────────────────
	events := router.Group("/events")
	{
		events.GET("", handlers.Event.List)
		events.GET("/admin/:username", handlers.Event.ListByOwner)
		// Older clients fetch the owner filter under /user; same handler.
		events.GET("/user/:username", handlers.Event.ListByOwner)
		events.POST("",
			middleware.RequireAdminJWT(authService, denyAddEvents),
			handlers.Event.Create,
		)
	}

	// ─── Announcements ─────────────────────────────────────────────────
	announcements := router.Group("/announcements")
	{
		announcements.GET("", handlers.Announcement.List)
		announcements.GET("/admin/:username", handlers.Announcement.ListByOwner)
		announcements.POST("",
			middleware.RequireAdminJWT(authService, denyAddAnnouncements),
			handlers.Announcement.Create,
		)
	}

	return router
}
