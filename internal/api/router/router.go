package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"summer-success/tracker/config"
	"summer-success/tracker/internal/api/handler"
	"summer-success/tracker/internal/api/middleware"
	"summer-success/tracker/internal/dto"
	"summer-success/tracker/pkg/jwt"
	"summer-success/tracker/pkg/metrics"
	"summer-success/tracker/pkg/redis"
)

// Pinger a dependency the health check probes, e.g. *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

const defaultBodyLimit = 6 << 20 // 6MB, leaves room for a 5MB calendar upload

// Setup builds the gin engine. rdb may be nil, in which case token
// revocation and rate limiting are disabled.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, db Pinger, logger *zap.Logger) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)

	if err := dto.RegisterValidators(); err != nil {
		return nil, err
	}

	var (
		checker middleware.TokenChecker
		limiter middleware.RateLimiter
	)
	if rdb != nil {
		checker, limiter = rdb, rdb
	}

	bodyLimit := cfg.Server.BodyLimitBytes
	if bodyLimit <= 0 {
		bodyLimit = defaultBodyLimit
	}

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger, "/health", "/metrics"))
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(bodyLimit))

	// ── ops ──
	r.GET("/health", func(c *gin.Context) {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	limit := middleware.RateLimit(limiter, cfg.Server.RateLimit.Requests, cfg.Server.RateLimit.Window)
	auth := middleware.JWTAuth(jwtMgr, checker)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		v1.POST("/auth/login", limit, h.Auth.Login)
		v1.POST("/auth/logout", auth, h.Auth.Logout)

		v1.GET("/catalog", h.Catalog.GetCatalog)

		// reads are public
		v1.GET("/children", h.Child.ListChildren)
		v1.GET("/children/:id", h.Child.GetChild)
		v1.GET("/activities", h.Activity.ListActivities)
		v1.GET("/activities/:id", h.Activity.GetActivity)
		v1.GET("/behaviors", h.Behavior.ListBehaviors)
		v1.GET("/vacation-days", h.Vacation.ListVacationDays)
		v1.GET("/vacation-days/calendar.ics", h.Vacation.ExportCalendar)
		v1.GET("/progress/daily", h.Progress.GetDaily)
		v1.GET("/dashboard", h.Progress.GetDashboard)
		v1.GET("/stats/period", h.Stats.GetPeriod)
		v1.GET("/stats/analytics", h.Stats.GetAnalytics)
		v1.GET("/export/:format", h.Export.Export)
		v1.GET("/preferences", h.Preferences.GetPreferences)

		// mutations need the parent token
		authorized := v1.Group("")
		authorized.Use(auth, limit)
		{
			authorized.POST("/children", h.Child.CreateChild)

			authorized.POST("/activities", h.Activity.CreateActivity)
			authorized.PUT("/activities/:id", h.Activity.UpdateActivity)
			authorized.PATCH("/activities/:id/completed", h.Activity.ToggleCompleted)
			authorized.DELETE("/activities/:id", h.Activity.DeleteActivity)

			authorized.POST("/behaviors", h.Behavior.CreateBehavior)
			authorized.DELETE("/behaviors/:id", h.Behavior.DeleteBehavior)

			authorized.POST("/vacation-days/toggle", h.Vacation.ToggleVacationDay)
			authorized.POST("/vacation-days/import", h.Vacation.ImportCalendar)
			authorized.PUT("/vacation-days/:date", h.Vacation.SetVacationDay)

			authorized.PUT("/preferences", h.Preferences.UpdatePreferences)
		}
	}

	return r, nil
}
