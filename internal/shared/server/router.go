package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "recruit-backend/internal/auth"
	"recruit-backend/internal/matching"
	"recruit-backend/internal/requirements"
	"recruit-backend/internal/shared/config"
	"recruit-backend/internal/shared/metrics"
	"recruit-backend/internal/shared/server/middleware"
	"recruit-backend/internal/shared/server/respond"
	"recruit-backend/internal/submissions"
	"recruit-backend/internal/users"
)

// RouterDeps carries the handlers the router wires up. Handlers are built by
// bootstrap so the router stays free of storage and service construction.
type RouterDeps struct {
	Config              config.Config
	UsersHandler        *users.Handler
	RequirementsHandler *requirements.Handler
	SubmissionsHandler  *submissions.Handler
	MatchingHandler     *matching.Handler
	GoogleAuth          *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.Env),
		middleware.RateLimit(rateLimitConfig()),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}
	if deps.RequirementsHandler != nil {
		deps.RequirementsHandler.RegisterRoutes(api)
	}
	if deps.SubmissionsHandler != nil {
		deps.SubmissionsHandler.RegisterRoutes(api)
	}
	if deps.MatchingHandler != nil {
		deps.MatchingHandler.RegisterRoutes(api)
	}

	r.GET("/metrics", metrics.Handler())

	return r
}

// rateLimitConfig throttles analysis kicks and uploads harder than reads.
func rateLimitConfig() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"ANALYZE": {Rate: 0.5, Burst: 5},
			"UPLOAD":  {Rate: 1, Burst: 10},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method != http.MethodPost {
				return ""
			}
			path := c.Request.URL.Path
			switch {
			case strings.HasSuffix(path, "/analyze"):
				return "ANALYZE"
			case strings.HasSuffix(path, "/submissions"):
				return "UPLOAD"
			default:
				return ""
			}
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
