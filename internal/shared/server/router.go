package server

import (
	"github.com/gin-gonic/gin"

	"seotext-backend/internal/readability"
	"seotext-backend/internal/services/health"
	"seotext-backend/internal/shared/config"
	"seotext-backend/internal/shared/metrics"
	"seotext-backend/internal/shared/server/middleware"
	"seotext-backend/internal/shared/telemetry"
	"seotext-backend/internal/texts"
	"seotext-backend/internal/uploads"
)

// RouterDeps carries the handlers the router mounts. Nil handlers are skipped.
type RouterDeps struct {
	Config             config.Config
	HealthHandler      *health.Handler
	TextHandler        *texts.Handler
	ReadabilityHandler *readability.Handler
	UploadHandler      *uploads.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	// Forwarding headers are only honored from configured proxies; otherwise the
	// rate limiter would key on a client-chosen X-Forwarded-For.
	if err := r.SetTrustedProxies(deps.Config.TrustedProxies); err != nil {
		telemetry.Error("router.trusted_proxies_invalid", map[string]any{
			"err":     err.Error(),
			"proxies": deps.Config.TrustedProxies,
		})
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)
	if deps.Config.RateLimitRPS > 0 {
		base := middleware.RateLimitRule{Rate: deps.Config.RateLimitRPS, Burst: deps.Config.RateLimitBurst}
		r.Use(middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				middleware.GroupDefault: base,
				middleware.GroupRead:    {Rate: base.Rate * 2, Burst: base.Burst * 2},
			},
			GroupFor: middleware.MethodGroup,
		}))
	}

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	if deps.HealthHandler != nil {
		deps.HealthHandler.RegisterRoutes(api)
	}
	if deps.TextHandler != nil {
		deps.TextHandler.RegisterRoutes(api)
	}
	if deps.ReadabilityHandler != nil {
		deps.ReadabilityHandler.RegisterRoutes(api)
	}
	if deps.UploadHandler != nil {
		deps.UploadHandler.RegisterRoutes(api)
	}

	return r
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
