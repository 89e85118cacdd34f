package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-finder/internal/handler"
	"github.com/noah-isme/tutor-finder/internal/middleware"
	"github.com/noah-isme/tutor-finder/internal/service"
	"github.com/noah-isme/tutor-finder/pkg/config"
	"github.com/noah-isme/tutor-finder/pkg/logger"
	corsmiddleware "github.com/noah-isme/tutor-finder/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/tutor-finder/pkg/middleware/requestid"
)

// Handlers bundles every HTTP handler the service exposes.
type Handlers struct {
	Tutors     *handler.TutorHandler
	Subjects   *handler.SubjectHandler
	FindTutors *handler.FindTutorsHandler
	Metrics    *handler.MetricsHandler
}

// NewRouter builds the engine with the shared middleware chain and every route.
// Forwarding headers are honoured only from cfg.TrustedProxies.
func NewRouter(cfg *config.Config, logr *zap.Logger, metrics *service.MetricsService, h Handlers) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	var limit gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if cfg.RateLimit.Enabled {
		limit = middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}, logr)
	}

	RegisterProbeRoutes(r, h.Metrics)
	RegisterPageRoutes(r, limit, h.FindTutors)
	RegisterAPIRoutes(r, cfg.APIPrefix, limit, h)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	return r, nil
}

// RegisterProbeRoutes registers health, readiness and metrics endpoints.
func RegisterProbeRoutes(r *gin.Engine, h *handler.MetricsHandler) {
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
	r.GET("/metrics", h.Prometheus)
}

// RegisterPageRoutes registers server-rendered pages.
func RegisterPageRoutes(r *gin.Engine, limit gin.HandlerFunc, h *handler.FindTutorsHandler) {
	r.GET("/find-tutors", limit, h.Page)
}

// RegisterAPIRoutes registers the JSON API under the configured prefix.
func RegisterAPIRoutes(r *gin.Engine, prefix string, limit gin.HandlerFunc, h Handlers) {
	api := r.Group(prefix)
	api.Use(limit, middleware.WithResponseMeta())
	{
		api.GET("/tutors/search", h.Tutors.Search)
		api.GET("/subjects/list", h.Subjects.List)
		api.GET("/find-tutors", h.FindTutors.View)
	}
}
