package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/darkroom/server/cmd/server/docs" // swagger docs
	"github.com/darkroom/server/internal/port/inbound"
	"github.com/darkroom/server/internal/port/outbound"
	"github.com/darkroom/server/internal/shared/config"
	"github.com/darkroom/server/internal/shared/logger"
	"github.com/darkroom/server/internal/utils/metrics"
	"github.com/darkroom/server/internal/utils/middleware"
)

// Dependencies holds all injected dependencies.
type Dependencies struct {
	Config      *config.Config
	Logger      *logger.Logger
	ZapLogger   *zap.Logger
	Metrics     *metrics.Metrics
	DB          *gorm.DB
	Redis       goredis.UniversalClient
	RateLimiter outbound.RateLimiterPort

	// Domains
	PhotoDomain  inbound.PhotoDomain
	NotifyDomain inbound.NotifyDomain

	// HTTP Handlers
	PhotoHandler  inbound.PhotoHttpPort
	NotifyHandler inbound.NotifyHttpPort
}

// App represents the application.
type App struct {
	deps    *Dependencies
	router  *gin.Engine
	cleanup func()
}

// New creates a new application instance.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	deps, cleanup, err := InitializeDependencies(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init dependencies: %w", err)
	}

	app := NewWithDependencies(deps)
	app.cleanup = cleanup
	return app, nil
}

// NewWithDependencies creates an application from already built dependencies.
func NewWithDependencies(deps *Dependencies) *App {
	app := &App{deps: deps, cleanup: func() {}}
	app.router = app.setupRouter()
	return app
}

// setupRouter creates and configures the Gin router.
func (a *App) setupRouter() *gin.Engine {
	cfg := a.deps.Config

	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Apply global middleware
	r.Use(middleware.Recovery(a.deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(a.deps.Logger))
	r.Use(middleware.Metrics(a.deps.Metrics))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.Server.AllowedOrigins
	r.Use(middleware.CORS(corsCfg))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if a.deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	if cfg.Server.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
	}

	a.registerRoutes(r)

	return r
}

// registerRoutes registers the public API.
func (a *App) registerRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.Use(middleware.RateLimit(a.deps.RateLimiter, middleware.RateLimitConfig{
		Limit:   a.deps.Config.RateLimit.Limit,
		Window:  a.deps.Config.RateLimit.Window,
		Metrics: a.deps.Metrics,
		Logger:  a.deps.Logger,
	}))

	api.POST("/uploadImage", a.deps.PhotoHandler.UploadImage)
	api.POST("/storePhoneNumber", a.deps.NotifyHandler.StorePhoneNumber)
}

// Router returns the HTTP router.
func (a *App) Router() *gin.Engine {
	return a.router
}

// Logger returns the HTTP logger.
func (a *App) Logger() *logger.Logger {
	return a.deps.Logger
}

// Stop releases resources in reverse construction order.
func (a *App) Stop() {
	if a.cleanup != nil {
		a.cleanup()
	}
}
