package app

import (
	"context"
	"net/http"
	"time"

	"workcurb/internal/access"
	"workcurb/internal/config"
	"workcurb/internal/middleware"
	"workcurb/internal/observability/metrics"
	"workcurb/internal/shared/apperror"
	"workcurb/internal/shared/connection"
	"workcurb/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const connectRetries = 5

// App holds the long-lived resources behind the HTTP router.
type App struct {
	DB    *gorm.DB
	Redis *redis.Client
}

// Close releases the database pool and the redis client.
func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

// BuildApp connects infrastructure, installs the middleware chain and mounts
// every feature under /api/v1.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) (*App, error) {
	log := logger.Named("app")

	db, err := connection.ConnectGORMWithRetry(cfg.Database, connectRetries)
	if err != nil {
		return nil, err
	}
	log.Info("database connection established")

	a := &App{DB: db}

	// redis only backs the Idempotency-Key cache; without it requests pass through
	if cfg.Redis.Addr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, connectRetries)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.Redis = rdb
		log.Info("redis connection established")
	}

	authz, err := newEnforcer(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	m := metrics.Default()
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.CORS(),
		metrics.GinMiddleware(m),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", healthz(db))

	var cache redis.Cmdable
	if a.Redis != nil {
		cache = a.Redis
	}

	api := router.Group("/api/v1")
	public := api.Group("")
	secured := api.Group("", middleware.PlatformAuth(cfg.Security.PlatformJWTSecret))

	registerModules(modules{
		cfg:         cfg,
		db:          db,
		public:      public,
		secured:     secured,
		authz:       authz,
		idempotency: middleware.Idempotency(cache, logger),
		metrics:     m,
		logger:      logger,
	})

	return a, nil
}

// newEnforcer enforces the role policy only when platform tokens carry roles.
func newEnforcer(cfg config.Config) (access.Enforcer, error) {
	if cfg.Security.PlatformJWTSecret == "" {
		zap.L().Named("app").Warn("PLATFORM_JWT_SECRET not set, role checks disabled")
		return access.AllowAll(), nil
	}
	return access.NewRoleEnforcer()
}

func healthz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			response.Error(c, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable, "database unreachable", nil)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	}
}
