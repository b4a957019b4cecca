// Package app assembles the registry service from configuration: it selects
// the storage backend, attaches event sinks, and builds the HTTP router.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"doblink/internal/config"
	"doblink/internal/database"
	_ "doblink/internal/docs" // Import swagger docs
	apperrors "doblink/internal/errors"
	"doblink/internal/handlers"
	"doblink/internal/ledger"
	"doblink/internal/logger"
	"doblink/internal/metrics"
	"doblink/internal/middleware"
	"doblink/internal/models"
	"doblink/internal/registry"
	"doblink/internal/services"
	"doblink/internal/validator"
)

// App holds the wired registry service and the connections behind it.
type App struct {
	cfg *config.Config

	dbManager *database.Manager
	redis     *redis.Client
	nats      *nats.Conn

	promRegistry *prometheus.Registry

	Registry services.RegistryServicer
	Audit    services.AuditServicer
}

// Option configures an App.
type Option func(*options)

type options struct {
	clock ledger.Clock
	sinks []ledger.EventSink
}

// WithClock overrides the ledger clock.
func WithClock(clock ledger.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithEventSink adds a sink that receives every committed event.
func WithEventSink(sink ledger.EventSink) Option {
	return func(o *options) { o.sinks = append(o.sinks, sink) }
}

// New connects the configured backend and assembles the registry service.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{cfg: cfg, promRegistry: prometheus.NewRegistry()}
	a.promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	sinks := ledger.MultiSink{ledger.NewLogSink(logger.Get())}
	sinks = append(sinks, o.sinks...)

	backend, db, err := a.openBackend(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	if db != nil {
		sinks = append(sinks, ledger.NewGormSink(db))
	}

	if cfg.NATSURL != "" {
		nc, err := ledger.ConnectNats(cfg.NATSURL)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		a.nats = nc
		sinks = append(sinks, ledger.NewNatsSink(nc, cfg.NATSSubjectPrefix))
	}

	host := ledger.NewHost(backend, o.clock, sinks)
	a.Registry = services.NewRegistryService(host, registry.New(), metrics.New(a.promRegistry))
	a.Audit = services.NewAuditService(db)

	if err := a.bootstrap(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}

// openBackend connects the configured store. The returned *gorm.DB is nil
// unless the backend is SQL.
func (a *App) openBackend(ctx context.Context) (ledger.Backend, *gorm.DB, error) {
	log := logger.Get()

	switch a.cfg.StoreBackend {
	case config.BackendMemory:
		log.Warnw("using in-memory store; registry state is lost on restart")
		return ledger.NewMemoryStore(), nil, nil

	case config.BackendRedis:
		opts, err := redis.ParseURL(a.cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse redis URL: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping failed: %w", err)
		}
		a.redis = client
		log.Infow("using redis store", "addr", opts.Addr, "prefix", a.cfg.RedisPrefix)
		return ledger.NewRedisStore(client, a.cfg.RedisPrefix), nil, nil

	case config.BackendPostgres, config.BackendSQLite:
		manager, err := database.NewManager(database.NewConfig(a.cfg))
		if err != nil {
			return nil, nil, err
		}
		a.dbManager = manager
		if err := manager.Migrate(); err != nil {
			return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		log.Infow("using SQL store", "driver", a.cfg.StoreBackend)
		return ledger.NewGormStore(manager.DB()), manager.DB(), nil
	}

	return nil, nil, fmt.Errorf("unsupported store backend %q", a.cfg.StoreBackend)
}

// bootstrap initializes the registry with ADMIN_ADDRESS if it has no admin yet.
func (a *App) bootstrap(ctx context.Context) error {
	if a.cfg.AdminAddress == "" {
		return nil
	}
	if !models.IsValidAddress(a.cfg.AdminAddress) {
		return fmt.Errorf("invalid ADMIN_ADDRESS %q", a.cfg.AdminAddress)
	}

	_, err := a.Registry.GetAdmin(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrAdminNotFound) {
		return fmt.Errorf("failed to read registry admin: %w", err)
	}

	admin := models.Address(a.cfg.AdminAddress)
	if err := a.Registry.Init(ctx, admin, admin); err != nil {
		return fmt.Errorf("failed to initialize registry: %w", err)
	}
	a.Audit.Log(admin, "INIT_REGISTRY", "registry", "", "", map[string]any{"source": "bootstrap"})
	return nil
}

// Health reports whether the backing store is reachable.
func (a *App) Health(ctx context.Context) error {
	switch {
	case a.dbManager != nil:
		sqlDB, err := a.dbManager.DB().DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	case a.redis != nil:
		return a.redis.Ping(ctx).Err()
	}
	return nil
}

// NewRouter builds the HTTP API.
func (a *App) NewRouter() *gin.Engine {
	validator.Register()

	tokenHandler := handlers.NewTokenHandler(a.Registry, a.Audit)
	investmentHandler := handlers.NewInvestmentHandler(a.Registry, a.Audit)
	pipelineHandler := handlers.NewPipelineHandler(a.Registry, a.Audit)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(a.promRegistry, promhttp.HandlerOpts{})))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := a.Health(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "store": a.cfg.StoreBackend})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	v1.GET("/token", tokenHandler.GetTokenInfo)
	v1.GET("/admin", tokenHandler.GetAdmin)
	v1.GET("/investments", investmentHandler.GetAllInvestments)
	v1.GET("/investments/:id", investmentHandler.GetInvestment)
	v1.GET("/buyers/:address/investments", investmentHandler.GetBuyerInvestments)
	v1.GET("/tokens/:token_id/total", investmentHandler.GetTokenTotalInvestments)
	v1.GET("/stats", investmentHandler.GetStats)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(a.cfg.JWTSecret))
	protected.PUT("/token", tokenHandler.UpdateTokenInfo)
	protected.POST("/investments", investmentHandler.CreateInvestment)
	protected.PUT("/investments/:id/status", investmentHandler.UpdateInvestmentStatus)

	// Pipeline routes (API key auth)
	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(a.cfg.PipelineAPIKey))
	pipeline.POST("/init", pipelineHandler.Init)

	return router
}

// Close releases every connection the App opened.
func (a *App) Close() error {
	var errs []error
	if a.nats != nil {
		if err := a.nats.Drain(); err != nil {
			errs = append(errs, fmt.Errorf("drain nats: %w", err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if a.dbManager != nil {
		if err := a.dbManager.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	return errors.Join(errs...)
}
