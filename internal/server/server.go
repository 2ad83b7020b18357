package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/robertromore/budget-sub015/internal/config"
	"github.com/robertromore/budget-sub015/internal/handlers"
	"github.com/robertromore/budget-sub015/internal/middleware"
	"github.com/robertromore/budget-sub015/internal/repositories"
	"github.com/robertromore/budget-sub015/internal/services"
)

const rateLimiterSweepInterval = time.Minute

// Server holds the wired HTTP surface and the background detection worker
type Server struct {
	Echo   *echo.Echo
	Worker services.DetectionWorkerInterface

	cfg         *config.Config
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger
}

// Metrics is where the service counters are registered and /metrics reads from
type Metrics struct {
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// New wires repositories, services and handlers on top of db
func New(cfg *config.Config, db *gorm.DB, metricsReg Metrics, logger *slog.Logger) *Server {
	workspaceRepo := repositories.NewWorkspaceRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	payeeRepo := repositories.NewPayeeRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	patternRepo := repositories.NewPatternRepository(db)
	scheduleRepo := repositories.NewScheduleRepository(db)
	transferMappingRepo := repositories.NewTransferMappingRepository(db)
	payeeAliasRepo := repositories.NewPayeeAliasRepository(db)

	metrics := services.NewPrometheusMetrics(metricsReg.Registerer)
	events := services.NewPatternEventLogger(logger)

	detector := services.NewPatternDetectionService(accountRepo, transactionRepo, patternRepo, events, metrics, cfg.DetectionCriteria(), logger)
	patterns := services.NewPatternService(patternRepo, payeeRepo, scheduleRepo, events, metrics, cfg.Detection.StaleAfterDays, logger)
	transferMappings := services.NewTransferMappingService(transferMappingRepo, accountRepo, events, metrics, logger)
	payeeAliases := services.NewPayeeAliasService(payeeAliasRepo, payeeRepo, events, metrics, logger)

	breakerConfig := services.DefaultCircuitBreakerConfig()
	breakerConfig.OnStateChange = func(from, to services.BreakerState) {
		events.LogCircuitBreakerStateChange(context.Background(), "detection_worker", from.String(), to.String())
		metrics.IncrementCounter("circuit_breaker."+to.String(), map[string]string{"service": "detection_worker"})
	}
	worker := services.NewDetectionWorker(
		workspaceRepo, accountRepo, detector, patterns, metrics,
		services.NewCircuitBreaker(breakerConfig),
		cfg.Worker.Interval, cfg.Worker.MaxWorkers, logger,
	)

	s := &Server{
		Echo:        echo.New(),
		Worker:      worker,
		cfg:         cfg,
		rateLimiter: middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
		logger:      logger,
	}

	e := s.Echo
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowHeaders: []string{echo.HeaderContentType, middleware.WorkspaceIDHeader, middleware.TraceIDHeader},
	}))

	e.GET("/health", handlers.NewHealthCheckHandler(gormPinger{db}).HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(metricsReg.Gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1", s.rateLimiter.Middleware(), middleware.RequireWorkspace(workspaceRepo))
	registerPatternRoutes(api, handlers.NewPatternHandler(detector, patterns))
	registerTransferMappingRoutes(api, handlers.NewTransferMappingHandler(transferMappings))
	registerPayeeAliasRoutes(api, handlers.NewPayeeAliasHandler(payeeAliases))

	return s
}

func registerPatternRoutes(g *echo.Group, h *handlers.PatternHandler) {
	g.GET("/accounts/:accountId/patterns", h.ListAccountPatterns)
	g.POST("/accounts/:accountId/patterns/detect", h.DetectAccountPatterns)

	patterns := g.Group("/patterns")
	patterns.GET("", h.ListPatterns)
	patterns.POST("/detect", h.DetectWorkspacePatterns)
	patterns.POST("/expire", h.ExpirePatterns)
	patterns.GET("/:id", h.GetPattern)
	patterns.POST("/:id/accept", h.AcceptPattern)
	patterns.POST("/:id/dismiss", h.DismissPattern)
	patterns.POST("/:id/convert", h.ConvertPattern)
	patterns.DELETE("/:id", h.DeletePattern)
}

func registerTransferMappingRoutes(g *echo.Group, h *handlers.TransferMappingHandler) {
	mappings := g.Group("/transfer-mappings")
	mappings.GET("", h.List)
	mappings.POST("", h.Create)
	mappings.POST("/bulk", h.BulkCreate)
	mappings.POST("/match", h.Match)
	mappings.POST("/apply", h.Apply)
	mappings.POST("/similar", h.Similar)
	mappings.POST("/purge", h.Purge)
	mappings.GET("/:id", h.Get)
	mappings.DELETE("/:id", h.Delete)
}

func registerPayeeAliasRoutes(g *echo.Group, h *handlers.PayeeAliasHandler) {
	aliases := g.Group("/payee-aliases")
	aliases.GET("", h.List)
	aliases.POST("", h.Create)
	aliases.POST("/bulk", h.BulkCreate)
	aliases.POST("/match", h.Match)
	aliases.POST("/apply", h.Apply)
	aliases.POST("/similar", h.Similar)
	aliases.POST("/purge", h.Purge)
	aliases.GET("/:id", h.Get)
	aliases.DELETE("/:id", h.Delete)
}

// Run starts the background jobs and serves until ctx is cancelled, then
// drains in-flight requests within shutdownTimeout
func (s *Server) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	go s.rateLimiter.Run(ctx, rateLimiterSweepInterval)

	if s.cfg.Worker.Enabled {
		go s.Worker.Start(ctx)
	}

	s.Echo.Server.ReadTimeout = s.cfg.Server.ReadTimeout
	s.Echo.Server.WriteTimeout = s.cfg.Server.WriteTimeout

	addr := s.cfg.Server.Host + ":" + s.cfg.Server.Port
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr, "environment", s.cfg.Server.Environment)
		errCh <- s.Echo.Start(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down http server")
	return s.Echo.Shutdown(shutdownCtx)
}

// gormPinger resolves the pool lazily so a closed pool reports unhealthy
type gormPinger struct{ db *gorm.DB }

func (p gormPinger) PingContext(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
