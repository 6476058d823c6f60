package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/idms/employee-portal/internal/api/http"
	"github.com/idms/employee-portal/internal/api/http/handlers"
	"github.com/idms/employee-portal/internal/auth"
	"github.com/idms/employee-portal/internal/config"
	"github.com/idms/employee-portal/internal/events"
	"github.com/idms/employee-portal/internal/observability"
	"github.com/idms/employee-portal/internal/persistence"
	"github.com/idms/employee-portal/internal/repository"
	"github.com/idms/employee-portal/internal/service"
	"github.com/idms/employee-portal/internal/session"
	"github.com/idms/employee-portal/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.App.IsProduction() && cfg.Auth.Secret == "dev-secret" {
		logger.Warn("AUTH_SECRET not set; running production with the default secret")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if pg.PoolHandle() != nil && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	var employeeRepo repository.EmployeeRepository
	if pool := pg.PoolHandle(); pool != nil {
		employeeRepo = repository.NewPostgresEmployeeRepository(pool)
	} else {
		employeeRepo = repository.NewMemoryEmployeeRepository()
	}

	// Seeding must finish before the listener starts serving reads.
	if err := repository.SeedEmployees(ctx, employeeRepo, cfg.Auth.BcryptCost, logger); err != nil {
		logger.Fatal("failed to seed employees", zap.Error(err))
	}

	knowledgeRepo, err := repository.NewKnowledgeRepository(cfg.Knowledge.BasePath)
	if err != nil {
		logger.Fatal("failed to open knowledge base", zap.Error(err))
	}
	if err := repository.SeedKnowledge(ctx, knowledgeRepo, logger); err != nil {
		logger.Fatal("failed to seed knowledge base", zap.Error(err))
	}

	var redis *persistence.Redis
	var sessionStore session.Store
	if cfg.Redis.Sessions {
		redis = persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()
		sessionStore = session.NewRedisStore(redis.Client)
	} else {
		sessionStore = session.NewMemoryStore()
	}
	sessions := session.NewManager(sessionStore, cfg.Auth.SessionTTL(), cfg.App.IsProduction())

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger, metrics))

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		EmployeeRepo: employeeRepo,
		Sessions:     sessions,
		Dispatcher:   dispatcher,
	})
	assistantService := service.NewAssistantService(knowledgeRepo, logger)
	knowledgeService := service.NewKnowledgeService(knowledgeRepo)
	analyticsService := service.NewAnalyticsService(metrics)

	authMiddleware := auth.NewAuthMiddleware(sessions, authService.TokenManager(), employeeRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService, sessions),
		Employee:       handlers.NewEmployeeHandler(),
		Assistant:      handlers.NewAssistantHandler(assistantService),
		Knowledge:      handlers.NewKnowledgeHandler(knowledgeService),
		Analytics:      handlers.NewAnalyticsHandler(analyticsService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
