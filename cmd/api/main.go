package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/BuildForSDG/Team-083-Backend/internal/api/http"
	"github.com/BuildForSDG/Team-083-Backend/internal/api/http/handlers"
	"github.com/BuildForSDG/Team-083-Backend/internal/auth"
	"github.com/BuildForSDG/Team-083-Backend/internal/config"
	"github.com/BuildForSDG/Team-083-Backend/internal/events"
	"github.com/BuildForSDG/Team-083-Backend/internal/observability"
	"github.com/BuildForSDG/Team-083-Backend/internal/persistence"
	"github.com/BuildForSDG/Team-083-Backend/internal/repository"
	"github.com/BuildForSDG/Team-083-Backend/internal/service"
	"github.com/BuildForSDG/Team-083-Backend/internal/storage"
	"github.com/BuildForSDG/Team-083-Backend/internal/worker"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	userProfileRepo := repository.NewUserProfileRepository(pool)
	smeProfileRepo := repository.NewSmeProfileRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	fundRequestRepo := repository.NewFundRequestRepository(pool)

	assets := storage.NewLocalStore(cfg.Storage)
	dispatcher := events.NewInMemoryDispatcher()

	accountService := service.NewAccountService(*cfg, service.AccountDependencies{
		UserRepo:        userRepo,
		UserProfileRepo: userProfileRepo,
		SmeProfileRepo:  smeProfileRepo,
		Assets:          assets,
		Dispatcher:      dispatcher,
	})
	profileService := service.NewSmeProfileService(smeProfileRepo, dispatcher)
	categoryService := service.NewCategoryService(categoryRepo, redis.Client)
	fundRequestService := service.NewFundRequestService(fundRequestRepo, smeProfileRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger)

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(accountService.TokenManager())
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{BodyLimit: int(cfg.Storage.MaxAvatarBytes) * 2})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	app.Static("/", cfg.Storage.PublicDir)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		BasePath:       cfg.App.BasePath,
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(accountService, assets, cfg.Storage),
		Profiles:       handlers.NewSmeProfilesHandler(profileService),
		Categories:     handlers.NewCategoriesHandler(categoryService),
		FundRequests:   handlers.NewFundRequestsHandler(fundRequestService),
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
