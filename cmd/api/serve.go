package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cvhub-backend/config"
	"cvhub-backend/internal/delivery/http/middleware"
	v1 "cvhub-backend/internal/delivery/http/v1"
	"cvhub-backend/internal/domain"
	"cvhub-backend/internal/repository/postgres"
	"cvhub-backend/internal/scheduler"
	"cvhub-backend/internal/usecase"
	"cvhub-backend/migrations"
	"cvhub-backend/pkg/auth"
	"cvhub-backend/pkg/database"
	"cvhub-backend/pkg/logger"
	"cvhub-backend/pkg/redis"
	"cvhub-backend/pkg/security"
	"cvhub-backend/pkg/supabase"
	"cvhub-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

// bootstrap loads config, initializes logging and opens the database pool.
func bootstrap(ctx context.Context) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger.Init(!cfg.IsProduction())
	gin.SetMode(cfg.GinMode)

	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, database.PoolConfig{
		MaxConns: int32(cfg.DBMaxConns),
		MinConns: int32(cfg.DBMinConns),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	return cfg, dbPool, nil
}

func runServe(ctx context.Context) error {
	// 1. Config, logger, database
	cfg, dbPool, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer dbPool.Close()
	logger.Log.Info("Starting cvhub backend", "port", cfg.Port)

	env := "development"
	if cfg.IsProduction() {
		env = "production"
	}
	secLog := security.InitSecurityLogger("cvhub-backend", env)
	defer secLog.Sync()

	if cfg.AutoMigrate {
		applied, err := database.Migrate(ctx, dbPool, migrations.FS)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Log.Info("Migrations applied", "count", applied)
	}

	// 2. Redis is optional: rate limiting falls back to memory and the
	// directory cache is bypassed.
	redisReady := false
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, continuing without it", "error", err)
	} else {
		redisReady = true
		defer redis.Close()
	}
	cache := redis.NewCache(redis.Client(), logger.Log)

	// 3. Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	accountRepo := postgres.NewAccountRepository(dbPool)
	applicantRepo := postgres.NewApplicantProfileRepository(dbPool)
	companyRepo := postgres.NewCompanyProfileRepository(dbPool)
	cvRepo := postgres.NewCVRepository(dbPool)
	adRepo := postgres.NewAdvertisementRepository(dbPool)
	bookmarkRepo := postgres.NewBookmarkRepository(dbPool)

	// 4. UseCases
	validate := validation.New()
	identity := supabase.NewAdminClient(cfg.SupabaseUrl, cfg.SupabaseServiceRoleKey)

	var searchCache domain.SearchCache = cache
	authUC := usecase.NewAuthUsecase(userRepo, accountRepo, identity, validate)
	cvUC := usecase.NewCVUsecase(cvRepo, searchCache, validate)
	directoryUC := usecase.NewDirectoryUsecase(cvRepo, applicantRepo, userRepo, searchCache, cfg.DirectoryCacheTTL())
	bookmarkUC := usecase.NewBookmarkUsecase(bookmarkRepo)
	adUC := usecase.NewAdvertisementUsecase(adRepo, companyRepo, validate)

	healthDeps := map[string]usecase.Pinger{
		"database": usecase.PingFunc(dbPool.Ping),
		"redis":    nil,
	}
	if redisReady {
		healthDeps["redis"] = usecase.PingFunc(redis.HealthCheck)
	}
	healthUC := usecase.NewHealthUsecase(healthDeps)

	// 5. Auth (JWKS for asymmetric tokens, shared secret for HS256)
	jwksProvider := auth.NewProvider(auth.JWKSURL(cfg.SupabaseUrl))
	sessions := middleware.NewSessionResolver(jwksProvider, cfg.SupabaseJWTSecret, authUC)

	// 6. Scheduled jobs
	jobsCtx, stopJobs := context.WithCancel(context.Background())
	defer stopJobs()
	if cfg.AdExpirySchedule != "" {
		sched := scheduler.New(adUC, cfg.AdExpirySchedule, logger.Log)
		if err := sched.Start(jobsCtx); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
		defer sched.Stop()
	}

	// 7. Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:          authUC,
		CVUC:            cvUC,
		DirectoryUC:     directoryUC,
		BookmarkUC:      bookmarkUC,
		AdvertisementUC: adUC,
		HealthUC:        healthUC,
		Sessions:        sessions,
		IsServiceKey:    identity.IsServiceKey,
		Config:          cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		logger.Log.Error("Listen failed", "error", err)
		return err
	}
	logger.Log.Info("Shutting down server...")
	stopJobs()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
	return nil
}
