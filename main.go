package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"taskly-be/internal/cache"
	"taskly-be/internal/config"
	"taskly-be/internal/database"
	"taskly-be/internal/jwt"
	"taskly-be/internal/logging"
	"taskly-be/internal/repository"
	"taskly-be/internal/server"
	"taskly-be/internal/service"
	"taskly-be/internal/session"
	"taskly-be/internal/validation"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.Load()
	logger := logging.NewFromConfig(cfg.LogLevel, cfg.LogFormat)
	if !cfg.EnvFileLoaded() {
		logger.Debug("no .env file found, using environment only")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped with error", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	// Connect to database
	db, err := database.NewConnection(ctx, cfg.DatabaseDriver, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.RunMigrations(db, cfg.DatabaseDriver, logger); err != nil {
		return err
	}

	// Redis is optional; without it logout only clears the cookie.
	var revoked cache.Cache
	if cfg.RedisURL != "" {
		revoked, err = cache.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("failed to connect to Redis, continuing without session revocation", "err", err)
			revoked = nil
		} else {
			logger.Info("connected to Redis")
			defer revoked.Close()
		}
	}

	if err := validation.Setup(); err != nil {
		return err
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	sessions := session.NewManager(
		jwt.NewJWTService(cfg.JWTSecret, cfg.SessionTTL()),
		revoked,
		session.CookieOptions{Name: cfg.SessionCookieName, Secure: cfg.CookieSecure},
		logger,
	)

	gin.SetMode(gin.ReleaseMode)
	router := server.NewRouter(ctx, server.Deps{
		Tasks:      service.NewTaskService(taskRepo, categoryRepo, service.SystemClock(cfg.Location())),
		Categories: service.NewCategoryService(categoryRepo),
		Auth:       service.NewAuthService(userRepo),
		Users:      userRepo,
		Sessions:   sessions,
		Limits: server.RateLimits{
			RPS:       cfg.RateLimitRPS,
			Burst:     cfg.RateLimitBurst,
			AuthRPS:   cfg.RateLimitAuthRPS,
			AuthBurst: cfg.RateLimitAuthBurst,
		},
		Logger: logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", "addr", "http://localhost:"+cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
