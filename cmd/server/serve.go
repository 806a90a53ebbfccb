package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"petcare_backend/internal/config"
	"petcare_backend/internal/database"
	"petcare_backend/internal/events"
	"petcare_backend/internal/middleware"
	"petcare_backend/internal/router"
	"petcare_backend/internal/telemetry"
	"petcare_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize Logger
	utils.InitLogger(cfg.Log.Level, cfg.Log.Pretty)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelShutdown, err := telemetry.Setup(ctx, cfg.Otel)
	if err != nil {
		utils.LogError(err, "OpenTelemetry setup failed, continuing without tracing")
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := otelShutdown(shutdownCtx); err != nil {
				utils.LogWarn(err, "OpenTelemetry shutdown failed")
			}
		}()
	}

	tokens, err := utils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}

	deps := router.Dependencies{Config: cfg, Tokens: tokens}

	if cfg.Store == config.StorePostgres {
		db, err := openAndMigrate(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()
		deps.DB = db
	} else {
		utils.LogInfo("Using in-memory store; data is lost on restart")
	}

	if limiter, rdb := redisLoginLimiter(cfg); limiter != nil {
		defer func() { _ = rdb.Close() }()
		deps.Limiter = limiter
		utils.LogInfo("Login rate limiting enabled (redis)", map[string]interface{}{"per_window": cfg.Auth.LoginRateLimit, "redis_addr": cfg.Redis.Addr})
	}

	publisher := events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.BookingTopic)
	defer func() {
		if err := publisher.Close(); err != nil {
			utils.LogWarn(err, "Closing booking publisher failed")
		}
	}()
	deps.Publisher = publisher

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := router.New(deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(engine, "petcare"),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		utils.LogInfo("Server starting", map[string]interface{}{"port": cfg.Port, "store": cfg.Store, "auth_enforced": cfg.Auth.Enforce})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			utils.LogError(err, "Failed to start server")
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.LogError(err, "HTTP server shutdown error")
		return err
	}
	utils.LogInfo("Server stopped")
	return nil
}

// redisLoginLimiter builds the shared login limiter. It returns nils when no
// Redis address is configured or LOGIN_RATE_LIMIT is zero.
func redisLoginLimiter(cfg config.Config) (*middleware.RedisRateLimiter, *redis.Client) {
	if cfg.Redis.Addr == "" || cfg.Auth.LoginRateLimit <= 0 {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password})
	return middleware.NewRedisRateLimiter(rdb, cfg.Auth.LoginRateLimit, cfg.Auth.LoginWindow, "petcare:login"), rdb
}

// openAndMigrate connects and applies the idempotent schema so a fresh database is usable.
func openAndMigrate(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := database.ApplySchema(ctx, db, cfg.SchemaPath); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
