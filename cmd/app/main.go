package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"marketplace/cmd"
	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	gormDB, err := postgres.Open(configs.DSN())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("failed to build application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e, serverErr := startWebServer(app, configs.HTTPPort, logger)

	select {
	case <-sigCtx.Done():
		logger.Info("Shutting down")
	case err = <-serverErr:
		logger.Error("HTTP server stopped", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	jobManager.StopAll()
	if err = app.Close(); err != nil {
		logger.Error("Closing adapters failed", "error", err)
	}
	if err = sqlDB.Close(); err != nil {
		logger.Error("Closing database failed", "error", err)
	}
}

func getConfigs() cmd.Config {
	// a missing .env is fine, the process environment is authoritative
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:                         envOrDefault("HTTP_PORT", "8080"),
		DBHost:                           os.Getenv("DB_HOST"),
		DBPort:                           envOrDefault("DB_PORT", "5432"),
		DBUser:                           os.Getenv("DB_USER"),
		DBPassword:                       os.Getenv("DB_PASSWORD"),
		DBName:                           os.Getenv("DB_NAME"),
		DBSslMode:                        envOrDefault("DB_SSLMODE", "disable"),
		JWTSecret:                        os.Getenv("JWT_SECRET"),
		RedisAddr:                        os.Getenv("REDIS_ADDR"),
		RateLimitRequests:                intEnv("RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow:                  durationEnv("RATE_LIMIT_WINDOW", time.Minute),
		KafkaHost:                        os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic:           os.Getenv("KAFKA_ORDER_CHANGED_TOPIC"),
		KafkaDeliveryRequestChangedTopic: os.Getenv("KAFKA_DELIVERY_REQUEST_CHANGED_TOPIC"),
		OutboxBatchSize:                  intEnv("OUTBOX_BATCH_SIZE", commands.DefaultOutboxBatchSize),
		NearbyFreshnessWindow:            durationEnv("NEARBY_FRESHNESS_WINDOW", 5*time.Minute),
		LogLevel:                         levelEnv("LOG_LEVEL", slog.LevelInfo),
	}
}

func envOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("%s must be an integer, got %q", key, raw)
	}
	return v
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("%s must be a duration, got %q", key, raw)
	}
	return v
}

func levelEnv(key string, fallback slog.Level) slog.Level {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		log.Fatalf("%s must be one of debug, info, warn, error, got %q", key, raw)
	}
	return level
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) (*echo.Echo, <-chan error) {
	e, err := httpadapter.NewRouter(app.CreateHTTPServer(), app.CreateRouterConfig())
	if err != nil {
		log.Fatalf("failed to build router: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", port)
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			errCh <- startErr
		}
	}()
	return e, errCh
}
