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

	"configurator/cmd"
	"configurator/internal/adapters/out/postgres/migrations"
	"configurator/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	configs := getConfigs()

	gormDB, err := gorm.Open(postgres.Open(configs.PostgresDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Failed to get database handle: %v", err)
	}
	if err = migrations.Up(sqlDB); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})
	if err = redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("Failed to close resources", "error", err)
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	startWebServer(e, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using process environment: %v", err)
	}

	return cmd.Config{
		HTTPPort:               envOr("HTTP_PORT", "8080"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 envOr("DB_PORT", "5432"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              envOr("DB_SSLMODE", "disable"),
		RedisAddr:              envOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		DraftTTL:               durationVariable("DRAFT_TTL", 24*time.Hour),
		SubmissionLockTTL:      durationVariable("SUBMISSION_LOCK_TTL", 30*time.Second),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: envOr("KAFKA_ORDER_CHANGED_TOPIC", "order.changed"),
		ResendAPIKey:           os.Getenv("RESEND_API_KEY"),
		EmailFrom:              envOr("EMAIL_FROM", "HiniBricks <pedidos@hinibricks.cl>"),
		AdminEmail:             os.Getenv("ADMIN_EMAIL"),
		AdminJWTSecret:         os.Getenv("ADMIN_JWT_SECRET"),
		DispatchSchedule:       envOr("DISPATCH_SCHEDULE", jobs.DefaultDispatchSchedule),
		DispatchBatch:          intVariable("DISPATCH_BATCH", jobs.DefaultDispatchBatch),
		DispatchMaxAttempts:    intVariable("DISPATCH_MAX_ATTEMPTS", 0),
		PurgeSchedule:          envOr("PURGE_SCHEDULE", jobs.DefaultPurgeSchedule),
		EventRetention:         durationVariable("EVENT_RETENTION", jobs.DefaultEventRetention),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationVariable(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return d
}

func intVariable(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("Invalid integer in %s: %v", key, err)
	}
	return n
}

func startWebServer(e *echo.Echo, port string, logger *slog.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", "error", err)
			stop()
		}
	}()
	logger.Info("HTTP server started", "port", port)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
