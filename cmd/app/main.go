package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fooddelivery/cmd"
	httpadapter "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/messaging"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultRedisTTL = 5 * time.Minute

func main() {
	configs := getConfigs()
	logger := newLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustGormOpen(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	redisClient := mustRedisClient(ctx, configs, logger)
	publisher, closePublisher := newEventPublisher(configs, logger)
	defer closePublisher()

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, publisher, logger)

	jobManager := jobs.NewJobManager(app.CreateFindInconsistentOrdersQueryHandler(), configs.ReconcileSchedule, logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	redisTTL := defaultRedisTTL
	if raw := os.Getenv("REDIS_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("REDIS_TTL is not a duration: %v", err)
		}
		redisTTL = ttl
	}

	config := cmd.Config{
		HTTPPort:              os.Getenv("HTTP_PORT"),
		DBHost:                os.Getenv("DB_HOST"),
		DBPort:                os.Getenv("DB_PORT"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSslMode:             os.Getenv("DB_SSLMODE"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		RedisTTL:              redisTTL,
		KafkaHost:             os.Getenv("KAFKA_HOST"),
		KafkaOrderEventsTopic: os.Getenv("KAFKA_ORDER_EVENTS_TOPIC"),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		ReconcileSchedule:     os.Getenv("RECONCILE_SCHEDULE"),
	}
	if config.JWTSecret == "" {
		log.Fatalf("JWT_SECRET is required")
	}
	return config
}

func newLogger() *slog.Logger {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})).
		With("service", "fooddelivery", "hostname", hostname)
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustRedisClient(ctx context.Context, configs cmd.Config, logger *slog.Logger) *redis.Client {
	if !configs.CacheEnabled() {
		logger.Info("REDIS_ADDR is empty, restaurant cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	return client
}

func newEventPublisher(configs cmd.Config, logger *slog.Logger) (ports.EventPublisher, func()) {
	if !configs.KafkaEnabled() {
		logger.Info("KAFKA_HOST is empty, order events are only logged")
		return messaging.NewLogPublisher(logger), func() {}
	}

	writer := messaging.NewKafkaWriter(configs.KafkaHost, configs.KafkaOrderEventsTopic)
	return messaging.NewKafkaPublisher(writer), func() {
		if err := writer.Close(); err != nil {
			logger.Error("Failed to close kafka writer", "error", err)
		}
	}
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	server := httpadapter.NewServer(
		app.CreateRegisterOrderCommandHandler(),
		app.CreateChangeDeliveryStatusCommandHandler(),
		app.CreatePriceCartQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		logger,
	)

	e, err := httpadapter.NewRouter(ctx, server, []byte(configs.JWTSecret), logger)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", "error", err)
	}
}
