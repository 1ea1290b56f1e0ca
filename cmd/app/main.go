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

	"marketplace/cmd"
	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/events"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/memory"
	"marketplace/internal/adapters/out/postgres"
	redisstore "marketplace/internal/adapters/out/redis"
	"marketplace/internal/core/ports"

	"github.com/rs/zerolog"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		return err
	}

	logger := cmd.NewLogger(configs.LogLevel, configs.LogFormat)
	logger.Info().
		Str("storage", configs.Storage).
		Str("transition_policy", configs.TransitionPolicy().String()).
		Msg("starting marketplace service")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var publisher ports.OrderEventPublisher = events.Nop{}
	if configs.KafkaHost != "" {
		kafkaPublisher := kafka.NewOrderEventPublisher(kafka.NewWriter(configs.KafkaHost, configs.KafkaOrderChangedTopic))
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				logger.Error().Err(err).Msg("failed to close kafka writer")
			}
		}()
		publisher = kafkaPublisher
		logger.Info().Str("topic", configs.KafkaOrderChangedTopic).Msg("publishing order events to kafka")
	}

	var idempotency ports.IdempotencyStore
	if configs.RedisAddr != "" {
		client, err := redisstore.NewClient(ctx, configs.RedisAddr)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer client.Close()
		idempotency = redisstore.NewIdempotencyStore(client)
	}

	uowFactory, closeStorage, err := openStorage(configs, publisher, logger)
	if err != nil {
		return err
	}
	defer closeStorage()

	app := cmd.NewCompositionRoot(configs, uowFactory, idempotency, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs, logger)
}

// openStorage returns the unit of work factory of the configured backend and
// a function releasing its resources.
func openStorage(configs cmd.Config, publisher ports.OrderEventPublisher, logger zerolog.Logger) (ports.UnitOfWorkFactory, func(), error) {
	if configs.Storage == cmd.StorageMemory {
		return memory.NewUnitOfWorkFactory(memory.NewStore(), publisher, logger), func() {}, nil
	}

	db, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := postgres.Migrate(db); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return postgres.NewGormUnitOfWorkFactory(db, publisher, logger), closeDB, nil
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config, logger zerolog.Logger) error {
	_, handler, err := httpin.NewRouter(app.CreateHTTPServer(), httpin.RouterConfig{
		AllowedOrigins: configs.CORSAllowedOrigins,
		Swagger:        true,
		LogLevel:       cmd.EchoLogLevel(configs.LogLevel),
	}, logger)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("address", server.Addr).Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received, starting graceful shutdown")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Info().Msg("server shutdown completed")
	return nil
}
