package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/Chinmayee2524/inventory-tracker/internal/config"
	"github.com/Chinmayee2524/inventory-tracker/internal/event"
	"github.com/Chinmayee2524/inventory-tracker/internal/http"
	"github.com/Chinmayee2524/inventory-tracker/internal/log"
	"github.com/Chinmayee2524/inventory-tracker/internal/relay"
	"github.com/Chinmayee2524/inventory-tracker/internal/repository"
	"github.com/Chinmayee2524/inventory-tracker/internal/service"
	"github.com/Chinmayee2524/inventory-tracker/internal/storage/db"
	"github.com/Chinmayee2524/inventory-tracker/internal/storage/mq"
	"github.com/Chinmayee2524/inventory-tracker/internal/telemetry"
	"github.com/Chinmayee2524/inventory-tracker/pkg/cmdutil"
	"github.com/Chinmayee2524/inventory-tracker/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running inventoryd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log     config.Log
		HTTP    config.HTTP
		Storage config.Storage
		Otel    config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	interruptChan := cmdutil.InterruptChan()
	var wg sync.WaitGroup

	var itemRepo repository.ItemRepository

	// The Postgres driver also brings the outbox and its Kafka relay and
	// consumer; the in-memory driver runs the HTTP service alone.
	if cfg.Storage.Driver == config.StorageDriverPostgres {
		type PostgresConfig struct {
			Postgres config.Postgres
			Relay    config.Relay
			Kafka    config.Kafka
		}
		pgCfg, err := config.New[PostgresConfig]()
		if err != nil {
			return fmt.Errorf("error loading postgres config: %w", err)
		}

		pgxPool, err := db.NewPgxPool(ctx, pgCfg.Postgres)
		if err != nil {
			return fmt.Errorf("error creating pgx pool: %w", err)
		}
		defer pgxPool.Close()

		dbClient := db.NewClient(pgxPool)
		outboxMsgRepository := repository.NewOutboxMsgRepository(dbClient)
		itemRepo = repository.NewPostgresItemRepository(dbClient, outboxMsgRepository)

		kafkaProducer, err := mq.NewKafkaProducer(ctx, pgCfg.Kafka)
		if err != nil {
			return fmt.Errorf("error creating kafka producer: %w", err)
		}
		defer kafkaProducer.Close()

		kafkaConsumer, err := mq.NewKafkaConsumer(ctx, pgCfg.Kafka, logger)
		if err != nil {
			return fmt.Errorf("error creating kafka consumer: %w", err)
		}
		defer kafkaConsumer.Close()

		wg.Go(func() {
			svc := relay.NewService(pgCfg.Relay, logger, dbClient, outboxMsgRepository, kafkaProducer)
			cleanup := svc.Run(ctx)
			logger.InfoContext(ctx, "relay service started")

			<-interruptChan

			logger.InfoContext(ctx, "relay service is shutting down")
			cleanup()

			logger.InfoContext(ctx, "relay service is stopped")
		})

		wg.Go(func() {
			svc := event.New(logger, kafkaConsumer)
			cleanup, err := svc.Run(ctx)
			if err != nil {
				panic(fmt.Errorf("error running event service: %w", err))
			}
			logger.InfoContext(ctx, "event service started")

			<-interruptChan

			logger.InfoContext(ctx, "event service is shutting down")
			cleanup()

			logger.InfoContext(ctx, "event service is stopped")
		})
	} else {
		itemRepo = repository.NewMemoryItemRepository()
	}

	itemService := service.NewItemService(itemRepo)

	wg.Go(func() {
		svc := http.New(cfg.HTTP, logger, validator.NewDefaultValidator(), itemService)
		cleanup, err := svc.Run(ctx)
		if err != nil {
			panic(fmt.Errorf("error running http service: %w", err))
		}

		logger.InfoContext(ctx, "http service started", slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)))

		<-interruptChan

		logger.InfoContext(ctx, "http service is shutting down")
		if err := cleanup(ctx); err != nil {
			logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
		}

		logger.InfoContext(ctx, "http service is stopped")
	})

	wg.Wait()

	return nil
}
