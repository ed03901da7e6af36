package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // restaurant time zone without a system zoneinfo

	"catering/cmd"
	httpin "catering/internal/adapters/in/http"
	"catering/internal/adapters/out/kafka"
	"catering/internal/adapters/out/postgres"
	"catering/internal/core/ports"
	applogger "catering/internal/infrastructure/logger"
	"catering/internal/infrastructure/metrics"
	"catering/internal/infrastructure/server"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, err := applogger.New(configs.LogLevel)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err = run(configs, logger); err != nil {
		logger.Error("application stopped", zap.Error(err))
		os.Exit(1)
	}
}

func run(configs cmd.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := postgres.Open(configs.Database())
	if err != nil {
		return err
	}
	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		defer sqlDB.Close()
	}

	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	var redisClient *redis.Client
	if configs.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
		defer redisClient.Close()
	}

	var publisher ports.OrderEventPublisher = kafka.NoopOrderEventPublisher{}
	if configs.KafkaHost != "" {
		writer := kafka.NewWriter(configs.KafkaHost, configs.KafkaOrderChangedTopic)
		defer writer.Close()
		publisher = kafka.NewOrderEventPublisher(writer)
	} else {
		logger.Warn("KAFKA_HOST is empty, order events are not published")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app, err := cmd.NewCompositionRoot(configs, gormDB, redisClient, publisher, metrics.New(registry), logger)
	if err != nil {
		return err
	}

	if err = app.SeedOpeningSchedule(ctx); err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	router, err := httpin.NewRouter(app.CreateHTTPServer(), registry, logger)
	if err != nil {
		return err
	}

	return serve(ctx, server.New(configs.HTTPPort, router, logger))
}

func serve(ctx context.Context, srv *server.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
