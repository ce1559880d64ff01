package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/sangkips/customer-service/internal/config"
	"github.com/sangkips/customer-service/internal/db"
	"github.com/sangkips/customer-service/internal/domains/audit"
	"github.com/sangkips/customer-service/internal/logger"
	"github.com/sangkips/customer-service/internal/queue"
	"github.com/sangkips/customer-service/internal/worker"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	baseLogger := logger.New(cfg.LogLevel, cfg.LogPretty)

	if !cfg.EventsEnabled() {
		log.Fatal().Msg("RABBITMQ_URL is required for the audit worker")
	}

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to database
	dbConn, err := db.ConnectAndMigrate(ctx, cfg.DBURL, baseLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbConn.Close()

	// Connect to RabbitMQ
	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
	}
	defer rabbitMQ.Close()

	w := worker.NewWorker(rabbitMQ, audit.NewRepository(dbConn), baseLogger)

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("received signal, shutting down")
		cancel()
	}()

	// Start worker
	if err := w.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("worker failed")
	}

	log.Info().Msg("worker stopped")
}
