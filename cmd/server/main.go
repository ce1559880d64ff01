package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sangkips/customer-service/internal/config"
	"github.com/sangkips/customer-service/internal/db"
	"github.com/sangkips/customer-service/internal/domains/customers"
	"github.com/sangkips/customer-service/internal/health"
	"github.com/sangkips/customer-service/internal/logger"
	"github.com/sangkips/customer-service/internal/queue"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	baseLogger := logger.New(cfg.LogLevel, cfg.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbConn, err := db.ConnectAndMigrate(ctx, cfg.DBURL, baseLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbConn.Close()

	var events customers.EventPublisher = queue.NopPublisher{}
	var queuePinger health.QueuePinger
	if cfg.EventsEnabled() {
		rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
		}
		defer rabbitMQ.Close()

		events = rabbitMQ
		queuePinger = rabbitMQ
	}

	customerRepo := customers.NewRepository(dbConn, baseLogger)
	customerService := customers.NewService(customerRepo, events, baseLogger)
	customerHandler := customers.NewHandler(customerService)
	healthHandler := health.NewHandler(dbConn, queuePinger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newRouter(cfg.CORSAllowedOrigins, customerHandler, healthHandler),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Msg("server starting on :" + cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("received signal, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	log.Info().Msg("server stopped")
}
