package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/sangkips/customer-service/internal/domains/audit"
	"github.com/sangkips/customer-service/internal/metrics"
	"github.com/sangkips/customer-service/internal/queue"
)

const requeueDelay = 1 * time.Second

// Consumer is the part of *queue.RabbitMQ the worker needs.
type Consumer interface {
	Consume() (<-chan amqp091.Delivery, error)
}

// Worker appends every customer event it receives to the audit log.
type Worker struct {
	consumer Consumer
	repo     audit.Repository
	logger   zerolog.Logger
}

func NewWorker(consumer Consumer, repo audit.Repository, logger zerolog.Logger) *Worker {
	return &Worker{
		consumer: consumer,
		repo:     repo,
		logger:   logger.With().Str("component", "audit.worker").Logger(),
	}
}

func (w *Worker) Start(ctx context.Context) error {
	msgs, err := w.consumer.Consume()
	if err != nil {
		return fmt.Errorf("failed to start consumer: %w", err)
	}

	w.logger.Info().Msg("worker started, waiting for customer events")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("worker shutting down")
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("rabbitMQ channel closed")
			}
			w.processMessage(ctx, d)
		}
	}
}

func (w *Worker) processMessage(ctx context.Context, d amqp091.Delivery) {
	var event queue.CustomerEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		w.logger.Error().Err(err).Msg("failed to unmarshal customer event")
		metrics.AuditEntries.WithLabelValues("rejected").Inc()
		d.Reject(false)
		return
	}

	if err := event.Validate(); err != nil {
		w.logger.Error().Err(err).Str("event_id", event.EventID).Str("event_type", event.EventType).Msg("invalid customer event")
		metrics.AuditEntries.WithLabelValues("rejected").Inc()
		d.Reject(false)
		return
	}

	logger := w.logger.With().
		Str("event_id", event.EventID).
		Str("event_type", event.EventType).
		Int32("customer_id", event.CustomerID).
		Logger()

	inserted, err := w.repo.Record(ctx, event)
	if err != nil {
		logger.Error().Err(err).Msg("failed to record audit entry, requeueing")
		metrics.AuditEntries.WithLabelValues("error").Inc()
		w.requeue(ctx, d)
		return
	}

	if !inserted {
		logger.Info().Msg("duplicate customer event, already recorded")
		metrics.AuditEntries.WithLabelValues("duplicate").Inc()
		d.Ack(false)
		return
	}

	logger.Info().Msg("recorded customer event")
	metrics.AuditEntries.WithLabelValues("recorded").Inc()
	d.Ack(false)
}

func (w *Worker) requeue(ctx context.Context, d amqp091.Delivery) {
	// avoid a tight redelivery loop while the database is down
	select {
	case <-ctx.Done():
	case <-time.After(requeueDelay):
	}
	d.Nack(false, true)
}
