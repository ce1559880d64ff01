package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
	"github.com/sangkips/customer-service/internal/metrics"
)

const CustomerEventsQueue = "customer_events"

const (
	dialAttempts = 10
	dialBackoff  = 2 * time.Second
)

type RabbitMQ struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	queue   amqp091.Queue
}

// NewRabbitMQ creates a new RabbitMQ connection and declares the customer_events queue
func NewRabbitMQ(url string) (*RabbitMQ, error) {
	var conn *amqp091.Connection
	var err error

	for i := 0; i < dialAttempts; i++ {
		conn, err = amqp091.Dial(url)
		if err == nil {
			break
		}
		log.Warn().Err(err).Msgf("failed to connect to RabbitMQ, retrying in %s (%d/%d)", dialBackoff, i+1, dialAttempts)
		time.Sleep(dialBackoff)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to connect to RabbitMQ after retries")
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		log.Error().Err(err).Msg("failed to open channel")
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	queue, err := channel.QueueDeclare(
		CustomerEventsQueue, // name
		true,                // durable
		false,               // delete when unused
		false,               // exclusive
		false,               // no-wait
		nil,                 // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		log.Error().Err(err).Msg("failed to declare queue")
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	log.Info().Str("queue", queue.Name).Msg("connected to RabbitMQ")

	return &RabbitMQ{
		conn:    conn,
		channel: channel,
		queue:   queue,
	}, nil
}

// PublishCustomerEvent publishes a persistent JSON event to the customer_events queue
func (r *RabbitMQ) PublishCustomerEvent(ctx context.Context, event CustomerEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		metrics.EventsPublished.WithLabelValues(event.EventType, "error").Inc()
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		"",           // exchange
		r.queue.Name, // routing key (queue name)
		false,        // mandatory
		false,        // immediate
		amqp091.Publishing{
			DeliveryMode: amqp091.Persistent,
			ContentType:  "application/json",
			MessageId:    event.EventID,
			Type:         event.EventType,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		metrics.EventsPublished.WithLabelValues(event.EventType, "error").Inc()
		log.Error().Err(err).Str("event_id", event.EventID).Str("event_type", event.EventType).Msg("failed to publish event")
		return fmt.Errorf("failed to publish event: %w", err)
	}

	metrics.EventsPublished.WithLabelValues(event.EventType, "ok").Inc()
	log.Debug().Str("event_id", event.EventID).Str("event_type", event.EventType).Int32("customer_id", event.CustomerID).Msg("published event")
	return nil
}

// Consume returns a channel of deliveries for the customer_events queue
func (r *RabbitMQ) Consume() (<-chan amqp091.Delivery, error) {
	msgs, err := r.channel.Consume(
		r.queue.Name, // queue
		"",           // consumer
		false,        // auto-ack (we will manual ack)
		false,        // exclusive
		false,        // no-local
		false,        // no-wait
		nil,          // args
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register a consumer: %w", err)
	}
	return msgs, nil
}

// Ping checks if the RabbitMQ connection and channel are open
func (r *RabbitMQ) Ping() error {
	if r.conn == nil || r.conn.IsClosed() {
		return fmt.Errorf("connection is closed")
	}
	if r.channel == nil || r.channel.IsClosed() {
		return fmt.Errorf("channel is closed")
	}
	return nil
}

// Close closes the RabbitMQ connection and channel
func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		if err := r.channel.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close channel")
		}
	}
	if r.conn != nil {
		if err := r.conn.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close connection")
			return err
		}
	}
	log.Info().Msg("closed RabbitMQ connection")
	return nil
}
