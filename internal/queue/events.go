package queue

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	EventCustomerCreated = "customer.created"
	EventCustomerUpdated = "customer.updated"
	EventCustomerDeleted = "customer.deleted"
)

// CustomerEvent is the message body published after a customer write.
type CustomerEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	CustomerID int32     `json:"customer_id"`
	FirstName  string    `json:"first_name,omitempty"`
	LastName   string    `json:"last_name,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewCustomerEvent(eventType string, customerID int32, firstName, lastName string) CustomerEvent {
	return CustomerEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		CustomerID: customerID,
		FirstName:  firstName,
		LastName:   lastName,
		OccurredAt: time.Now().UTC(),
	}
}

var (
	ErrMissingEventID   = errors.New("event_id is required")
	ErrInvalidEventID   = errors.New("event_id is not a valid uuid")
	ErrUnknownEventType = errors.New("unknown event_type")
)

// Validate checks the fields a consumer relies on.
func (e CustomerEvent) Validate() error {
	if e.EventID == "" {
		return ErrMissingEventID
	}
	if _, err := uuid.Parse(e.EventID); err != nil {
		return ErrInvalidEventID
	}
	switch e.EventType {
	case EventCustomerCreated, EventCustomerUpdated, EventCustomerDeleted:
		return nil
	default:
		return ErrUnknownEventType
	}
}

// NopPublisher drops every event. It is used when RabbitMQ is not configured.
type NopPublisher struct{}

func (NopPublisher) PublishCustomerEvent(context.Context, CustomerEvent) error {
	return nil
}
