package queue

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewCustomerEvent(t *testing.T) {
	event := NewCustomerEvent(EventCustomerCreated, 42, "Jane", "Doe")

	if _, err := uuid.Parse(event.EventID); err != nil {
		t.Errorf("Expected a uuid event id, got %q", event.EventID)
	}
	if event.CustomerID != 42 {
		t.Errorf("Expected customer id 42, got %d", event.CustomerID)
	}
	if event.OccurredAt.IsZero() {
		t.Error("Expected OccurredAt to be set")
	}
	if err := event.Validate(); err != nil {
		t.Errorf("Expected a fresh event to validate, got %v", err)
	}
}

func TestCustomerEvent_Validate(t *testing.T) {
	valid := NewCustomerEvent(EventCustomerDeleted, 1, "", "")

	tests := []struct {
		name    string
		mutate  func(e *CustomerEvent)
		wantErr error
	}{
		{name: "valid", mutate: func(e *CustomerEvent) {}, wantErr: nil},
		{name: "missing id", mutate: func(e *CustomerEvent) { e.EventID = "" }, wantErr: ErrMissingEventID},
		{name: "bad id", mutate: func(e *CustomerEvent) { e.EventID = "not-a-uuid" }, wantErr: ErrInvalidEventID},
		{name: "unknown type", mutate: func(e *CustomerEvent) { e.EventType = "customer.merged" }, wantErr: ErrUnknownEventType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := valid
			tt.mutate(&event)
			if err := event.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
