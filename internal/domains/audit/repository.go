package audit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sangkips/customer-service/internal/domains/audit/models"
	"github.com/sangkips/customer-service/internal/queue"
)

type Repository interface {
	// Record stores the event once. It returns false when an entry with the
	// same event id already exists.
	Record(ctx context.Context, event queue.CustomerEvent) (bool, error)
}

type repository struct {
	q *models.Queries
}

func NewRepository(db models.DBTX) Repository {
	return &repository{q: models.New(db)}
}

func (r *repository) Record(ctx context.Context, event queue.CustomerEvent) (bool, error) {
	eventID, err := uuid.Parse(event.EventID)
	if err != nil {
		return false, fmt.Errorf("invalid event id %q: %w", event.EventID, err)
	}

	affected, err := r.q.InsertAuditEntry(ctx, models.InsertAuditEntryParams{
		EventID:    eventID,
		EventType:  event.EventType,
		CustomerID: event.CustomerID,
		FirstName:  nullString(event.FirstName),
		LastName:   nullString(event.LastName),
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
