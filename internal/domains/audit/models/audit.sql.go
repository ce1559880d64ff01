package models

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const insertAuditEntry = `-- name: InsertAuditEntry :execrows
INSERT INTO customer_audit_log (event_id, event_type, customer_id, first_name, last_name, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (event_id) DO NOTHING
`

type InsertAuditEntryParams struct {
	EventID    uuid.UUID      `json:"event_id"`
	EventType  string         `json:"event_type"`
	CustomerID int32          `json:"customer_id"`
	FirstName  sql.NullString `json:"first_name"`
	LastName   sql.NullString `json:"last_name"`
	OccurredAt time.Time      `json:"occurred_at"`
}

func (q *Queries) InsertAuditEntry(ctx context.Context, arg InsertAuditEntryParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, insertAuditEntry,
		arg.EventID,
		arg.EventType,
		arg.CustomerID,
		arg.FirstName,
		arg.LastName,
		arg.OccurredAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
