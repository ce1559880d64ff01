package health

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/sangkips/customer-service/internal/handlers"
)

const checkTimeout = 5 * time.Second

// QueuePinger reports whether the message broker connection is usable.
type QueuePinger interface {
	Ping() error
}

type Handler struct {
	db    *sql.DB
	queue QueuePinger
}

// NewHandler builds a health handler. queue may be nil when customer events
// are disabled, in which case the queue check is omitted.
func NewHandler(db *sql.DB, queue QueuePinger) *Handler {
	return &Handler{
		db:    db,
		queue: queue,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string           `json:"status"`
	Checks    map[string]Check `json:"checks"`
	Timestamp time.Time        `json:"timestamp"`
}

// Check represents a single health check
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health performs health checks on the database and, if configured, RabbitMQ
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	checks := map[string]Check{
		"database": h.checkDatabase(ctx),
	}
	if h.queue != nil {
		checks["queue"] = h.checkQueue()
	}

	status := "healthy"
	statusCode := http.StatusOK
	for _, c := range checks {
		if c.Status != "healthy" {
			status = "unhealthy"
			statusCode = http.StatusServiceUnavailable
			break
		}
	}

	handlers.RespondWithJSON(w, statusCode, HealthResponse{
		Status:    status,
		Checks:    checks,
		Timestamp: time.Now(),
	})
}

func (h *Handler) checkDatabase(ctx context.Context) Check {
	if h.db == nil {
		return Check{
			Status:  "unhealthy",
			Message: "database connection is nil",
		}
	}

	if err := h.db.PingContext(ctx); err != nil {
		return Check{
			Status:  "unhealthy",
			Message: "database connection failed: " + err.Error(),
		}
	}

	var result int
	if err := h.db.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		return Check{
			Status:  "unhealthy",
			Message: "database query failed: " + err.Error(),
		}
	}

	return Check{
		Status:  "healthy",
		Message: "database is accessible",
	}
}

func (h *Handler) checkQueue() Check {
	if err := h.queue.Ping(); err != nil {
		return Check{
			Status:  "unhealthy",
			Message: "queue connection failed: " + err.Error(),
		}
	}

	return Check{
		Status:  "healthy",
		Message: "queue is accessible",
	}
}
