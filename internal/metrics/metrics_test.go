package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodGet, "/items/{id}", "418"))

	for _, path := range []string{"/items/1", "/items/2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusTeapot {
			t.Fatalf("Expected 418, got %d", rec.Code)
		}
	}

	after := testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodGet, "/items/{id}", "418"))
	if after-before != 2 {
		t.Errorf("Expected counter to grow by 2, grew by %v", after-before)
	}
}

func TestHandler_ExposesMetrics(t *testing.T) {
	EventsPublished.WithLabelValues("customer.created", "ok").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "customer_service_events_published_total") {
		t.Error("Expected events counter in exposition output")
	}
}
