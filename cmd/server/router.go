package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sangkips/customer-service/internal/domains/customers"
	"github.com/sangkips/customer-service/internal/health"
	"github.com/sangkips/customer-service/internal/metrics"
)

func newRouter(allowedOrigins []string, customerHandler *customers.Handler, healthHandler *health.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Location"},
		MaxAge:         int((5 * time.Minute).Seconds()),
	}))

	r.Route("/customers", func(r chi.Router) {
		customerHandler.RegisterCustomerRoutes(r)
	})

	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", metrics.Handler())

	return r
}
