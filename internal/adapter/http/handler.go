package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"clip-market/internal/core/port"
)

// DefaultUserHeader carries the caller's user id when no other header is
// configured.
const DefaultUserHeader = "X-User-ID"

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it authenticates the caller, decodes requests, calls the ledger use
// case and maps ledger errors to status codes.
type Handler struct {
	svc        port.LedgerUseCase
	logger     *slog.Logger
	router     chi.Router
	userHeader string
	metrics    http.Handler
}

// Option customises a Handler.
type Option func(*Handler)

// WithUserHeader sets the header the identity provider puts the user id in.
func WithUserHeader(name string) Option {
	return func(h *Handler) {
		if name != "" {
			h.userHeader = name
		}
	}
}

// WithMetricsHandler exposes m on GET /metrics.
func WithMetricsHandler(m http.Handler) Option {
	return func(h *Handler) { h.metrics = m }
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.LedgerUseCase, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger, userHeader: DefaultUserHeader}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Get("/{id}", h.handleGetCampaign)
			r.Patch("/{id}/status", h.handleSetCampaignStatus)
			r.Get("/{id}/stats", h.handleCampaignStats)
		})

		r.Route("/submissions", func(r chi.Router) {
			r.Post("/", h.handleSubmit)
			r.Get("/", h.handleListSubmissions)
			r.Get("/{id}", h.handleGetSubmission)
			r.Post("/{id}/approve", h.handleApprove)
			r.Post("/{id}/reject", h.handleReject)
			r.Post("/{id}/mark-paid", h.handleMarkPaid)
		})

		r.Get("/analytics/overview", h.handleOverview)
		r.Get("/me/stats", h.handleClipperStats)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
