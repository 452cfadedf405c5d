// Package handler implements the HTTP handlers for the Caravan Weight Log API.
// All handlers are methods on Server. They are split into files by resource
// (draft.go, entry.go, export.go) but share the same Server struct so they can
// reach its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/caravan-log/backend/internal/domain"
)

// LogbookServicer defines the session operations the handlers depend on.
// Declaring it here, in the consumer, lets handler tests inject a mock
// without building a real service.
type LogbookServicer interface {
	Draft(ctx context.Context) domain.DraftView
	SetField(ctx context.Context, field domain.Field, value string) (domain.DraftView, error)
	ResetDraft(ctx context.Context) domain.DraftView
	Submit(ctx context.Context) (domain.Entry, bool, error)
	BeginEdit(ctx context.Context, id uuid.UUID) (domain.DraftView, error)
	Delete(ctx context.Context, id uuid.UUID) (domain.DeleteResult, error)
	List(ctx context.Context, rawTerm string) (domain.Listing, error)
	Export(ctx context.Context, rawTerm string) ([]domain.ExportRow, error)
	Reload(ctx context.Context) error
}

// Server serves the JSON API and the printed reports.
type Server struct {
	logbook LogbookServicer
	log     *slog.Logger
	now     func() time.Time
	metrics http.Handler
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithMetricsHandler serves h at GET /metrics. Without it /metrics answers 404.
func WithMetricsHandler(h http.Handler) ServerOption {
	return func(s *Server) { s.metrics = h }
}

// NewServer constructs the Server. A nil logger falls back to slog.Default().
func NewServer(logbook LogbookServicer, log *slog.Logger, opts ...ServerOption) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{logbook: logbook, log: log, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register mounts every API route on r. Middleware is the caller's concern.
func (s *Server) Register(r chi.Router) {
	r.Get("/healthz", s.GetHealth)

	r.Route("/draft", func(r chi.Router) {
		r.Get("/", s.GetDraft)
		r.Put("/fields/{field}", s.SetDraftField)
		r.Post("/reset", s.ResetDraft)
		r.Post("/submit", s.SubmitDraft)
	})

	r.Route("/entries", func(r chi.Router) {
		r.Get("/", s.ListEntries)
		r.Post("/{id}/edit", s.EditEntry)
		r.Delete("/{id}", s.DeleteEntry)
	})

	r.Get("/export", s.GetExport)
	r.Post("/reload", s.Reload)

	r.Get("/openapi.yaml", s.GetOpenAPI)
	if s.metrics != nil {
		r.Get("/metrics", s.metrics.ServeHTTP)
	}
}

// Handler returns a bare router with every API route registered.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	s.Register(r)
	return r
}
