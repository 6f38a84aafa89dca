// Package service contains the use-case boundary for the tips module.
// Services validate input, orchestrate the aggregate and the store ports, and
// translate store sentinels into coded domain errors. No SQL and no HTTP live here.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"tipline/internal/audit"
	tipmetrics "tipline/internal/tips/metrics"
	"tipline/internal/tips/models"
	id "tipline/pkg/domain"
	dErrors "tipline/pkg/domain-errors"
	"tipline/pkg/platform/sentinel"
)

// TipStore is the repository port: it persists and reloads full aggregates.
type TipStore interface {
	Create(ctx context.Context, tip *models.Tip) error
	Update(ctx context.Context, tip *models.Tip) error
	Delete(ctx context.Context, tipID id.TipID) error
	FindByID(ctx context.Context, tipID id.TipID) (*models.Tip, error)
}

// TipQuery is the read port: it returns plain projections, never aggregates.
// A Limit of zero means no paging.
type TipQuery interface {
	FindAll(ctx context.Context, filter models.TipFilter) ([]models.TipProjection, int, error)
	FindByID(ctx context.Context, tipID id.TipID) (*models.TipProjection, error)
}

// AuditPublisher receives lifecycle events. Emit must not block the caller.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// errTipNotFound is returned both when a tip does not exist and when the
// caller is not its owner. Non-owners must not be able to distinguish
// "doesn't exist" from "exists but isn't yours".
var errTipNotFound = dErrors.New(dErrors.CodeNotFound, "tip not found")

// Service orchestrates the tip lifecycle.
type Service struct {
	store   TipStore
	query   TipQuery
	logger  *slog.Logger
	metrics *tipmetrics.Metrics
	audit   AuditPublisher
	clock   func() time.Time
	tracer  trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *tipmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.audit = publisher
	}
}

// WithClock overrides the wall clock for background operations (the sweep).
// Request-scoped operations read their instant from the request context.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// New constructs a Service.
func New(store TipStore, query TipQuery, opts ...Option) *Service {
	s := &Service{
		store:  store,
		query:  query,
		logger: slog.Default(),
		clock:  time.Now,
		tracer: otel.Tracer("tipline/tips"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"event_type", string(event.Type),
			"error", err,
		)
	}
}

// wrapStoreErr translates store sentinels into coded domain errors.
func wrapStoreErr(err error, action string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sentinel.ErrNotFound):
		return errTipNotFound
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.Wrap(err, dErrors.CodeConflict, "tip already exists")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to "+action)
	}
}
