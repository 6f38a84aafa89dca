// Package service contains the use-case boundary for the FAQ module. FAQs are
// an administrative pass-through: validate, persist, translate store errors.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"

	"tipline/internal/audit"
	"tipline/internal/faq/models"
	id "tipline/pkg/domain"
	dErrors "tipline/pkg/domain-errors"
	"tipline/pkg/platform/sentinel"
	"tipline/pkg/requestcontext"
)

// FAQStore is the repository port for FAQ entries.
type FAQStore interface {
	Create(ctx context.Context, faq *models.FAQ) error
	Update(ctx context.Context, faq *models.FAQ) error
	Delete(ctx context.Context, faqID id.FAQID) error
	FindByID(ctx context.Context, faqID id.FAQID) (*models.FAQ, error)
	FindAll(ctx context.Context, category string) ([]models.FAQ, error)
}

// AuditPublisher receives change events. Emit must not block the caller.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

var errFAQNotFound = dErrors.New(dErrors.CodeNotFound, "faq not found")

// Service orchestrates FAQ CRUD.
type Service struct {
	store  FAQStore
	logger *slog.Logger
	audit  AuditPublisher
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.audit = publisher
	}
}

// New constructs a Service.
func New(store FAQStore, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateFAQInput carries the caller-supplied attributes for a new entry.
type CreateFAQInput struct {
	Question string
	Answer   string
	Category string
}

// CreateFAQ validates and persists a new entry.
func (s *Service) CreateFAQ(ctx context.Context, input CreateFAQInput) (*models.FAQ, error) {
	now, err := id.UTCInstantFrom(requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	faq, err := models.NewFAQ(id.NewFAQID(), input.Question, input.Answer, input.Category, now)
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, faq); err != nil {
		return nil, wrapStoreErr(err, "create faq")
	}
	s.emit(ctx, faq.ID)
	return faq, nil
}

// UpdateFAQ applies a partial update.
func (s *Service) UpdateFAQ(ctx context.Context, faqID id.FAQID, update models.FAQUpdate) (*models.FAQ, error) {
	faq, err := s.store.FindByID(ctx, faqID)
	if err != nil {
		return nil, wrapStoreErr(err, "load faq")
	}

	now, err := id.UTCInstantFrom(requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := faq.Apply(update, now); err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, faq); err != nil {
		return nil, wrapStoreErr(err, "save faq")
	}
	s.emit(ctx, faq.ID)
	return faq, nil
}

// DeleteFAQ removes an entry.
func (s *Service) DeleteFAQ(ctx context.Context, faqID id.FAQID) error {
	if err := s.store.Delete(ctx, faqID); err != nil {
		return wrapStoreErr(err, "delete faq")
	}
	s.emit(ctx, faqID)
	return nil
}

// GetFAQ returns a single entry by id.
func (s *Service) GetFAQ(ctx context.Context, faqID id.FAQID) (*models.FAQ, error) {
	faq, err := s.store.FindByID(ctx, faqID)
	if err != nil {
		return nil, wrapStoreErr(err, "load faq")
	}
	return faq, nil
}

// ListFAQs returns all entries, optionally narrowed to a category.
func (s *Service) ListFAQs(ctx context.Context, category string) ([]models.FAQ, error) {
	faqs, err := s.store.FindAll(ctx, category)
	if err != nil {
		return nil, wrapStoreErr(err, "list faqs")
	}
	return faqs, nil
}

func (s *Service) emit(ctx context.Context, faqID id.FAQID) {
	if s.audit == nil {
		return
	}
	event := audit.Event{
		Type:      audit.EventFAQChanged,
		ActorID:   requestcontext.UserID(ctx).String(),
		SubjectID: faqID.String(),
		RequestID: requestcontext.RequestID(ctx),
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"event_type", string(event.Type),
			"error", err,
		)
	}
}

func wrapStoreErr(err error, action string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sentinel.ErrNotFound):
		return errFAQNotFound
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.Wrap(err, dErrors.CodeConflict, "faq already exists")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to "+action)
	}
}
