// Package handler wires the FAQ HTTP API to the FAQ service. Reads are
// public; writes are reserved for operators holding the admin token.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tipline/internal/faq/models"
	"tipline/internal/faq/service"
	id "tipline/pkg/domain"
	"tipline/pkg/platform/httputil"
	adminmw "tipline/pkg/platform/middleware/admin"
	"tipline/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the interface for FAQ operations.
type Service interface {
	CreateFAQ(ctx context.Context, input service.CreateFAQInput) (*models.FAQ, error)
	UpdateFAQ(ctx context.Context, faqID id.FAQID, update models.FAQUpdate) (*models.FAQ, error)
	DeleteFAQ(ctx context.Context, faqID id.FAQID) error
	GetFAQ(ctx context.Context, faqID id.FAQID) (*models.FAQ, error)
	ListFAQs(ctx context.Context, category string) ([]models.FAQ, error)
}

// Handler handles FAQ endpoints.
type Handler struct {
	service    Service
	logger     *slog.Logger
	adminToken string
}

// New creates a FAQ Handler.
func New(service Service, logger *slog.Logger, adminToken string) *Handler {
	return &Handler{
		service:    service,
		logger:     logger,
		adminToken: adminToken,
	}
}

// Register mounts the FAQ routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/faqs", h.handleListFAQs)
	r.Get("/faqs/{id}", h.handleGetFAQ)

	r.Group(func(admin chi.Router) {
		admin.Use(adminmw.RequireAdminToken(h.adminToken, h.logger))
		admin.Post("/admin/faqs", h.handleCreateFAQ)
		admin.Patch("/admin/faqs/{id}", h.handleUpdateFAQ)
		admin.Delete("/admin/faqs/{id}", h.handleDeleteFAQ)
	})
}

func (h *Handler) handleCreateFAQ(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateFAQRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	faq, err := h.service.CreateFAQ(ctx, service.CreateFAQInput{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "failed to create faq",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, faq)
}

func (h *Handler) handleUpdateFAQ(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	faqID, err := id.ParseFAQID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[UpdateFAQRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	faq, err := h.service.UpdateFAQ(ctx, faqID, models.FAQUpdate{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "failed to update faq",
			"request_id", requestID,
			"faq_id", faqID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, faq)
}

func (h *Handler) handleDeleteFAQ(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	faqID, err := id.ParseFAQID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.DeleteFAQ(ctx, faqID); err != nil {
		h.logger.WarnContext(ctx, "failed to delete faq",
			"request_id", requestID,
			"faq_id", faqID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListFAQs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	faqs, err := h.service.ListFAQs(ctx, r.URL.Query().Get("category"))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list faqs",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, ListFAQsResponse{Items: faqs})
}

func (h *Handler) handleGetFAQ(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	faqID, err := id.ParseFAQID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	faq, err := h.service.GetFAQ(ctx, faqID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, faq)
}
