// Package handler wires the tips HTTP API to the tips service. Reads are
// public; writes require a valid bearer token.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tipline/internal/tips/models"
	"tipline/internal/tips/service"
	id "tipline/pkg/domain"
	dErrors "tipline/pkg/domain-errors"
	"tipline/pkg/platform/httputil"
	authmw "tipline/pkg/platform/middleware/auth"
	"tipline/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the interface for tip operations.
type Service interface {
	CreateWeatherTip(ctx context.Context, input service.CreateTipInput, createdBy id.UserID) (models.TipSnapshot, error)
	CreateLocalTip(ctx context.Context, input service.CreateTipInput, createdBy id.UserID) (models.TipSnapshot, error)
	EditTip(ctx context.Context, tipID id.TipID, update models.TipUpdate, creatorID id.UserID) (models.TipSnapshot, error)
	DeleteTip(ctx context.Context, tipID id.TipID, creatorID id.UserID) error
	FindAllTips(ctx context.Context, filter models.TipFilter) ([]models.TipProjection, int, error)
	GetTip(ctx context.Context, tipID id.TipID) (*models.TipProjection, error)
}

// Handler handles tip endpoints.
type Handler struct {
	service   Service
	logger    *slog.Logger
	validator authmw.TokenValidator
}

// New creates a tips Handler.
func New(service Service, logger *slog.Logger, validator authmw.TokenValidator) *Handler {
	return &Handler{
		service:   service,
		logger:    logger,
		validator: validator,
	}
}

// Register mounts the tip routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/tips", h.handleListTips)
	r.Get("/tips/{id}", h.handleGetTip)

	r.Group(func(authed chi.Router) {
		authed.Use(authmw.RequireAuth(h.validator, h.logger))
		authed.Post("/tips/weather", h.handleCreateWeatherTip)
		authed.Post("/tips/local", h.handleCreateLocalTip)
		authed.Patch("/tips/{id}", h.handleEditTip)
		authed.Delete("/tips/{id}", h.handleDeleteTip)
	})
}

func (h *Handler) handleCreateWeatherTip(w http.ResponseWriter, r *http.Request) {
	h.handleCreate(w, r, h.service.CreateWeatherTip)
}

func (h *Handler) handleCreateLocalTip(w http.ResponseWriter, r *http.Request) {
	h.handleCreate(w, r, h.service.CreateLocalTip)
}

func (h *Handler) handleCreate(
	w http.ResponseWriter,
	r *http.Request,
	create func(ctx context.Context, input service.CreateTipInput, createdBy id.UserID) (models.TipSnapshot, error),
) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	userID := requestcontext.UserID(ctx)
	if userID.IsNil() {
		// Should never happen behind RequireAuth.
		h.logger.ErrorContext(ctx, "userID missing from context despite auth middleware",
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return
	}

	req, ok := httputil.DecodeAndPrepare[CreateTipRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	snap, err := create(ctx, service.CreateTipInput{
		Title:      req.Title,
		Content:    req.Content,
		LocationID: req.LocationID,
	}, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to create tip",
			"request_id", requestID,
			"user_id", userID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, fromSnapshot(snap))
}

func (h *Handler) handleEditTip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	tipID, err := id.ParseTipID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	req, ok := httputil.DecodeAndPrepare[UpdateTipRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	snap, err := h.service.EditTip(ctx, tipID, models.TipUpdate{
		Title:   req.Title,
		Content: req.Content,
	}, h.creatorID(ctx))
	if err != nil {
		h.logger.WarnContext(ctx, "failed to edit tip",
			"request_id", requestID,
			"tip_id", tipID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, fromSnapshot(snap))
}

func (h *Handler) handleDeleteTip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	tipID, err := id.ParseTipID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.DeleteTip(ctx, tipID, h.creatorID(ctx)); err != nil {
		h.logger.WarnContext(ctx, "failed to delete tip",
			"request_id", requestID,
			"tip_id", tipID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListTips(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := filterFromQuery(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	items, total, err := h.service.FindAllTips(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list tips",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, ListTipsResponse{
		Items: fromProjections(items),
		Total: total,
	})
}

func (h *Handler) handleGetTip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tipID, err := id.ParseTipID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	projection, err := h.service.GetTip(ctx, tipID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, fromProjection(*projection))
}

// creatorID resolves the ownership identity for mutating calls. Admin tokens
// act without an owner and therefore bypass the ownership check.
func (h *Handler) creatorID(ctx context.Context) id.UserID {
	if requestcontext.IsAdmin(ctx) {
		return id.UserID{}
	}
	return requestcontext.UserID(ctx)
}
