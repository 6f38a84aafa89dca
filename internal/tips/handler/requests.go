package handler

import (
	"net/http"
	"strconv"
	"strings"

	"tipline/internal/tips/models"
	dErrors "tipline/pkg/domain-errors"
)

// CreateTipRequest is the HTTP request body for POST /tips/weather and
// POST /tips/local.
type CreateTipRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	LocationID string `json:"location_id,omitempty"`
}

// Validate implements httputil.Validatable. Field-level rules (lengths,
// location requirements) belong to the entity; the handler only rejects
// obviously empty bodies early.
func (r *CreateTipRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" && strings.TrimSpace(r.Content) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return nil
}

// UpdateTipRequest is the HTTP request body for PATCH /tips/{id}. Absent
// fields retain their stored value.
type UpdateTipRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

func (r *UpdateTipRequest) Validate() error {
	if r.Title == nil && r.Content == nil {
		return dErrors.New(dErrors.CodeBadRequest, "at least one field must be provided")
	}
	return nil
}

func filterFromQuery(r *http.Request) (models.TipFilter, error) {
	query := r.URL.Query()

	filter := models.TipFilter{
		Type:       models.TipType(query.Get("type")),
		Status:     models.TipStatus(query.Get("status")),
		LocationID: query.Get("location_id"),
		Search:     query.Get("search"),
	}

	var err error
	if filter.Limit, err = intParam(query.Get("limit")); err != nil {
		return models.TipFilter{}, dErrors.New(dErrors.CodeBadRequest, "limit must be an integer")
	}
	if filter.Offset, err = intParam(query.Get("offset")); err != nil {
		return models.TipFilter{}, dErrors.New(dErrors.CodeBadRequest, "offset must be an integer")
	}
	return filter, nil
}

func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
