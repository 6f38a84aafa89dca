package handler

import (
	"strings"

	"tipline/internal/faq/models"
	dErrors "tipline/pkg/domain-errors"
)

// CreateFAQRequest is the HTTP request body for POST /admin/faqs.
type CreateFAQRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category,omitempty"`
}

// Validate implements httputil.Validatable. Content rules live on the
// entity; the handler only rejects obviously empty bodies early.
func (r *CreateFAQRequest) Validate() error {
	if strings.TrimSpace(r.Question) == "" && strings.TrimSpace(r.Answer) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return nil
}

// UpdateFAQRequest is the HTTP request body for PATCH /admin/faqs/{id}.
// Absent fields retain their stored value.
type UpdateFAQRequest struct {
	Question *string `json:"question,omitempty"`
	Answer   *string `json:"answer,omitempty"`
	Category *string `json:"category,omitempty"`
}

func (r *UpdateFAQRequest) Validate() error {
	if r.Question == nil && r.Answer == nil && r.Category == nil {
		return dErrors.New(dErrors.CodeBadRequest, "at least one field must be provided")
	}
	return nil
}

// ListFAQsResponse is the wire shape for GET /faqs.
type ListFAQsResponse struct {
	Items []models.FAQ `json:"items"`
}
