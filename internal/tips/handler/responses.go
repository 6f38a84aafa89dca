package handler

import (
	"tipline/internal/tips/models"
)

// TipResponse is the wire shape for a single tip.
type TipResponse struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	LocationID string  `json:"location_id,omitempty"`
	CreatedBy  string  `json:"created_by"`
	ExpiresAt  *string `json:"expires_at,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

// ListTipsResponse is the wire shape for GET /tips.
type ListTipsResponse struct {
	Items []TipResponse `json:"items"`
	Total int           `json:"total"`
}

func fromSnapshot(snap models.TipSnapshot) TipResponse {
	resp := TipResponse{
		ID:         snap.ID.String(),
		Type:       snap.Type.String(),
		Status:     snap.Status.String(),
		Title:      snap.Title,
		Content:    snap.Content,
		LocationID: snap.LocationID,
		CreatedBy:  snap.CreatedBy.String(),
		CreatedAt:  snap.CreatedAt.String(),
		UpdatedAt:  snap.UpdatedAt.String(),
	}
	if snap.ExpiresAt != nil {
		expiresAt := snap.ExpiresAt.String()
		resp.ExpiresAt = &expiresAt
	}
	return resp
}

func fromProjection(p models.TipProjection) TipResponse {
	resp := TipResponse{
		ID:         p.ID.String(),
		Type:       p.Type.String(),
		Status:     p.Status.String(),
		Title:      p.Title,
		Content:    p.Content,
		LocationID: p.LocationID,
		CreatedBy:  p.CreatedBy.String(),
		CreatedAt:  p.CreatedAt.String(),
		UpdatedAt:  p.UpdatedAt.String(),
	}
	if p.ExpiresAt != nil {
		expiresAt := p.ExpiresAt.String()
		resp.ExpiresAt = &expiresAt
	}
	return resp
}

func fromProjections(items []models.TipProjection) []TipResponse {
	responses := make([]TipResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, fromProjection(item))
	}
	return responses
}
