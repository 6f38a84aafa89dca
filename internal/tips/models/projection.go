package models

import (
	"strings"

	id "tipline/pkg/domain"
)

// TipProjection is the read-model row returned by the query port. It is plain
// data, not an editable aggregate: mutating it has no effect on stored state.
// Callers that need to mutate a tip must reload it through the repository.
type TipProjection struct {
	ID         id.TipID       `json:"id"`
	Type       TipType        `json:"type"`
	Status     TipStatus      `json:"status"`
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	LocationID string         `json:"location_id,omitempty"`
	CreatedBy  id.UserID      `json:"created_by"`
	ExpiresAt  *id.UTCInstant `json:"expires_at,omitempty"`
	CreatedAt  id.UTCInstant  `json:"created_at"`
	UpdatedAt  id.UTCInstant  `json:"updated_at"`
}

// TipFilter narrows a FindAll query. Zero fields are ignored.
type TipFilter struct {
	Type       TipType
	Status     TipStatus
	LocationID string
	Search     string
	Limit      int
	Offset     int
}

// Matches reports whether a projection satisfies the filter (ignoring paging).
// Shared by the in-memory store and tests so both agree on filter semantics.
func (f TipFilter) Matches(p TipProjection) bool {
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.LocationID != "" && p.LocationID != f.LocationID {
		return false
	}
	if f.Search != "" && !containsFold(p.Title, f.Search) && !containsFold(p.Content, f.Search) {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
