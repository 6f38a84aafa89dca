package tip

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"tipline/internal/tips/models"
	id "tipline/pkg/domain"
	"tipline/pkg/platform/sentinel"
)

// Error Contract:
// All store methods follow this error pattern:
// - Return ErrNotFound when the requested entity does not exist
// - Return ErrConflict when a create collides with an existing id
// - Return nil for successful operations
// - Return wrapped errors with context for infrastructure failures

// InMemoryTipStore keeps tips in memory for tests/dev. Writes store
// snapshots, reads rebuild the aggregate so callers never share mutable state
// with the store. The query port is served by Query over the same data.
type InMemoryTipStore struct {
	mu   sync.RWMutex
	tips map[id.TipID]models.TipSnapshot
}

// NewInMemory constructs an empty in-memory tip store.
func NewInMemory() *InMemoryTipStore {
	return &InMemoryTipStore{tips: make(map[id.TipID]models.TipSnapshot)}
}

// Query returns the read-side view over the same data.
func (s *InMemoryTipStore) Query() *InMemoryTipQuery {
	return &InMemoryTipQuery{store: s}
}

// InMemoryTipQuery serves projections from an InMemoryTipStore.
type InMemoryTipQuery struct {
	store *InMemoryTipStore
}

func (s *InMemoryTipStore) Create(_ context.Context, tip *models.Tip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := tip.Snapshot()
	if _, exists := s.tips[snap.ID]; exists {
		return fmt.Errorf("tip %s: %w", snap.ID.String(), sentinel.ErrConflict)
	}
	s.tips[snap.ID] = snap
	return nil
}

func (s *InMemoryTipStore) Update(_ context.Context, tip *models.Tip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := tip.Snapshot()
	if _, exists := s.tips[snap.ID]; !exists {
		return fmt.Errorf("tip %s: %w", snap.ID.String(), sentinel.ErrNotFound)
	}
	s.tips[snap.ID] = snap
	return nil
}

func (s *InMemoryTipStore) Delete(_ context.Context, tipID id.TipID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tips[tipID]; !exists {
		return fmt.Errorf("tip %s: %w", tipID.String(), sentinel.ErrNotFound)
	}
	delete(s.tips, tipID)
	return nil
}

func (s *InMemoryTipStore) FindByID(_ context.Context, tipID id.TipID) (*models.Tip, error) {
	s.mu.RLock()
	snap, ok := s.tips[tipID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("tip %s: %w", tipID.String(), sentinel.ErrNotFound)
	}
	return models.LoadTip(snap)
}

// FindAll returns projections matching the filter, newest first, with the
// total match count before paging. A Limit of zero disables paging.
func (q *InMemoryTipQuery) FindAll(_ context.Context, filter models.TipFilter) ([]models.TipProjection, int, error) {
	q.store.mu.RLock()
	matched := make([]models.TipProjection, 0, len(q.store.tips))
	for _, snap := range q.store.tips {
		p := projectionFromSnapshot(snap)
		if filter.Matches(p) {
			matched = append(matched, p)
		}
	}
	q.store.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[j].CreatedAt.Time().Before(matched[i].CreatedAt.Time())
	})

	total := len(matched)
	if filter.Offset > 0 {
		if filter.Offset >= total {
			return []models.TipProjection{}, total, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

// FindByID returns the read-model row for a single tip.
func (q *InMemoryTipQuery) FindByID(_ context.Context, tipID id.TipID) (*models.TipProjection, error) {
	q.store.mu.RLock()
	snap, ok := q.store.tips[tipID]
	q.store.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("tip %s: %w", tipID.String(), sentinel.ErrNotFound)
	}
	p := projectionFromSnapshot(snap)
	return &p, nil
}

func projectionFromSnapshot(snap models.TipSnapshot) models.TipProjection {
	var expiresAt *id.UTCInstant
	if snap.ExpiresAt != nil {
		v := *snap.ExpiresAt
		expiresAt = &v
	}
	return models.TipProjection{
		ID:         snap.ID,
		Type:       snap.Type,
		Status:     snap.Status,
		Title:      snap.Title,
		Content:    snap.Content,
		LocationID: snap.LocationID,
		CreatedBy:  snap.CreatedBy,
		ExpiresAt:  expiresAt,
		CreatedAt:  snap.CreatedAt,
		UpdatedAt:  snap.UpdatedAt,
	}
}
