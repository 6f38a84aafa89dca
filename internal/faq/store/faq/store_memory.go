package faq

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"tipline/internal/faq/models"
	id "tipline/pkg/domain"
	"tipline/pkg/platform/sentinel"
)

// InMemoryFAQStore keeps FAQ entries in memory for tests/dev. Values are
// copied on the way in and out so callers never share state with the store.
type InMemoryFAQStore struct {
	mu   sync.RWMutex
	faqs map[id.FAQID]models.FAQ
}

// NewInMemory constructs an empty in-memory FAQ store.
func NewInMemory() *InMemoryFAQStore {
	return &InMemoryFAQStore{faqs: make(map[id.FAQID]models.FAQ)}
}

func (s *InMemoryFAQStore) Create(_ context.Context, faq *models.FAQ) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.faqs[faq.ID]; exists {
		return fmt.Errorf("faq %s: %w", faq.ID.String(), sentinel.ErrConflict)
	}
	s.faqs[faq.ID] = *faq
	return nil
}

func (s *InMemoryFAQStore) Update(_ context.Context, faq *models.FAQ) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.faqs[faq.ID]; !exists {
		return fmt.Errorf("faq %s: %w", faq.ID.String(), sentinel.ErrNotFound)
	}
	s.faqs[faq.ID] = *faq
	return nil
}

func (s *InMemoryFAQStore) Delete(_ context.Context, faqID id.FAQID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.faqs[faqID]; !exists {
		return fmt.Errorf("faq %s: %w", faqID.String(), sentinel.ErrNotFound)
	}
	delete(s.faqs, faqID)
	return nil
}

func (s *InMemoryFAQStore) FindByID(_ context.Context, faqID id.FAQID) (*models.FAQ, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if faq, ok := s.faqs[faqID]; ok {
		return &faq, nil
	}
	return nil, fmt.Errorf("faq %s: %w", faqID.String(), sentinel.ErrNotFound)
}

// FindAll returns entries oldest first, optionally narrowed to a category.
func (s *InMemoryFAQStore) FindAll(_ context.Context, category string) ([]models.FAQ, error) {
	s.mu.RLock()
	matched := make([]models.FAQ, 0, len(s.faqs))
	for _, faq := range s.faqs {
		if category != "" && faq.Category != category {
			continue
		}
		matched = append(matched, faq)
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Time().Before(matched[j].CreatedAt.Time())
	})
	return matched, nil
}
