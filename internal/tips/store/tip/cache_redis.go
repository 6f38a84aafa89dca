package tip

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"tipline/internal/tips/models"
	id "tipline/pkg/domain"
)

const (
	projectionKeyPrefix  = "tips:projection:"
	defaultProjectionTTL = 5 * time.Minute
)

// Query is the read port this package decorates.
type Query interface {
	FindAll(ctx context.Context, filter models.TipFilter) ([]models.TipProjection, int, error)
	FindByID(ctx context.Context, tipID id.TipID) (*models.TipProjection, error)
}

// Store is the write port this package decorates.
type Store interface {
	Create(ctx context.Context, tip *models.Tip) error
	Update(ctx context.Context, tip *models.Tip) error
	Delete(ctx context.Context, tipID id.TipID) error
	FindByID(ctx context.Context, tipID id.TipID) (*models.Tip, error)
}

// CachedTipQuery caches single-tip projections in Redis in front of another
// query implementation. List queries pass through uncached. Cache failures
// degrade to the underlying query, never to an error.
type CachedTipQuery struct {
	next   Query
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

type CachedTipQueryOption func(*CachedTipQuery)

// WithProjectionTTL overrides how long cached projections live.
func WithProjectionTTL(ttl time.Duration) CachedTipQueryOption {
	return func(c *CachedTipQuery) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func WithCacheLogger(logger *slog.Logger) CachedTipQueryOption {
	return func(c *CachedTipQuery) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCachedQuery wraps a query with a Redis projection cache.
func NewCachedQuery(next Query, client *redis.Client, opts ...CachedTipQueryOption) *CachedTipQuery {
	c := &CachedTipQuery{
		next:   next,
		client: client,
		ttl:    defaultProjectionTTL,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func (c *CachedTipQuery) FindAll(ctx context.Context, filter models.TipFilter) ([]models.TipProjection, int, error) {
	return c.next.FindAll(ctx, filter)
}

func (c *CachedTipQuery) FindByID(ctx context.Context, tipID id.TipID) (*models.TipProjection, error) {
	key := projectionKeyPrefix + tipID.String()

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var projection models.TipProjection
		if err := json.Unmarshal(payload, &projection); err == nil {
			return &projection, nil
		}
		// Unreadable entry; fall through and overwrite it.
	} else if !errors.Is(err, redis.Nil) {
		c.logger.WarnContext(ctx, "tip cache read failed", "tip_id", tipID.String(), "error", err)
	}

	projection, err := c.next.FindByID(ctx, tipID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(projection); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.WarnContext(ctx, "tip cache write failed", "tip_id", tipID.String(), "error", err)
		}
	}
	return projection, nil
}

// InvalidatingTipStore wraps a repository and drops the cached projection
// after every successful write so readers never see a stale tip past the
// write that changed it.
type InvalidatingTipStore struct {
	next   Store
	client *redis.Client
	logger *slog.Logger
}

// NewInvalidatingStore wraps a repository with cache invalidation.
func NewInvalidatingStore(next Store, client *redis.Client, logger *slog.Logger) *InvalidatingTipStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvalidatingTipStore{next: next, client: client, logger: logger}
}

func (s *InvalidatingTipStore) Create(ctx context.Context, tip *models.Tip) error {
	return s.next.Create(ctx, tip)
}

func (s *InvalidatingTipStore) Update(ctx context.Context, tip *models.Tip) error {
	if err := s.next.Update(ctx, tip); err != nil {
		return err
	}
	s.invalidate(ctx, tip.ID())
	return nil
}

func (s *InvalidatingTipStore) Delete(ctx context.Context, tipID id.TipID) error {
	if err := s.next.Delete(ctx, tipID); err != nil {
		return err
	}
	s.invalidate(ctx, tipID)
	return nil
}

func (s *InvalidatingTipStore) FindByID(ctx context.Context, tipID id.TipID) (*models.Tip, error) {
	return s.next.FindByID(ctx, tipID)
}

func (s *InvalidatingTipStore) invalidate(ctx context.Context, tipID id.TipID) {
	key := projectionKeyPrefix + tipID.String()
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.WarnContext(ctx, "tip cache invalidation failed", "tip_id", tipID.String(), "error", err)
	}
}
