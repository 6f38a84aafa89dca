package service

import (
	"context"
	"errors"

	"tipline/internal/audit"
	"tipline/internal/tips/models"
	id "tipline/pkg/domain"
	"tipline/pkg/platform/sentinel"
)

// SweepExpirations promotes overdue weather tips from active to expired.
//
// The read port yields projections; each candidate is reloaded as a full
// aggregate and re-checked, since the projection may be stale by the time it
// is processed. Items that are not yet expired, or that lost a race with a
// concurrent removal or delete, are silently skipped. A failure on one item
// never aborts the rest of the sweep.
func (s *Service) SweepExpirations(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "tips.SweepExpirations")
	defer span.End()

	start := s.clock()
	if s.metrics != nil {
		defer s.metrics.ObserveSweep(start)
	}

	now, err := id.UTCInstantFrom(start)
	if err != nil {
		return err
	}

	candidates, _, err := s.query.FindAll(ctx, models.TipFilter{
		Type:   models.TipTypeWeather,
		Status: models.TipStatusActive,
	})
	if err != nil {
		return wrapStoreErr(err, "list expiring tips")
	}

	swept := 0
	for _, candidate := range candidates {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		expired, err := s.sweepOne(ctx, candidate.ID, now)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to sweep tip",
				"tip_id", candidate.ID.String(),
				"error", err,
			)
			if s.metrics != nil {
				s.metrics.IncrementSweepFailures()
			}
			continue
		}
		if expired {
			swept++
		}
	}

	s.logger.InfoContext(ctx, "expiration sweep finished",
		"candidates", len(candidates),
		"expired", swept,
	)
	return nil
}

func (s *Service) sweepOne(ctx context.Context, tipID id.TipID, now id.UTCInstant) (bool, error) {
	tip, err := s.store.FindByID(ctx, tipID)
	if errors.Is(err, sentinel.ErrNotFound) {
		// Deleted since the query ran; expected, not an error.
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if !tip.HasExpired(now) || !tip.IsActive() {
		return false, nil
	}
	if err := tip.Expire(now); err != nil {
		// Lost a race with another writer; the tip is already terminal.
		return false, nil
	}
	if err := s.store.Update(ctx, tip); err != nil {
		return false, err
	}

	s.emit(ctx, audit.Event{
		Type:      audit.EventTipExpired,
		SubjectID: tipID.String(),
	})
	if s.metrics != nil {
		s.metrics.IncrementTipsExpired()
	}
	return true, nil
}
