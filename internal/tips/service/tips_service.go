package service

import (
	"context"

	"tipline/internal/audit"
	"tipline/internal/tips/models"
	id "tipline/pkg/domain"
	dErrors "tipline/pkg/domain-errors"
	"tipline/pkg/requestcontext"
)

// CreateTipInput carries the caller-supplied attributes for a new tip.
type CreateTipInput struct {
	Title      string
	Content    string
	LocationID string
}

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// CreateWeatherTip creates an active weather tip expiring one day from now.
func (s *Service) CreateWeatherTip(ctx context.Context, input CreateTipInput, createdBy id.UserID) (models.TipSnapshot, error) {
	ctx, span := s.tracer.Start(ctx, "tips.CreateWeatherTip")
	defer span.End()

	now, err := id.UTCInstantFrom(requestcontext.Now(ctx))
	if err != nil {
		return models.TipSnapshot{}, err
	}
	tip, err := models.NewWeatherTip(id.NewTipID(), input.Title, input.Content, input.LocationID, createdBy, now)
	if err != nil {
		return models.TipSnapshot{}, err
	}
	return s.persistNew(ctx, tip, createdBy)
}

// CreateLocalTip creates an active local tip tied to a location.
func (s *Service) CreateLocalTip(ctx context.Context, input CreateTipInput, createdBy id.UserID) (models.TipSnapshot, error) {
	ctx, span := s.tracer.Start(ctx, "tips.CreateLocalTip")
	defer span.End()

	now, err := id.UTCInstantFrom(requestcontext.Now(ctx))
	if err != nil {
		return models.TipSnapshot{}, err
	}
	tip, err := models.NewLocalTip(id.NewTipID(), input.Title, input.Content, input.LocationID, createdBy, now)
	if err != nil {
		return models.TipSnapshot{}, err
	}
	return s.persistNew(ctx, tip, createdBy)
}

func (s *Service) persistNew(ctx context.Context, tip *models.Tip, createdBy id.UserID) (models.TipSnapshot, error) {
	if err := s.store.Create(ctx, tip); err != nil {
		return models.TipSnapshot{}, wrapStoreErr(err, "create tip")
	}

	snap := tip.Snapshot()
	s.emit(ctx, audit.Event{
		Type:      audit.EventTipCreated,
		ActorID:   createdBy.String(),
		SubjectID: snap.ID.String(),
		RequestID: requestcontext.RequestID(ctx),
		Metadata:  map[string]string{"type": snap.Type.String()},
	})
	if s.metrics != nil {
		s.metrics.IncrementTipsCreated(snap.Type.String())
	}
	return snap, nil
}

// EditTip applies a partial update to an active tip.
//
// When creatorID is non-nil it must match the tip's creator; a mismatch is
// reported as not-found, never forbidden. A nil creatorID is an administrative
// caller and skips the ownership check.
func (s *Service) EditTip(ctx context.Context, tipID id.TipID, update models.TipUpdate, creatorID id.UserID) (models.TipSnapshot, error) {
	ctx, span := s.tracer.Start(ctx, "tips.EditTip")
	defer span.End()

	tip, err := s.loadOwned(ctx, tipID, creatorID)
	if err != nil {
		return models.TipSnapshot{}, err
	}

	now, err := id.UTCInstantFrom(requestcontext.Now(ctx))
	if err != nil {
		return models.TipSnapshot{}, err
	}
	if err := tip.Update(update, now); err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) && s.metrics != nil {
			s.metrics.IncrementEditsRejected()
		}
		return models.TipSnapshot{}, err
	}
	if err := s.store.Update(ctx, tip); err != nil {
		return models.TipSnapshot{}, wrapStoreErr(err, "save tip")
	}

	snap := tip.Snapshot()
	s.emit(ctx, audit.Event{
		Type:      audit.EventTipEdited,
		ActorID:   creatorID.String(),
		SubjectID: snap.ID.String(),
		RequestID: requestcontext.RequestID(ctx),
	})
	return snap, nil
}

// DeleteTip hard-deletes a tip through the repository. This removes the row:
// it is distinct from the removed lifecycle status, which it does not invoke.
// Ownership semantics match EditTip.
func (s *Service) DeleteTip(ctx context.Context, tipID id.TipID, creatorID id.UserID) error {
	ctx, span := s.tracer.Start(ctx, "tips.DeleteTip")
	defer span.End()

	if _, err := s.loadOwned(ctx, tipID, creatorID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, tipID); err != nil {
		return wrapStoreErr(err, "delete tip")
	}

	s.emit(ctx, audit.Event{
		Type:      audit.EventTipDeleted,
		ActorID:   creatorID.String(),
		SubjectID: tipID.String(),
		RequestID: requestcontext.RequestID(ctx),
	})
	if s.metrics != nil {
		s.metrics.IncrementTipsDeleted()
	}
	return nil
}

// FindAllTips lists tip projections matching the filter, with the total count
// before paging.
func (s *Service) FindAllTips(ctx context.Context, filter models.TipFilter) ([]models.TipProjection, int, error) {
	ctx, span := s.tracer.Start(ctx, "tips.FindAllTips")
	defer span.End()

	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, 0, dErrors.New(dErrors.CodeBadRequest, "unknown tip type")
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, 0, dErrors.New(dErrors.CodeBadRequest, "unknown tip status")
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	items, total, err := s.query.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, wrapStoreErr(err, "list tips")
	}
	return items, total, nil
}

// GetTip returns a single tip projection by id.
func (s *Service) GetTip(ctx context.Context, tipID id.TipID) (*models.TipProjection, error) {
	ctx, span := s.tracer.Start(ctx, "tips.GetTip")
	defer span.End()

	projection, err := s.query.FindByID(ctx, tipID)
	if err != nil {
		return nil, wrapStoreErr(err, "load tip")
	}
	return projection, nil
}

// loadOwned reloads the aggregate and enforces the ownership rule shared by
// edit and delete.
func (s *Service) loadOwned(ctx context.Context, tipID id.TipID, creatorID id.UserID) (*models.Tip, error) {
	tip, err := s.store.FindByID(ctx, tipID)
	if err != nil {
		return nil, wrapStoreErr(err, "load tip")
	}
	if !creatorID.IsNil() && tip.CreatedBy() != creatorID {
		return nil, errTipNotFound
	}
	return tip, nil
}
