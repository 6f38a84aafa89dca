package models

import (
	"strings"

	id "tipline/pkg/domain"
	dErrors "tipline/pkg/domain-errors"
)

// Domain errors for the tip lifecycle. Package-level values so callers can
// test with errors.Is; each also carries a stable code for transports.
var (
	// ErrLocationRequired is returned when a local tip is constructed or
	// loaded without a location.
	ErrLocationRequired = dErrors.New(dErrors.CodeValidation, "location_id is required for local tips")

	// ErrCannotBeEdited is returned when a mutation is attempted on a tip
	// that is no longer active.
	ErrCannotBeEdited = dErrors.New(dErrors.CodeInvariantViolation, "tip can no longer be edited")
)

const maxTitleLength = 200

// Tip is the aggregate root for an advisory content item.
//
// Invariants:
//   - Type is immutable after construction
//   - A local tip always carries a non-empty LocationID
//   - A weather tip always has ExpiresAt = CreatedAt + 1 day; a local tip never has ExpiresAt
//   - Title and Content may be mutated only while the tip is active
//   - Status transitions are one-directional and terminal (see TipStatus)
//   - Every mutation refreshes UpdatedAt; CreatedAt never changes
//   - State is observable only through Snapshot, which returns a fresh copy
//     per call so holders can never reach back into the aggregate
//
// A Tip instance is not safe for concurrent mutation; use it as a short-lived
// single-owner object per operation (load, mutate, persist, discard).
type Tip struct {
	id         id.TipID
	tipType    TipType
	status     TipStatus
	title      string
	content    string
	locationID string
	createdBy  id.UserID
	expiresAt  *id.UTCInstant
	createdAt  id.UTCInstant
	updatedAt  id.UTCInstant
}

// TipSnapshot is the externally observable attribute set of a tip. It is a
// plain value: mutating a snapshot never affects the aggregate it came from.
type TipSnapshot struct {
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

// TipUpdate is a partial update: nil fields retain their prior value.
type TipUpdate struct {
	Title   *string
	Content *string
}

func validateBase(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return dErrors.New(dErrors.CodeValidation, "tip title cannot be empty")
	}
	if len(title) > maxTitleLength {
		return dErrors.New(dErrors.CodeValidation, "tip title must be 200 characters or less")
	}
	if strings.TrimSpace(content) == "" {
		return dErrors.New(dErrors.CodeValidation, "tip content cannot be empty")
	}
	return nil
}

// NewWeatherTip constructs an active weather tip expiring one day after now.
// LocationID is optional for weather tips.
func NewWeatherTip(tipID id.TipID, title, content, locationID string, createdBy id.UserID, now id.UTCInstant) (*Tip, error) {
	if err := validateBase(title, content); err != nil {
		return nil, err
	}
	expiresAt, err := now.AddDays(1)
	if err != nil {
		return nil, err
	}
	return &Tip{
		id:         tipID,
		tipType:    TipTypeWeather,
		status:     TipStatusActive,
		title:      title,
		content:    content,
		locationID: locationID,
		createdBy:  createdBy,
		expiresAt:  &expiresAt,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// NewLocalTip constructs an active local tip. LocationID is required and the
// tip never expires on its own.
func NewLocalTip(tipID id.TipID, title, content, locationID string, createdBy id.UserID, now id.UTCInstant) (*Tip, error) {
	if err := validateBase(title, content); err != nil {
		return nil, err
	}
	if strings.TrimSpace(locationID) == "" {
		return nil, ErrLocationRequired
	}
	return &Tip{
		id:         tipID,
		tipType:    TipTypeLocal,
		status:     TipStatusActive,
		title:      title,
		content:    content,
		locationID: locationID,
		createdBy:  createdBy,
		expiresAt:  nil,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// LoadTip reconstructs a tip from a stored attribute set. Storage is expected
// to have enforced the construction invariants already, but they are checked
// again to guard against corrupt rows.
func LoadTip(snap TipSnapshot) (*Tip, error) {
	if snap.ID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "stored tip has no id")
	}
	if !snap.Type.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "stored tip has unknown type")
	}
	if !snap.Status.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "stored tip has unknown status")
	}
	if snap.Type == TipTypeLocal && strings.TrimSpace(snap.LocationID) == "" {
		return nil, ErrLocationRequired
	}
	if snap.Type == TipTypeWeather && snap.ExpiresAt == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "stored weather tip has no expiry")
	}
	if snap.Type == TipTypeLocal && snap.ExpiresAt != nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "stored local tip has an expiry")
	}
	if snap.CreatedAt.IsZero() || snap.UpdatedAt.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "stored tip has no timestamps")
	}
	t := &Tip{
		id:         snap.ID,
		tipType:    snap.Type,
		status:     snap.Status,
		title:      snap.Title,
		content:    snap.Content,
		locationID: snap.LocationID,
		createdBy:  snap.CreatedBy,
		createdAt:  snap.CreatedAt,
		updatedAt:  snap.UpdatedAt,
	}
	if snap.ExpiresAt != nil {
		expiresAt := *snap.ExpiresAt
		t.expiresAt = &expiresAt
	}
	return t, nil
}

func (t *Tip) ID() id.TipID         { return t.id }
func (t *Tip) Type() TipType        { return t.tipType }
func (t *Tip) Status() TipStatus    { return t.status }
func (t *Tip) CreatedBy() id.UserID { return t.createdBy }

func (t *Tip) IsWeather() bool { return t.tipType == TipTypeWeather }
func (t *Tip) IsLocal() bool   { return t.tipType == TipTypeLocal }
func (t *Tip) IsActive() bool  { return t.status == TipStatusActive }
func (t *Tip) IsExpired() bool { return t.status == TipStatusExpired }
func (t *Tip) IsRemoved() bool { return t.status == TipStatusRemoved }

// HasExpired reports whether the tip's deadline is strictly in the past.
// Always false when the tip has no deadline: local tips never expire through
// this check even though they can still be removed.
func (t *Tip) HasExpired(now id.UTCInstant) bool {
	if t.expiresAt == nil {
		return false
	}
	expired, err := now.IsAfter(*t.expiresAt, false)
	if err != nil {
		return false
	}
	return expired
}

// CanEdit checks whether title/content mutations are currently allowed.
func (t *Tip) CanEdit() error {
	if t.status != TipStatusActive {
		return ErrCannotBeEdited
	}
	return nil
}

// ApplyUpdate mutates only the fields provided; nil fields keep their prior
// value. Call CanEdit first to validate.
func (t *Tip) ApplyUpdate(update TipUpdate, now id.UTCInstant) {
	if update.Title != nil {
		t.title = *update.Title
	}
	if update.Content != nil {
		t.content = *update.Content
	}
	t.updatedAt = now
}

// Update validates and applies a partial update in one call.
func (t *Tip) Update(update TipUpdate, now id.UTCInstant) error {
	if err := t.CanEdit(); err != nil {
		return err
	}
	if update.Title != nil || update.Content != nil {
		title := t.title
		content := t.content
		if update.Title != nil {
			title = *update.Title
		}
		if update.Content != nil {
			content = *update.Content
		}
		if err := validateBase(title, content); err != nil {
			return err
		}
	}
	t.ApplyUpdate(update, now)
	return nil
}

// CanExpire checks if the tip can transition to expired status.
func (t *Tip) CanExpire() error {
	if !t.status.CanTransitionTo(TipStatusExpired) {
		return dErrors.New(dErrors.CodeInvariantViolation, "tip is not active")
	}
	return nil
}

// ApplyExpiration transitions the tip to expired status.
// Call CanExpire first to validate the transition.
func (t *Tip) ApplyExpiration(now id.UTCInstant) {
	t.status = TipStatusExpired
	t.updatedAt = now
}

// Expire validates and applies expiration in one call. Callers pre-check
// relevance (only weather tips carry a deadline); this method only enforces
// the transition itself.
func (t *Tip) Expire(now id.UTCInstant) error {
	if err := t.CanExpire(); err != nil {
		return err
	}
	t.ApplyExpiration(now)
	return nil
}

// CanRemove checks if the tip can transition to removed status.
func (t *Tip) CanRemove() error {
	if !t.status.CanTransitionTo(TipStatusRemoved) {
		return dErrors.New(dErrors.CodeInvariantViolation, "tip is not active")
	}
	return nil
}

// ApplyRemoval transitions the tip to removed status.
// Call CanRemove first to validate the transition.
func (t *Tip) ApplyRemoval(now id.UTCInstant) {
	t.status = TipStatusRemoved
	t.updatedAt = now
}

// Remove validates and applies removal in one call. Removal is a lifecycle
// state, distinct from deleting the row through the repository.
func (t *Tip) Remove(now id.UTCInstant) error {
	if err := t.CanRemove(); err != nil {
		return err
	}
	t.ApplyRemoval(now)
	return nil
}

// Snapshot returns a fresh copy of the tip's attributes. Two successive calls
// are equal in value but share no mutable state with the aggregate or each other.
func (t *Tip) Snapshot() TipSnapshot {
	snap := TipSnapshot{
		ID:         t.id,
		Type:       t.tipType,
		Status:     t.status,
		Title:      t.title,
		Content:    t.content,
		LocationID: t.locationID,
		CreatedBy:  t.createdBy,
		CreatedAt:  t.createdAt,
		UpdatedAt:  t.updatedAt,
	}
	if t.expiresAt != nil {
		expiresAt := *t.expiresAt
		snap.ExpiresAt = &expiresAt
	}
	return snap
}
