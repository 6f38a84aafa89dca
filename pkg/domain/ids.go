// Package domain contains shared domain primitives: typed identifiers and the
// UTCInstant time value. These are used across every module boundary, so the
// package depends on nothing inside internal/.
package domain

import (
	"github.com/google/uuid"

	dErrors "tipline/pkg/domain-errors"
)

// Typed IDs prevent cross-entity assignment at compile time. Always construct
// via the Parse functions at trust boundaries; direct casting bypasses validation.
type (
	TipID  uuid.UUID
	UserID uuid.UUID
	FAQID  uuid.UUID
)

func NewTipID() TipID   { return TipID(uuid.New()) }
func NewUserID() UserID { return UserID(uuid.New()) }
func NewFAQID() FAQID   { return FAQID(uuid.New()) }

func (id TipID) String() string  { return uuid.UUID(id).String() }
func (id UserID) String() string { return uuid.UUID(id).String() }
func (id FAQID) String() string  { return uuid.UUID(id).String() }

func (id TipID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }
func (id UserID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id FAQID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }

func parseUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id must be a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id cannot be the nil UUID")
	}
	return u, nil
}

// ParseTipID validates and returns a TipID from external input.
func ParseTipID(s string) (TipID, error) {
	u, err := parseUUID(s)
	if err != nil {
		return TipID{}, err
	}
	return TipID(u), nil
}

// ParseUserID validates and returns a UserID from external input.
func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s)
	if err != nil {
		return UserID{}, err
	}
	return UserID(u), nil
}

// ParseFAQID validates and returns a FAQID from external input.
func ParseFAQID(s string) (FAQID, error) {
	u, err := parseUUID(s)
	if err != nil {
		return FAQID{}, err
	}
	return FAQID(u), nil
}
