package domain

import (
	"encoding/json"
	"time"

	dErrors "tipline/pkg/domain-errors"
)

// Time-value errors. Package-level so callers can test with errors.Is while
// transports still see a stable code.
var (
	ErrInvalidDate           = dErrors.New(dErrors.CodeValidation, "invalid date")
	ErrInvalidDaysQuantity   = dErrors.New(dErrors.CodeValidation, "days quantity must be a positive integer")
	ErrInvalidMonthsQuantity = dErrors.New(dErrors.CodeValidation, "months quantity must be a positive integer")
)

// UTCInstant is an immutable point in time normalized to UTC.
//
// Invariants:
//   - The wrapped time is always in UTC, regardless of the source location
//   - The zero value is not a valid instant; construct via NowUTC,
//     UTCInstantFrom, or ParseUTCInstant
//   - All arithmetic returns a new value; the receiver is never mutated
type UTCInstant struct {
	t time.Time
}

// NowUTC returns the current instant in UTC.
func NowUTC() UTCInstant {
	return UTCInstant{t: time.Now().UTC()}
}

// UTCInstantFrom normalizes an external time.Time to UTC.
// The zero time is rejected: it is the Go analog of a missing or
// unparseable external time value.
func UTCInstantFrom(t time.Time) (UTCInstant, error) {
	if t.IsZero() {
		return UTCInstant{}, ErrInvalidDate
	}
	return UTCInstant{t: t.UTC()}, nil
}

// ParseUTCInstant parses an RFC 3339 string from a trust boundary.
func ParseUTCInstant(s string) (UTCInstant, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return UTCInstant{}, ErrInvalidDate
	}
	return UTCInstant{t: t.UTC()}, nil
}

// Time returns the wrapped time.Time (always UTC).
func (i UTCInstant) Time() time.Time {
	return i.t
}

// IsZero reports whether the instant is the invalid zero value.
func (i UTCInstant) IsZero() bool {
	return i.t.IsZero()
}

// AddDays returns a new instant n calendar days forward. n must be positive.
func (i UTCInstant) AddDays(n int) (UTCInstant, error) {
	if err := i.validate(); err != nil {
		return UTCInstant{}, err
	}
	if n <= 0 {
		return UTCInstant{}, ErrInvalidDaysQuantity
	}
	return UTCInstant{t: i.t.AddDate(0, 0, n)}, nil
}

// AddMonths returns a new instant n calendar months forward. n must be positive.
func (i UTCInstant) AddMonths(n int) (UTCInstant, error) {
	if err := i.validate(); err != nil {
		return UTCInstant{}, err
	}
	if n <= 0 {
		return UTCInstant{}, ErrInvalidMonthsQuantity
	}
	return UTCInstant{t: i.t.AddDate(0, n, 0)}, nil
}

// IsBefore reports whether i precedes other. With inclusive set, equal
// instants satisfy the predicate. A zero-value operand fails with ErrInvalidDate.
func (i UTCInstant) IsBefore(other UTCInstant, inclusive bool) (bool, error) {
	if err := i.validate(); err != nil {
		return false, err
	}
	if err := other.validate(); err != nil {
		return false, err
	}
	if inclusive {
		return !i.t.After(other.t), nil
	}
	return i.t.Before(other.t), nil
}

// IsAfter reports whether i follows other. With inclusive set, equal
// instants satisfy the predicate. A zero-value operand fails with ErrInvalidDate.
func (i UTCInstant) IsAfter(other UTCInstant, inclusive bool) (bool, error) {
	if err := i.validate(); err != nil {
		return false, err
	}
	if err := other.validate(); err != nil {
		return false, err
	}
	if inclusive {
		return !i.t.Before(other.t), nil
	}
	return i.t.After(other.t), nil
}

// Equal reports whether both instants denote the same point in time.
func (i UTCInstant) Equal(other UTCInstant) bool {
	return i.t.Equal(other.t)
}

func (i UTCInstant) String() string {
	return i.t.Format(time.RFC3339Nano)
}

func (i UTCInstant) validate() error {
	if i.t.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// MarshalJSON renders the instant as an RFC 3339 string.
func (i UTCInstant) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.t.Format(time.RFC3339Nano))
}

// UnmarshalJSON parses an RFC 3339 string and normalizes it to UTC.
func (i *UTCInstant) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return ErrInvalidDate
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return ErrInvalidDate
	}
	i.t = parsed.UTC()
	return nil
}
