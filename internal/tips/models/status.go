package models

// TipType identifies the two tip variants. Weather tips are time-bound and
// auto-expire; local tips are tied to a location and never expire on their own.
type TipType string

const (
	TipTypeWeather TipType = "weather"
	TipTypeLocal   TipType = "local"
)

var validTipTypes = map[TipType]bool{
	TipTypeWeather: true,
	TipTypeLocal:   true,
}

// IsValid checks if the tip type is one of the supported enum values.
func (t TipType) IsValid() bool {
	return validTipTypes[t]
}

func (t TipType) String() string {
	return string(t)
}

// TipStatus is the lifecycle state of a tip.
//
// Transitions are one-directional and terminal:
//
//	active -> expired
//	active -> removed
//
// There is no transition out of expired or removed.
type TipStatus string

const (
	TipStatusActive  TipStatus = "active"
	TipStatusExpired TipStatus = "expired"
	TipStatusRemoved TipStatus = "removed"
)

var validTipStatuses = map[TipStatus]bool{
	TipStatusActive:  true,
	TipStatusExpired: true,
	TipStatusRemoved: true,
}

// IsValid checks if the status is one of the supported enum values.
func (s TipStatus) IsValid() bool {
	return validTipStatuses[s]
}

// IsTerminal reports whether no further transitions are possible.
func (s TipStatus) IsTerminal() bool {
	return s == TipStatusExpired || s == TipStatusRemoved
}

// CanTransitionTo reports whether the transition s -> next is legal.
func (s TipStatus) CanTransitionTo(next TipStatus) bool {
	if s != TipStatusActive {
		return false
	}
	return next == TipStatusExpired || next == TipStatusRemoved
}

func (s TipStatus) String() string {
	return string(s)
}
