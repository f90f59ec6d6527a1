package game

import "errors"

var (
	ErrUnknownPiece  = errors.New("unknown piece")
	ErrOutOfBounds   = errors.New("target out of bounds")
	ErrOwnPiece      = errors.New("target occupied by own piece")
	ErrNoMovement    = errors.New("piece does not move")
	ErrWrongDistance = errors.New("distance does not match line count")
	ErrBlocked       = errors.New("path crosses an opposing piece")
	ErrZenIsolated   = errors.New("zen has no neighbouring piece")
	ErrZenReturn     = errors.New("zen already placed here")
	ErrInvalidState  = errors.New("invalid state")
)

// Reason classifies a validation error for human-facing callers.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonUnknownPiece
	ReasonOutOfBounds
	ReasonOwnPiece
	ReasonNoMovement
	ReasonWrongDistance
	ReasonBlocked
	ReasonZenIsolated
	ReasonZenReturn
	ReasonOther
)

var reasons = []struct {
	err    error
	reason Reason
}{
	{ErrUnknownPiece, ReasonUnknownPiece},
	{ErrOutOfBounds, ReasonOutOfBounds},
	{ErrOwnPiece, ReasonOwnPiece},
	{ErrNoMovement, ReasonNoMovement},
	{ErrWrongDistance, ReasonWrongDistance},
	{ErrBlocked, ReasonBlocked},
	{ErrZenIsolated, ReasonZenIsolated},
	{ErrZenReturn, ReasonZenReturn},
}

// ReasonOf maps an error returned by Validate onto a Reason.
func ReasonOf(err error) Reason {
	if err == nil {
		return ReasonNone
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return ReasonOther
}
