package sparkline

import "errors"

var (
	// ErrInvalidState is returned when a comparison needs a value the entity
	// does not hold, such as the first value of an empty series.
	ErrInvalidState = errors.New("invalid state")

	// ErrKindMismatch is returned by CompareTo when the two cells hold
	// different kinds of data.
	ErrKindMismatch = errors.New("cannot compare values of different kinds")
)
