package stats

import "errors"

var (
	// ErrInvalidMax is returned when a bar width is requested against an
	// axis maximum of zero or NaN.
	ErrInvalidMax = errors.New("axis maximum must be a non-zero number")

	ErrStateNotFound = errors.New("state not found")
	ErrUnknownColumn = errors.New("unknown column")
	ErrNoSheet       = errors.New("spreadsheet has no sheets")
	ErrInvalidRecord = errors.New("invalid record")
)
