package domain

import "errors"

// ErrNotFound is returned when an id does not resolve to a local record.
var ErrNotFound = errors.New("no record found for the given id")

// ConflictError signals a uniqueness violation or a cross-service reference
// that blocks the operation. The reason names the colliding field or the
// blocking relation and is safe to show to callers.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// Conflict builds a ConflictError.
func Conflict(reason string) error {
	return &ConflictError{Reason: reason}
}
