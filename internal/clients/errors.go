package clients

import (
	"errors"
	"fmt"
)

// ErrNotFound means the remote service answered and reported no such entity.
var ErrNotFound = errors.New("remote resource not found")

// ErrUnavailable means no response arrived at all: connection refused or
// timeout. Distinct from the remote saying no.
var ErrUnavailable = errors.New("remote service unavailable")

// ErrBadResponse means the remote answered 200 but the body could not be
// decoded. The dependency is up, its answer is unusable.
var ErrBadResponse = errors.New("invalid response from remote service")

// StatusError is any other non-2xx answer from a remote service. The status
// code is kept so the boundary can mirror it where appropriate.
type StatusError struct {
	Service string
	Code    int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Service, e.Code)
}
