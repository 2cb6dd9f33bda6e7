// Package services holds the per-entity record services. Each one enforces
// its local invariants and, on delete, asks the services that may reference
// it whether the delete is safe. The veto decision is computed fresh from
// live remote data on every call; it is not atomic with the delete, so a
// concurrent create elsewhere can still leave a dangling reference.
package services

import "context"

// Service is the uniform CRUD surface every record service implements.
// RQ is the validated request shape, RS the response shape. Implementations
// share no state; the interface exists so the HTTP layer can stay generic.
type Service[RQ any, RS any] interface {
	List(ctx context.Context) ([]RS, error)
	Create(ctx context.Context, req RQ) (*RS, error)
	Update(ctx context.Context, req RQ, id uint64) (*RS, error)
	// Delete returns a snapshot of the record as it was before deletion.
	Delete(ctx context.Context, id uint64) (*RS, error)
	GetByID(ctx context.Context, id uint64) (*RS, error)
}
