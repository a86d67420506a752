package storage

import (
	"context"
	"errors"

	v1 "github.com/emis-lab/aggregate-query/internal/api/v1"
	"github.com/google/uuid"
)

// ErrNotFound is returned when no aggregate query has the requested id.
var ErrNotFound = errors.New("aggregate query not found")

// ErrInvalidStatus is returned when a patch carries a status outside its enum.
var ErrInvalidStatus = v1.ErrInvalidStatus

// AggregateQueryStore defines durable storage for aggregate queries.
//
// Implementations assign ids, stamp timestamps and return copies of the
// stored records. UpdateStatus and Delete are atomic per id.
type AggregateQueryStore interface {
	Create(ctx context.Context, user uuid.UUID, model v1.Model) (*v1.AggregateQuery, error)
	Get(ctx context.Context, id int64) (*v1.AggregateQuery, error)

	// List returns every query in creation order.
	List(ctx context.Context) ([]*v1.AggregateQuery, error)

	// ListByUser returns the queries owned by user, in creation order.
	ListByUser(ctx context.Context, user uuid.UUID) ([]*v1.AggregateQuery, error)

	// UpdateStatus applies the non-nil fields of patch and advances patched_at.
	UpdateStatus(ctx context.Context, id int64, patch v1.StatusPatch) (*v1.AggregateQuery, error)

	// Delete removes the query and returns its last state.
	Delete(ctx context.Context, id int64) (*v1.AggregateQuery, error)

	Ping(ctx context.Context) error
}
