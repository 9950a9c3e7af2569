package shared

import "context"

// Repository is the generic persistence contract both catalog resources
// implement. Mutations commit immediately and report success as
// "affected rows > 0"; an update that the store counts as zero rows is a
// failure even when the values were already in place.
type Repository[E any] interface {
	// FindAll returns every row, unfiltered and unpaginated.
	FindAll(ctx context.Context) ([]E, error)

	// FindByID returns the entity or (nil, nil) when the id is absent.
	// Absent is a valid result, not an error.
	FindByID(ctx context.Context, id int64) (*E, error)

	// Exists probes for the id so callers can short-circuit update and
	// delete before any mutation.
	Exists(ctx context.Context, id int64) (bool, error)

	// Create inserts the entity. The store assigns the identity as a side
	// effect of a successful insert.
	Create(ctx context.Context, entity *E) (bool, error)

	// Update replaces the full row identified by entity ID. The caller is
	// responsible for setting the intended target id; existence is not
	// verified here.
	Update(ctx context.Context, entity *E) (bool, error)

	// Delete removes the row identified by entity ID.
	Delete(ctx context.Context, entity *E) (bool, error)
}
