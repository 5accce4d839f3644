package task

import "context"

// Store is the session-scoped collection of task records.
type Store interface {
	// Append adds a record at the end of the collection.
	// Returns ErrDuplicateID if a record with the same ID exists.
	Append(ctx context.Context, r Record) error

	// List returns all records in insertion order.
	List(ctx context.Context) ([]Record, error)

	// Get returns a record by ID.
	// Returns ErrNotFound if the record does not exist.
	Get(ctx context.Context, id string) (Record, error)

	// Len returns the number of stored records.
	Len(ctx context.Context) (int, error)
}
