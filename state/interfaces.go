package state

import (
	"context"
	"time"

	"github.com/poiesic/adaptivesearch/core"
)

// Store provides shared session state for the refinement loop.
// Implementations must be thread-safe and support concurrent access.
type Store interface {
	// Put stores an entry under its key. Writes are last-writer-wins;
	// a non-zero ttl lets the entry expire. The entry's UpdatedAt is
	// set by the store.
	Put(ctx context.Context, entry core.StateEntry, ttl time.Duration) error

	// Get retrieves an entry by key.
	// Returns ErrNotFound if the entry doesn't exist or has expired.
	Get(ctx context.Context, key string) (*core.StateEntry, error)

	// Delete removes an entry by key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error

	// AppendIteration adds one record to a request's iteration log.
	// The log is append-only and ordered by insertion.
	AppendIteration(ctx context.Context, requestID string, record core.IterationRecord) error

	// Iterations returns a request's full iteration log in insertion
	// order. A request with no recorded iterations yields an empty
	// slice, not an error.
	Iterations(ctx context.Context, requestID string) ([]core.IterationRecord, error)

	// Close closes the store and releases resources.
	Close() error
}
