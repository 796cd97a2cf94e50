package docstore

import "context"

// Store is an abstraction for persisting whole interchange payloads.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get reads the full payload stored under name.
	// Returns an error satisfying errors.Is(err, ErrNotFound) when absent.
	Get(ctx context.Context, name string) ([]byte, error)

	// Put writes a payload atomically, replacing any existing one.
	Put(ctx context.Context, name string, data []byte) error

	// Delete removes a payload. Deleting an absent name is not an error.
	Delete(ctx context.Context, name string) error

	// List returns all payload names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}
