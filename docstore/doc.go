// Package docstore provides storage abstraction for interchange payloads.
//
// Store is the interface for reading and writing whole payloads.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem with atomic temp-and-rename writes
//   - MemoryStore: In-memory store for testing
//   - CachingStore: Read-through cache over any Store
//   - minio.Store: MinIO / S3-compatible object storage
//
// # Custom Implementations
//
// Implement the Store interface to support custom backends:
//
//	type Store interface {
//	    Get(ctx, name) ([]byte, error)
//	    Put(ctx, name, data) error         // Atomic write
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// # Compression
//
// SaveTable and LoadTable select compression by file extension:
//
//	docstore.SaveTable(ctx, store, "gut.biom.zst", table, "my-pipeline 1.0")
//	t, _ := docstore.LoadTable(ctx, store, "gut.biom.zst")
package docstore
