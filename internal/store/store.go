package store

import "context"

//go:generate mockgen -source=store.go -destination=mock_store.go -package=store

// Collection names used by the auction service
const (
	CollectionAuction = "auction"
	CollectionTeam    = "team"
)

// DefaultLimit caps List results when a call site does not override it
const DefaultLimit = 100

// DocumentStore defines generic CRUD access to named collections in a
// document database. Implementations replace the store's native identifier
// with a public string "id" field on every document they hand out, and
// stamp created_at/updated_at on writes.
type DocumentStore interface {
	// Create inserts fields merged with fresh timestamps and returns the
	// stored document.
	Create(ctx context.Context, collection string, fields map[string]any) (map[string]any, error)

	// List returns up to limit documents matching the filter by exact
	// equality; an empty filter matches all. An "id" filter key addresses
	// the native identifier, and a malformed id matches nothing.
	List(ctx context.Context, collection string, filter map[string]any, limit int64) ([]map[string]any, error)

	// Update merges fields into the document with the given id, re-stamping
	// updated_at, and returns the updated document. A nil document with a
	// nil error means no document has that id.
	Update(ctx context.Context, collection string, id string, fields map[string]any) (map[string]any, error)

	// Delete removes the one document with the given id and reports whether
	// a document was actually removed.
	Delete(ctx context.Context, collection string, id string) (bool, error)

	// Ping probes connectivity to the underlying store.
	Ping(ctx context.Context) error
}
