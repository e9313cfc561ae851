package ports

import "context"

// CacheRecord is one cache entry: the entity id and its JSON encoding.
type CacheRecord struct {
	ID   string
	Data []byte
}

// EntityCache is the local persistent cache: durable key-value storage
// keyed by entity id, one isolated namespace (store) per entity type.
// Any storage error is returned to the caller, which treats the cache
// as unavailable and moves on to the next tier.
type EntityCache interface {
	// Put upserts each record by id. The namespace is created
	// implicitly on first use.
	Put(ctx context.Context, store string, records []CacheRecord) error
	// GetAll returns every record in the namespace. Order is not
	// significant.
	GetAll(ctx context.Context, store string) ([][]byte, error)
	Delete(ctx context.Context, store string, id string) error
}
