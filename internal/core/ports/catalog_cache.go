package ports

import "context"

// CatalogCache caches the serialized public vehicle list. Implementations are
// best-effort: callers treat every error as a miss and never fail a request
// on cache trouble.
type CatalogCache interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, payload []byte) error
	Invalidate(ctx context.Context) error
}
