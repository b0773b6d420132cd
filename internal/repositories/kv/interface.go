// Package kv implements the unstructured, key-value mode of the
// durable store: opaque blobs addressed by string keys. The catalog
// cache, quiz statistics, theme setting and the legacy team backend
// all live in this namespace.
package kv

import "context"

// Repository describes blob storage by key. Get returns (nil, nil)
// when the key is absent; absence is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	List(ctx context.Context) (map[string][]byte, error)
}
