// Package storage holds the key-value backends that stand in for browser
// local storage. Every backend stores opaque string values under flat keys
// with last-writer-wins semantics and no versioning.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// KV is the minimal contract the rest of the service needs from a backend.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
