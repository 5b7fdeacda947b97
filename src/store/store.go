package store

import (
	"context"
	"errors"
)

// ErrNotFound indicates that a key has no stored value
var ErrNotFound = errors.New("key not found")

// Store is the persistent key-value store backing session state — the
// client-side stand-in for the browser's local storage. Values are
// opaque strings; callers do their own serialization.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
