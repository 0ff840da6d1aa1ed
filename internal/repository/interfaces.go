package repository

import (
	"context"
	"errors"
)

// ErrNotFound is wrapped by lookups that find nothing.
var ErrNotFound = errors.New("not found")

// KeyValueStore is a flat string store keyed by name, the shape of browser
// local storage.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
