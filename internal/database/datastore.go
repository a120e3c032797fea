package database

import "context"

// KVStore defines the key-value operations the board persistence needs.
// KVRepo is the SQLite implementation; tests may supply their own.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

var _ KVStore = (*KVRepo)(nil)
