package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is one persistence domain addressed by string keys. The
// web app and the extension are two independent clients of this interface;
// they share no process state, only what a store holds.
type KeyValueStore interface {
	// Get returns the value under key, or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
	// Keys lists the keys starting with prefix in ascending order.
	Keys(ctx context.Context, prefix string) ([]string, error)
	// Close releases the underlying resources. Further calls fail with
	// [ErrStoreClosed].
	Close() error
}

// ErrorClassificator decides whether a failed database operation is worth
// another attempt.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
