// Package storage provides the durable key-value stores used to remember
// values across runs.
package storage

import (
	"context"
	"errors"
)

// ErrClosed is returned by operations on a closed store
var ErrClosed = errors.New("storage: store closed")

// KV is a string key-value store
type KV interface {
	// Get returns the value stored under key and whether it exists
	Get(ctx context.Context, key string) (string, bool, error)
	// Put stores value under key, replacing any previous value
	Put(ctx context.Context, key, value string) error
	Close() error
}
