// Package persist keeps a single string value in sync with durable storage
// so it survives restarts.
package persist

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"hackerstories/internal/storage"
)

// Value is a string remembered under a key. Storage errors never reach the
// caller: they are logged and the value keeps working from memory only.
type Value struct {
	kv     storage.KV
	key    string
	logger *zap.Logger

	mu        sync.RWMutex
	value     string
	persisted bool // kv holds value under key
}

// Init loads key from kv, falling back to def when nothing is stored or the
// read fails. Loading never writes.
func Init(ctx context.Context, kv storage.KV, key, def string, logger *zap.Logger) *Value {
	if logger == nil {
		logger = zap.NewNop()
	}
	v := &Value{
		kv:     kv,
		key:    key,
		logger: logger.Named("persist").With(zap.String("key", key)),
		value:  def,
	}

	if kv != nil {
		stored, ok, err := kv.Get(ctx, key)
		switch {
		case err != nil:
			v.logger.Warn("failed to load value, using default", zap.Error(err))
		case ok:
			v.value = stored
			v.persisted = true
		default:
			v.logger.Debug("no stored value, using default", zap.String("default", def))
		}
	}

	return v
}

// Key returns the storage key
func (v *Value) Key() string {
	return v.key
}

// Get returns the current value
func (v *Value) Get() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set updates the value and writes it through when it changed or when
// nothing has been stored under the key yet, so a value set equal to the
// default still survives a later Init with another default.
func (v *Value) Set(ctx context.Context, value string) {
	v.mu.Lock()
	write := v.value != value || !v.persisted
	v.value = value
	v.mu.Unlock()

	if !write || v.kv == nil {
		return
	}
	if err := v.kv.Put(ctx, v.key, value); err != nil {
		v.logger.Warn("failed to persist value, keeping it in memory only", zap.Error(err))
		return
	}

	v.mu.Lock()
	v.persisted = true
	v.mu.Unlock()
}
