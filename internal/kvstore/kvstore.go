// Package kvstore is the persistence port behind the content store: a flat
// string-keyed store of JSON documents, read and written wholesale. There is
// no locking across processes; concurrent writers race and the last write
// wins.
package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
)

// Store is the raw key/value port. Get reports ok=false when the key has
// never been written.
type Store interface {
	Get(ctx context.Context, key string) (raw []byte, ok bool, err error)
	Set(ctx context.Context, key string, raw []byte) error
}

// Read returns the value stored under key, or fallback when the key is
// absent. An absent key does not persist the fallback. A stored value that no
// longer parses is an error, not a silent fallback: there is no migration or
// repair path, so corruption must surface.
func Read[T any](ctx context.Context, s Store, key string, fallback T) (T, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("get %q: %w", key, err)
	}
	if !ok {
		return fallback, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, fmt.Errorf("decode %q: %w", key, err)
	}
	return v, nil
}

// Write serializes v and stores it under key, overwriting unconditionally.
// Failures propagate with no retry.
func Write[T any](ctx context.Context, s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}
