package cache

import (
	"context"
	"time"
)

// NullCache never stores anything. Every Get is a miss.
type NullCache struct{}

// NewNullCache returns a cache that discards writes.
func NewNullCache() NullCache { return NullCache{} }

// Get implements Cache.
func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set implements Cache.
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Delete implements Cache.
func (NullCache) Delete(context.Context, string) error { return nil }

// Close implements Cache.
func (NullCache) Close() error { return nil }

var _ Cache = NullCache{}
