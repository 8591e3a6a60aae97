package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	// freecache never allocates less than this, whatever size is asked for
	memoryMinCacheSize = 512 * 1024
	// per entry header freecache counts against the entry limit
	memoryEntryHeaderSize = 24
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps values in a freecache cache, without expiry.
// freecache rejects entries larger than 1/1024 of the cache size; Set warns once a
// value passes 80% of that limit and fails with ErrValueTooLarge above it.
type MemoryStore struct {
	cache        *freecache.Cache
	maxEntrySize int
}

func NewMemoryStore(sizeBytes int) *MemoryStore {
	if sizeBytes < memoryMinCacheSize {
		sizeBytes = memoryMinCacheSize
	}
	return &MemoryStore{
		cache:        freecache.NewCache(sizeBytes),
		maxEntrySize: sizeBytes / 1024,
	}
}

// MaxValueSize is the largest value Set accepts under key.
func (s *MemoryStore) MaxValueSize(key string) int {
	return s.maxEntrySize - memoryEntryHeaderSize - len(key)
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	value, err := s.cache.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("memory get [%s]: %w", key, err)
	}
	return value, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	limit := s.MaxValueSize(key)
	if len(value) > limit {
		return fmt.Errorf("memory set [%s]: %w: %d bytes, limit %d; raise memory_cache_size", key, ErrValueTooLarge, len(value), limit)
	}
	if len(value)*5 > limit*4 {
		log.Warnf("memory set [%s]: value of %d bytes is close to the %d bytes limit, raise memory_cache_size", key, len(value), limit)
	}

	if err := s.cache.Set([]byte(key), value, 0); err != nil {
		if errors.Is(err, freecache.ErrLargeEntry) {
			return fmt.Errorf("memory set [%s]: %w", key, ErrValueTooLarge)
		}
		return fmt.Errorf("memory set [%s]: %w", key, err)
	}
	return nil
}
