package apiclient

import (
	"context"
	"sync"
	"time"
)

// Cache — бэкенд кэша чтений. Реализации: встроенная в память
// и разделяемая на Redis (rediscache.go)
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}

type memoryCacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryCache — кэш в памяти процесса с TTL на запись
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryCacheEntry
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryCacheEntry)}
}

func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.data, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	m.mu.Lock()
	m.entries[key] = memoryCacheEntry{data: value, expiresAt: time.Now().Add(ttl)}
	m.mu.Unlock()
}

func (m *MemoryCache) Delete(_ context.Context, keys ...string) {
	m.mu.Lock()
	for _, key := range keys {
		delete(m.entries, key)
	}
	m.mu.Unlock()
}
