package server

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheRepository is the response cache consulted before recomputing a
// full plan. A miss is not an error; a failed Set is logged and
// swallowed by callers.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// NewCache builds the configured cache backend. Memory is the default.
func NewCache(cfg CacheConfig) CacheRepository {
	if cfg.Backend == "redis" {
		return NewRedisCache(cfg.RedisAddr, cfg.TTL)
	}
	return NewMemoryCache()
}

// RedisCache stores responses in Redis with a shared TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	ctx    context.Context
}

func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ttl:    ttl,
		ctx:    context.Background(),
	}
}

func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string) error {
	return r.client.Set(r.ctx, key, value, r.ttl).Err()
}

// MemoryCache is the in-process default, safe for concurrent handlers.
// Entries never expire; restarts clear it.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		data: make(map[string]string),
	}
}

func (m *MemoryCache) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	return val, ok
}

func (m *MemoryCache) Set(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
