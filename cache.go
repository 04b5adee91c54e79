package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strconv"
	"time"

	"mastodon-comments/internal/cache"
	"mastodon-comments/internal/types"
)

// Global cache instances
var (
	threadCache   *ThreadCacheWrapper
	instanceCache *InstanceCacheWrapper

	// Cache backend (memory or redis)
	cacheBackend cache.Backend

	// Cache configuration
	cacheConfig cache.Config

	// Cache backend type for health reporting
	cacheBackendType string // "redis" or "memory"
)

// InitCaches initializes the caches with Redis if REDIS_URL is set, otherwise memory
func InitCaches() error {
	cacheConfig = cache.DefaultConfig()
	if secs := os.Getenv("THREAD_CACHE_TTL_SECONDS"); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil && n > 0 {
			cacheConfig.ThreadTTL = time.Duration(n) * time.Second
		}
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL != "" {
		slog.Info("initializing Redis cache")
		redisCache, err := NewRedisCache(redisURL, "masto:")
		if err != nil {
			slog.Warn("Redis connection failed, using memory cache", "error", err)
			initMemoryCache()
		} else {
			cacheBackend = redisCache
			cacheBackendType = "redis"
			slog.Info("Redis cache initialized")
		}
	} else {
		initMemoryCache()
	}

	threadCache = NewThreadCacheWrapper(cacheBackend, cacheConfig)
	instanceCache = NewInstanceCacheWrapper(cacheBackend, cacheConfig)
	return nil
}

func initMemoryCache() {
	slog.Info("initializing in-memory cache")
	cacheBackend = cache.NewMemoryCache(2 * time.Minute)
	cacheBackendType = "memory"
}

// ThreadCacheWrapper provides typed access to cached reply threads
type ThreadCacheWrapper struct {
	backend cache.Backend
	config  cache.Config
}

func NewThreadCacheWrapper(backend cache.Backend, config cache.Config) *ThreadCacheWrapper {
	return &ThreadCacheWrapper{backend: backend, config: config}
}

func threadKey(host, postID string) string {
	return "thread:" + host + ":" + postID
}

// Get retrieves a thread from cache if it exists and isn't expired.
// Returns (descendants, inCache).
func (c *ThreadCacheWrapper) Get(host, postID string) ([]types.Status, bool) {
	ctx := context.Background()
	data, found, err := c.backend.Get(ctx, threadKey(host, postID))
	if err != nil || !found {
		return nil, false
	}

	var cached types.CachedThread
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false
	}
	return cached.Descendants, true
}

// Set stores a fetched thread.
func (c *ThreadCacheWrapper) Set(host, postID string, descendants []types.Status) {
	cached := types.CachedThread{
		Descendants: descendants,
		FetchedAt:   time.Now().Unix(),
	}
	data, err := json.Marshal(cached)
	if err != nil {
		return
	}
	c.backend.Set(context.Background(), threadKey(host, postID), data, c.config.ThreadTTL)
}

// Delete drops a cached thread (streaming invalidation path).
func (c *ThreadCacheWrapper) Delete(host, postID string) {
	c.backend.Delete(context.Background(), threadKey(host, postID))
}

// InstanceCacheWrapper provides typed access to cached instance probes
type InstanceCacheWrapper struct {
	backend cache.Backend
	config  cache.Config
}

func NewInstanceCacheWrapper(backend cache.Backend, config cache.Config) *InstanceCacheWrapper {
	return &InstanceCacheWrapper{backend: backend, config: config}
}

// Get retrieves an instance probe result from cache.
// Returns (instance, notFound, inCache) - inCache true with notFound true
// means the last probe failed and the failure is still cached.
func (c *InstanceCacheWrapper) Get(host string) (*types.Instance, bool, bool) {
	ctx := context.Background()
	data, found, err := c.backend.Get(ctx, "instance:"+host)
	if err != nil || !found {
		return nil, false, false
	}

	var cached types.CachedInstance
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, false, false
	}
	return cached.Instance, cached.NotFound, true
}

// Set stores a probe result (nil instance is stored as "not found").
func (c *InstanceCacheWrapper) Set(host string, instance *types.Instance) {
	cached := types.CachedInstance{
		Instance:  instance,
		FetchedAt: time.Now().Unix(),
		NotFound:  instance == nil,
	}
	data, err := json.Marshal(cached)
	if err != nil {
		return
	}

	ttl := c.config.InstanceTTL
	if instance == nil {
		ttl = c.config.InstanceNotFoundTTL
	}
	c.backend.Set(context.Background(), "instance:"+host, data, ttl)
}
