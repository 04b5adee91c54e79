package main

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"mastodon-comments/internal/types"
)

// Singleflight group for deduplicating concurrent thread fetches.
// When several embed requests land for the same post simultaneously, only
// one actually hits the remote server while the others share the result.
var threadGroup singleflight.Group

// fetchThread returns the reply thread for a post, going through the cache
// and collapsing concurrent upstream fetches.
func fetchThread(ctx context.Context, host, postID string) ([]types.Status, error) {
	// Check cache first (avoid singleflight overhead for cache hits)
	if replies, ok := threadCache.Get(host, postID); ok {
		IncrementCacheHit()
		return replies, nil
	}
	IncrementCacheMiss()

	key := host + "/" + postID
	result, err, shared := threadGroup.Do(key, func() (interface{}, error) {
		replies, err := fetchThreadContext(ctx, host, postID)
		if err != nil {
			return nil, err
		}
		threadCache.Set(host, postID, replies)
		indexThreadForStreaming(host, postID, replies)
		return replies, nil
	})

	if shared {
		slog.Debug("singleflight: shared thread fetch", "host", host, "post_id", postID)
	}
	if err != nil {
		return nil, err
	}
	return result.([]types.Status), nil
}
