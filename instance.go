package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"mastodon-comments/internal/types"
)

// instanceClient probes /api/v1/instance to label the widget header.
// Unlike the thread fetch this is out-of-band decoration, so retrying is
// fine here.
var instanceClient = func() *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.RetryMax = 2
	c.HTTPClient.Timeout = 5 * time.Second
	c.Logger = nil
	return c
}()

// fetchInstanceInfo returns the instance metadata for a host, or nil when
// the probe fails. Probe failures are cached too, so a dead host does not
// get re-probed on every embed request.
func fetchInstanceInfo(host string) *types.Instance {
	if inst, notFound, ok := instanceCache.Get(host); ok {
		IncrementCacheHit()
		if notFound {
			return nil
		}
		return inst
	}
	IncrementCacheMiss()

	inst := fetchInstanceDirect(host)
	instanceCache.Set(host, inst)
	return inst
}

func fetchInstanceDirect(host string) *types.Instance {
	if !ValidHost(host) {
		return nil
	}

	reqURL := apiBaseURL(host) + "/api/v1/instance"
	req, err := retryablehttp.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := instanceClient.Do(req)
	if err != nil {
		ObserveUpstreamFetch("instance", time.Since(start), err)
		slog.Debug("instance probe failed", "host", host, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		ObserveUpstreamFetch("instance", time.Since(start), errStatus(resp.StatusCode))
		slog.Debug("instance probe got bad status", "host", host, "status", resp.StatusCode)
		return nil
	}
	ObserveUpstreamFetch("instance", time.Since(start), nil)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil
	}

	var inst types.Instance
	if err := json.Unmarshal(body, &inst); err != nil {
		slog.Debug("instance probe returned undecodable body", "host", host, "error", err)
		return nil
	}
	return &inst
}
