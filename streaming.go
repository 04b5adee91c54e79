package main

import (
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"mastodon-comments/internal/types"
)

// Live cache invalidation over the Mastodon streaming API. Optional: only
// hosts listed in STREAM_HOSTS are watched, and the widget works identically
// without it - cached threads just age out by TTL instead.

const maxStreamBackoff = 60 * time.Second

// threadIndex maps host:statusID to the thread root post ID, so a streamed
// reply can locate the cached thread it belongs to. Populated on every
// successful thread fetch; entries are never dropped, which is fine for the
// small set of posts a deployment tracks.
var (
	threadIndexMu sync.RWMutex
	threadIndex   = make(map[string]string)
)

// indexThreadForStreaming records the root and all known descendants of a
// fetched thread.
func indexThreadForStreaming(host, rootID string, descendants []types.Status) {
	threadIndexMu.Lock()
	defer threadIndexMu.Unlock()
	threadIndex[host+":"+rootID] = rootID
	for _, d := range descendants {
		threadIndex[host+":"+d.ID] = rootID
	}
}

func lookupThreadRoot(host, statusID string) (string, bool) {
	if statusID == "" {
		return "", false
	}
	threadIndexMu.RLock()
	defer threadIndexMu.RUnlock()
	root, ok := threadIndex[host+":"+statusID]
	return root, ok
}

// streamEvent is the envelope of the Mastodon streaming protocol; Payload
// is itself JSON, encoded as a string.
type streamEvent struct {
	Event   string `json:"event"`
	Payload string `json:"payload"`
}

// StartStreamWatchers starts one watcher per configured host.
// hosts come from STREAM_HOSTS (comma-separated); invalid names are skipped.
func StartStreamWatchers(hostList string) {
	if hostList == "" {
		return
	}
	for _, host := range strings.Split(hostList, ",") {
		host = strings.TrimSpace(host)
		if host == "" {
			continue
		}
		if !ValidHost(host) {
			slog.Warn("ignoring invalid STREAM_HOSTS entry", "host", host)
			continue
		}
		go watchHost(host)
		slog.Info("stream watcher started", "host", host)
	}
}

// watchHost holds a streaming connection to one host, reconnecting with
// capped exponential backoff.
func watchHost(host string) {
	backoff := time.Second
	for {
		start := time.Now()
		err := streamOnce(host)
		slog.Warn("stream disconnected", "host", host, "error", err)

		// A connection that survived a while earns a fresh backoff.
		if time.Since(start) > 5*time.Minute {
			backoff = time.Second
		}
		time.Sleep(backoff)
		backoff *= 2
		if backoff > maxStreamBackoff {
			backoff = maxStreamBackoff
		}
	}
}

// streamOnce dials the public stream and pumps events until the connection
// drops. Returns the read or dial error.
func streamOnce(host string) error {
	u := url.URL{Scheme: "wss", Host: host, Path: "/api/v1/streaming", RawQuery: "stream=public"}
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var evt streamEvent
		if err := json.Unmarshal(message, &evt); err != nil {
			continue
		}
		IncrementStreamEvent(host)

		switch evt.Event {
		case "update":
			var status types.Status
			if err := json.Unmarshal([]byte(evt.Payload), &status); err != nil {
				continue
			}
			if root, ok := lookupThreadRoot(host, status.InReplyToID); ok {
				slog.Debug("invalidating thread after streamed reply",
					"host", host, "root", root, "reply", status.ID)
				threadCache.Delete(host, root)
				indexThreadForStreaming(host, root, []types.Status{status})
			}
		case "delete":
			// Payload is the bare status ID of the deleted post.
			id := strings.TrimSpace(evt.Payload)
			if root, ok := lookupThreadRoot(host, id); ok {
				slog.Debug("invalidating thread after streamed delete",
					"host", host, "root", root, "deleted", id)
				threadCache.Delete(host, root)
			}
		}
	}
}
