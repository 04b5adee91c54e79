package types

// CachedThread wraps one fetched reply thread for serialization.
type CachedThread struct {
	Descendants []Status `json:"descendants"`
	FetchedAt   int64    `json:"fetched_at"`
}

// CachedInstance wraps one instance probe result for serialization.
// NotFound caches the failure too, so a dead host is not re-probed on
// every embed request while the negative TTL lasts.
type CachedInstance struct {
	Instance  *Instance `json:"instance,omitempty"`
	FetchedAt int64     `json:"fetched_at"`
	NotFound  bool      `json:"not_found"`
}
