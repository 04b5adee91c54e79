package cache

import "time"

// Config holds cache TTL configuration.
type Config struct {
	ThreadTTL           time.Duration
	InstanceTTL         time.Duration
	InstanceNotFoundTTL time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		ThreadTTL:           3 * time.Minute, // replies trickle in slowly; short TTL keeps counts honest
		InstanceTTL:         1 * time.Hour,   // instance titles rarely change
		InstanceNotFoundTTL: 5 * time.Minute, // dead hosts retry after a while
	}
}
