package interfaces

import "time"

// Metrics records measurements about cache usage, remote calls, sessions and
// background prefetching. Implementations must be safe for concurrent use.
type Metrics interface {
	// CacheLookup records a cache hit or miss for an operation
	CacheLookup(operation string, hit bool)

	// UpstreamCall records one remote call; outcome is "ok" or an error class
	UpstreamCall(operation string, outcome string, duration time.Duration)

	// SessionEvent records a session lifecycle event such as "created" or "expired"
	SessionEvent(event string)

	// PrefetchJob records the outcome of one prefetch job
	PrefetchJob(outcome string)
}
