package providers

import "time"

const (
	// shutdownTimeout is the maximum time to wait for graceful shutdown of services.
	shutdownTimeout = 30 * time.Second

	// rateLimiterTTL is how long an idle client keeps its bucket.
	rateLimiterTTL = 10 * time.Minute
)
