package reporter

import "time"

const (
	defaultBackoff    = 10 * time.Second
	defaultRateWindow = 60 * time.Second
)

// Fetch outcomes reported to metrics.
const (
	FetchSuccess   = "success"
	FetchNotFound  = "not_found"
	FetchTransient = "transient"
	FetchFatal     = "fatal"
)
