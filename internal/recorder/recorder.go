package recorder

import (
	"time"

	"StockDashboard/internal/model"
)

// Fetch outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeNotFound    = "not_found"
	OutcomeRateLimited = "rate_limited"
	OutcomeError       = "error"
)

// Recorder receives telemetry from the dashboard pipeline.
type Recorder interface {
	RecordFetch(source, outcome string, took time.Duration)
	RecordCacheLookup(hit bool)
	RecordCompute(symbol string, took time.Duration, snap *model.MetricsSnapshot)
	RecordComputeError(symbol string)
}
