package recorder

import (
	"time"

	"StockDashboard/internal/model"
)

// NoopRecorder is a no-op implementation used when metrics are disabled.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordFetch(_, _ string, _ time.Duration)                         {}
func (n *NoopRecorder) RecordCacheLookup(_ bool)                                         {}
func (n *NoopRecorder) RecordCompute(_ string, _ time.Duration, _ *model.MetricsSnapshot) {}
func (n *NoopRecorder) RecordComputeError(_ string)                                      {}
