package recorder

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"StockDashboard/internal/model"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewPrometheusRecorder(reg)

	r.RecordFetch("alphavantage", OutcomeOK, 120*time.Millisecond)
	r.RecordFetch("alphavantage", OutcomeRateLimited, 10*time.Millisecond)
	r.RecordFetch("alphavantage", OutcomeOK, 80*time.Millisecond)
	r.RecordCacheLookup(true)
	r.RecordCacheLookup(false)
	r.RecordCacheLookup(false)

	vol := 1.25
	r.RecordCompute("AAPL", time.Microsecond, &model.MetricsSnapshot{LatestPrice: 187.5, Volatility: &vol})
	r.RecordComputeError("BAD")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.fetches.WithLabelValues("alphavantage", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.fetches.WithLabelValues("alphavantage", OutcomeRateLimited)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.cacheLookups.WithLabelValues("miss")))
	assert.Equal(t, 187.5, testutil.ToFloat64(r.lastPrice.WithLabelValues("AAPL")))
	assert.Equal(t, 1.25, testutil.ToFloat64(r.volatility.WithLabelValues("AAPL")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.computeErrors.WithLabelValues("BAD")))
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	r.RecordFetch("x", OutcomeError, time.Second)
	r.RecordCacheLookup(true)
	r.RecordCompute("x", time.Second, nil)
	r.RecordComputeError("x")
}
