package recorder

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"StockDashboard/internal/model"
)

// PrometheusRecorder exports pipeline telemetry as Prometheus metrics.
type PrometheusRecorder struct {
	fetches       *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	cacheLookups  *prometheus.CounterVec
	computeTime   prometheus.Histogram
	computeErrors *prometheus.CounterVec
	lastPrice     *prometheus.GaugeVec
	volatility    *prometheus.GaugeVec
}

// NewPrometheusRecorder registers the metrics on reg.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	f := promauto.With(reg)
	return &PrometheusRecorder{
		fetches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "stockdash_fetch_total",
			Help: "Upstream price series fetches by source and outcome",
		}, []string{"source", "outcome"}),
		fetchDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stockdash_fetch_duration_seconds",
			Help:    "Upstream fetch latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"source"}),
		cacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "stockdash_cache_lookups_total",
			Help: "Series cache lookups by result",
		}, []string{"result"}),
		computeTime: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "stockdash_compute_duration_seconds",
			Help:    "Metrics computation latency in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		}),
		computeErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "stockdash_compute_errors_total",
			Help: "Series rejected by the metrics engine",
		}, []string{"symbol"}),
		lastPrice: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "stockdash_last_price",
			Help: "Latest close per symbol",
		}, []string{"symbol"}),
		volatility: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "stockdash_volatility_percent",
			Help: "Daily return volatility per symbol",
		}, []string{"symbol"}),
	}
}

func (r *PrometheusRecorder) RecordFetch(source, outcome string, took time.Duration) {
	r.fetches.WithLabelValues(source, outcome).Inc()
	r.fetchDuration.WithLabelValues(source).Observe(took.Seconds())
}

func (r *PrometheusRecorder) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(result).Inc()
}

func (r *PrometheusRecorder) RecordCompute(symbol string, took time.Duration, snap *model.MetricsSnapshot) {
	r.computeTime.Observe(took.Seconds())
	if snap == nil {
		return
	}
	r.lastPrice.WithLabelValues(symbol).Set(snap.LatestPrice)
	if snap.Volatility != nil {
		r.volatility.WithLabelValues(symbol).Set(*snap.Volatility)
	}
}

func (r *PrometheusRecorder) RecordComputeError(symbol string) {
	r.computeErrors.WithLabelValues(symbol).Inc()
}
