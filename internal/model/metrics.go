package model

import "time"

// Windows sets the lookback length, in points, of each windowed metric.
type Windows struct {
	Short  int `json:"short"`
	Long   int `json:"long"`
	Range  int `json:"range"`
	Volume int `json:"volume"`
}

// DefaultWindows are the 20/50 moving averages, the 252-day range and a 30-day volume baseline.
var DefaultWindows = Windows{Short: 20, Long: 50, Range: 252, Volume: 30}

// MetricsSnapshot is derived from a PriceSeries. Optional figures are nil when the
// series is too short to define them.
type MetricsSnapshot struct {
	AsOf         time.Time `json:"as_of"`
	Points       int       `json:"points"`
	Windows      Windows   `json:"windows"`
	LatestPrice  float64   `json:"latest_price"`
	LatestVolume int64     `json:"latest_volume"`
	ChangeAbs    *float64  `json:"change_abs,omitempty"`
	ChangePct    *float64  `json:"change_pct,omitempty"`
	MAShort      float64   `json:"ma_short"`
	MALong       float64   `json:"ma_long"`
	Volatility   *float64  `json:"volatility,omitempty"` // percent
	High52w      float64   `json:"week52_high"`
	Low52w       float64   `json:"week52_low"`
	Position52w  float64   `json:"week52_position"` // 0.0 ~ 1.0
	AvgVolume    float64   `json:"avg_volume"`
	VolumeRatio  *float64  `json:"volume_ratio,omitempty"`
}

// ChartPoint is one value of an overlay series.
type ChartPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Overlays are per-date indicator series drawn over the price chart.
type Overlays struct {
	MAShort     []ChartPoint `json:"ma_short"`
	MALong      []ChartPoint `json:"ma_long"`
	DailyReturn []ChartPoint `json:"daily_return"` // percent
}
