package model

import (
	"fmt"
	"time"
)

// Period selects how many trailing points the dashboard keeps.
type Period string

const (
	Period30d Period = "30d"
	Period60d Period = "60d"
	Period90d Period = "90d"
	PeriodAll Period = "all"
)

// Periods lists the selectable periods in display order.
var Periods = []Period{Period30d, Period60d, Period90d, PeriodAll}

// ParsePeriod validates a period string. Empty means Period30d.
func ParsePeriod(s string) (Period, error) {
	if s == "" {
		return Period30d, nil
	}
	for _, p := range Periods {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// Days returns the number of trailing points, or 0 for PeriodAll.
func (p Period) Days() int {
	switch p {
	case Period30d:
		return 30
	case Period60d:
		return 60
	case Period90d:
		return 90
	default:
		return 0
	}
}

// Apply trims the series to the period.
func (p Period) Apply(s *PriceSeries) *PriceSeries {
	return s.Tail(p.Days())
}

// Dashboard is everything a front end needs to draw one symbol.
type Dashboard struct {
	Symbol    string            `json:"symbol"`
	Period    Period            `json:"period"`
	Source    string            `json:"source"`
	FetchedAt time.Time         `json:"fetched_at"`
	CacheHit  bool              `json:"cache_hit"`
	Series    *PriceSeries      `json:"series"`
	Snapshot  *MetricsSnapshot  `json:"snapshot"`
	Overlays  *Overlays         `json:"overlays"`
	Display   map[string]string `json:"display"`
}
