package model

import (
	"testing"
	"time"
)

func seriesLen(n int) *PriceSeries {
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	s := &PriceSeries{Symbol: "TEST", Points: make([]PricePoint, n)}
	for i := range s.Points {
		s.Points[i] = PricePoint{Date: day.AddDate(0, 0, i), Close: float64(i + 1)}
	}
	return s
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"", Period30d, false},
		{"30d", Period30d, false},
		{"60d", Period60d, false},
		{"90d", Period90d, false},
		{"all", PeriodAll, false},
		{"7d", "", true},
		{"ALL", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePeriod(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePeriod(%q): err=%v, wantErr=%v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePeriod(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPeriodApply(t *testing.T) {
	s := seriesLen(100)

	tests := []struct {
		period    Period
		wantLen   int
		wantFirst float64
	}{
		{Period30d, 30, 71},
		{Period60d, 60, 41},
		{Period90d, 90, 11},
		{PeriodAll, 100, 1},
	}
	for _, tt := range tests {
		got := tt.period.Apply(s)
		if got.Len() != tt.wantLen {
			t.Errorf("%s: expected %d points, got %d", tt.period, tt.wantLen, got.Len())
			continue
		}
		if got.Points[0].Close != tt.wantFirst {
			t.Errorf("%s: expected first close %.0f, got %.0f", tt.period, tt.wantFirst, got.Points[0].Close)
		}
		if got.Last() != s.Last() {
			t.Errorf("%s: trimmed series must keep the newest point", tt.period)
		}
	}

	short := seriesLen(10)
	if got := Period90d.Apply(short); got.Len() != 10 {
		t.Errorf("expected short series untouched, got %d points", got.Len())
	}
	if s.Len() != 100 {
		t.Error("Apply must not modify the source series")
	}
}
