package calculator

import (
	"errors"
	"math"
	"testing"
	"time"

	"StockDashboard/internal/model"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

var day0 = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

func seriesOf(closes ...float64) *model.PriceSeries {
	pts := make([]model.PricePoint, len(closes))
	for i, c := range closes {
		pts[i] = model.PricePoint{
			Date:   day0.AddDate(0, 0, i),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000,
		}
	}
	return &model.PriceSeries{Symbol: "TEST", Points: pts}
}

func TestCompute_SinglePoint(t *testing.T) {
	snap, err := Compute(seriesOf(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.MAShort != 42 || snap.MALong != 42 || snap.LatestPrice != 42 {
		t.Errorf("expected ma_short == ma_long == latest == 42, got %.2f %.2f %.2f", snap.MAShort, snap.MALong, snap.LatestPrice)
	}
	if snap.ChangeAbs != nil || snap.ChangePct != nil {
		t.Error("expected change to be omitted for a single point")
	}
	if snap.Volatility != nil {
		t.Error("expected volatility to be omitted for a single point")
	}
	if snap.Points != 1 || !snap.AsOf.Equal(day0) {
		t.Errorf("unexpected points/as_of: %d %v", snap.Points, snap.AsOf)
	}
}

func TestCompute_ConstantSeries(t *testing.T) {
	for _, n := range []int{2, 3, 20, 60, 300} {
		closes := make([]float64, n)
		for i := range closes {
			closes[i] = 57.25
		}
		snap, err := Compute(seriesOf(closes...))
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if snap.ChangeAbs == nil || *snap.ChangeAbs != 0 {
			t.Errorf("n=%d: expected change_abs 0, got %v", n, snap.ChangeAbs)
		}
		if snap.ChangePct == nil || *snap.ChangePct != 0 {
			t.Errorf("n=%d: expected change_pct 0, got %v", n, snap.ChangePct)
		}
		if !approx(snap.MAShort, 57.25) || !approx(snap.MALong, 57.25) {
			t.Errorf("n=%d: expected averages 57.25, got %.4f %.4f", n, snap.MAShort, snap.MALong)
		}
		if snap.Volatility == nil || *snap.Volatility != 0 {
			t.Errorf("n=%d: expected volatility 0, got %v", n, snap.Volatility)
		}
	}
}

func TestCompute_IncreasingSeries(t *testing.T) {
	for _, n := range []int{2, 10, 49, 50, 120} {
		closes := make([]float64, n)
		for i := range closes {
			closes[i] = 100 + float64(i)
		}
		snap, err := Compute(seriesOf(closes...))
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if snap.MAShort >= snap.LatestPrice || snap.MALong >= snap.LatestPrice {
			t.Errorf("n=%d: averages %.2f/%.2f should be below latest %.2f", n, snap.MAShort, snap.MALong, snap.LatestPrice)
		}
	}
}

func TestCompute_WorkedExample(t *testing.T) {
	snap, err := Compute(seriesOf(100, 102, 101, 105, 110))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(snap.MAShort, 103.6) {
		t.Errorf("expected ma_short 103.6, got %.6f", snap.MAShort)
	}
	if !approx(snap.MALong, 103.6) {
		t.Errorf("expected partial-window ma_long 103.6, got %.6f", snap.MALong)
	}
	if snap.ChangeAbs == nil || !approx(*snap.ChangeAbs, 5) {
		t.Errorf("expected change_abs 5, got %v", snap.ChangeAbs)
	}
	if snap.ChangePct == nil || math.Abs(*snap.ChangePct-4.762) > 0.001 {
		t.Errorf("expected change_pct ~4.762, got %v", snap.ChangePct)
	}
	if snap.High52w != 111 || snap.Low52w != 99 {
		t.Errorf("expected range 99..111, got %.2f..%.2f", snap.Low52w, snap.High52w)
	}
}

func TestCompute_Volatility(t *testing.T) {
	snap, err := Compute(seriesOf(100, 110, 99))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// returns are +10% and -10%, population stdev is 10
	if snap.Volatility == nil || math.Abs(*snap.Volatility-10) > 1e-6 {
		t.Errorf("expected volatility 10, got %v", snap.Volatility)
	}
}

func TestCompute_Week52Window(t *testing.T) {
	closes := make([]float64, 300)
	for i := range closes {
		closes[i] = 100 + 10*math.Sin(float64(i)/7)
	}
	s := seriesOf(closes...)
	// a spike older than 252 points must not count
	s.Points[10].High = 1000
	s.Points[10].Low = 1

	snap, err := Compute(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range s.Points[len(s.Points)-252:] {
		if snap.High52w < p.High {
			t.Fatalf("week52_high %.2f below high %.2f", snap.High52w, p.High)
		}
		if snap.Low52w > p.Low {
			t.Fatalf("week52_low %.2f above low %.2f", snap.Low52w, p.Low)
		}
	}
	if snap.High52w == 1000 || snap.Low52w == 1 {
		t.Error("spike outside the 252-point window leaked into the range")
	}
	if snap.Position52w < 0 || snap.Position52w > 1 {
		t.Errorf("position out of range: %.3f", snap.Position52w)
	}
}

func TestCompute_Volume(t *testing.T) {
	s := seriesOf(1, 2, 3, 4)
	for i := range s.Points {
		s.Points[i].Volume = int64(100 * (i + 1))
	}
	snap, err := ComputeWithWindows(s, model.Windows{Short: 2, Long: 3, Range: 10, Volume: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.AvgVolume != 350 {
		t.Errorf("expected avg volume 350, got %.2f", snap.AvgVolume)
	}
	if snap.VolumeRatio == nil || !approx(*snap.VolumeRatio, 400.0/350.0) {
		t.Errorf("unexpected volume ratio %v", snap.VolumeRatio)
	}
	if snap.LatestVolume != 400 {
		t.Errorf("expected latest volume 400, got %d", snap.LatestVolume)
	}
	if !approx(snap.MAShort, 3.5) || !approx(snap.MALong, 3) {
		t.Errorf("unexpected averages %.2f %.2f", snap.MAShort, snap.MALong)
	}

	flat := seriesOf(5, 5, 5)
	for i := range flat.Points {
		flat.Points[i].Volume = 0
	}
	snap, err = Compute(flat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.VolumeRatio != nil {
		t.Errorf("expected nil volume ratio for zero baseline, got %v", *snap.VolumeRatio)
	}
}

func TestCompute_ZeroPreviousClose(t *testing.T) {
	s := seriesOf(0, 5)
	s.Points[0].Low = 0
	snap, err := Compute(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.ChangeAbs == nil || *snap.ChangeAbs != 5 {
		t.Errorf("expected change_abs 5, got %v", snap.ChangeAbs)
	}
	if snap.ChangePct != nil {
		t.Errorf("expected change_pct omitted, got %v", *snap.ChangePct)
	}
	if snap.Volatility != nil {
		t.Errorf("expected volatility omitted, got %v", *snap.Volatility)
	}
}

func TestCompute_InvalidInput(t *testing.T) {
	outOfOrder := seriesOf(1, 2, 3)
	outOfOrder.Points[1].Date, outOfOrder.Points[2].Date = outOfOrder.Points[2].Date, outOfOrder.Points[1].Date

	duplicate := seriesOf(1, 2)
	duplicate.Points[1].Date = duplicate.Points[0].Date

	nan := seriesOf(1, 2)
	nan.Points[1].Close = math.NaN()

	negVolume := seriesOf(1, 2)
	negVolume.Points[0].Volume = -1

	inverted := seriesOf(1, 2)
	inverted.Points[0].High, inverted.Points[0].Low = 0, 2

	noDate := seriesOf(1)
	noDate.Points[0].Date = time.Time{}

	tests := []struct {
		name   string
		series *model.PriceSeries
	}{
		{"nil", nil},
		{"empty", &model.PriceSeries{Symbol: "X"}},
		{"out of order", outOfOrder},
		{"duplicate date", duplicate},
		{"nan close", nan},
		{"negative volume", negVolume},
		{"high below low", inverted},
		{"missing date", noDate},
	}
	for _, tt := range tests {
		snap, err := Compute(tt.series)
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tt.name, err)
		}
		if snap != nil {
			t.Errorf("%s: expected no snapshot on error", tt.name)
		}
	}

	if _, err := ComputeWithWindows(seriesOf(1, 2), model.Windows{Short: 0, Long: 5, Range: 5, Volume: 5}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero window: expected ErrInvalidInput, got %v", err)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	s := seriesOf(10, 11, 9, 12, 13, 12.5)
	a, err := Compute(s)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compute(s)
	if err != nil {
		t.Fatal(err)
	}
	if *a.Volatility != *b.Volatility || a.MAShort != b.MAShort || *a.ChangePct != *b.ChangePct {
		t.Error("repeated computation over the same series differs")
	}
}

func TestCompute_PartialWindows(t *testing.T) {
	snap, err := Compute(seriesOf(10, 20, 30, 40, 50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(snap.MAShort, 30) || !approx(snap.MALong, 30) {
		t.Errorf("expected both averages to equal the mean 30, got %.4f/%.4f", snap.MAShort, snap.MALong)
	}
	if snap.High52w != 51 || snap.Low52w != 9 {
		t.Errorf("expected range over all points 51/9, got %.2f/%.2f", snap.High52w, snap.Low52w)
	}
	if snap.VolumeRatio == nil || !approx(*snap.VolumeRatio, 1) {
		t.Errorf("expected volume ratio 1 for equal volumes, got %v", snap.VolumeRatio)
	}
}
