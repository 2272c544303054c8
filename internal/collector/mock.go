package collector

import (
	"context"
	"hash/fnv"
	"math"
	"sync/atomic"
	"time"

	"StockDashboard/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// With Series unset it generates Days deterministic bars per symbol ending at End.
type MockFetcher struct {
	Series map[string]*model.PriceSeries
	Err    error
	Days   int
	End    time.Time

	calls atomic.Int64
}

func (m *MockFetcher) Name() string { return "mock" }

// CallCount reports how many times FetchDaily ran.
func (m *MockFetcher) CallCount() int64 { return m.calls.Load() }

func (m *MockFetcher) FetchDaily(_ context.Context, symbol string) (*model.PriceSeries, error) {
	m.calls.Add(1)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Series != nil {
		s, ok := m.Series[symbol]
		if !ok {
			return nil, ErrSymbolNotFound
		}
		return s, nil
	}
	days := m.Days
	if days <= 0 {
		days = 100
	}
	end := m.End
	if end.IsZero() {
		end = time.Now().UTC()
	}
	return &model.PriceSeries{Symbol: symbol, Points: generateMockBars(symbol, days, end)}, nil
}

// generateMockBars draws a trend plus a slow oscillation whose level and phase
// depend only on the symbol.
func generateMockBars(symbol string, count int, end time.Time) []model.PricePoint {
	h := fnv.New32a()
	h.Write([]byte(symbol))
	seed := h.Sum32()
	basePrice := 50 + float64(seed%400)
	phase := float64(seed%360) * math.Pi / 180

	end = end.Truncate(24 * time.Hour)
	bars := make([]model.PricePoint, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001 + 0.03*math.Sin(phase+float64(i)/7))
		bars[i] = model.PricePoint{
			Date:   end.AddDate(0, 0, -(count - 1 - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000 + int64(seed%1000)*int64(i%5),
		}
	}
	return bars
}
