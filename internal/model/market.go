package model

import "time"

// PricePoint is a single daily bar. Values are immutable once fetched.
type PricePoint struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// PriceSeries holds daily bars for one symbol, ordered oldest to newest.
type PriceSeries struct {
	Symbol string       `json:"symbol"`
	Points []PricePoint `json:"points"`
}

// Len returns the number of points in the series.
func (s *PriceSeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Points)
}

// Closes extracts the closing prices.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, s.Len())
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// Tail returns a series sharing the last n points. n <= 0 or n >= Len keeps everything.
func (s *PriceSeries) Tail(n int) *PriceSeries {
	if n <= 0 || n >= s.Len() {
		return &PriceSeries{Symbol: s.Symbol, Points: s.Points}
	}
	return &PriceSeries{Symbol: s.Symbol, Points: s.Points[s.Len()-n:]}
}

// Last returns the newest point. The series must not be empty.
func (s *PriceSeries) Last() PricePoint {
	return s.Points[len(s.Points)-1]
}
