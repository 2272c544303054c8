package calculator

import (
	"errors"
	"math"

	"StockDashboard/internal/model"
)

// CalculateRange scans the most recent window points (or all of them when fewer)
// and returns the highest high and the lowest low.
func CalculateRange(points []model.PricePoint, window int) (high, low float64, err error) {
	if len(points) == 0 {
		return 0, 0, errors.New("no daily bars provided")
	}
	if window <= 0 {
		return 0, 0, errors.New("window must be positive")
	}
	n := len(points)
	start := n - window
	if start < 0 {
		start = 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := start; i < n; i++ {
		if points[i].High > high {
			high = points[i].High
		}
		if points[i].Low < low {
			low = points[i].Low
		}
	}
	return high, low, nil
}

// Calculate52WeekRange returns the high and low of the trailing 252 trading days.
func Calculate52WeekRange(points []model.PricePoint) (high, low float64, err error) {
	return CalculateRange(points, model.DefaultWindows.Range)
}

// Calculate52WeekPosition returns where the current price sits within the 52-week range (0.0~1.0).
func Calculate52WeekPosition(current, high, low float64) (float64, error) {
	if high == low {
		return 0.5, nil
	}
	if high < low {
		return 0, errors.New("high must be >= low")
	}
	pos := (current - low) / (high - low)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return pos, nil
}
