package calculator

import (
	"errors"
)

// CalculateSMA computes the simple moving average of the given prices over the specified period.
// It fails when fewer than period prices are available.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	return mean(prices[len(prices)-period:]), nil
}

// TrailingSMA averages the last min(period, len(prices)) prices.
//
// A series shorter than the period yields a partial-window average instead of an
// error, so a "50-day" figure over 30 points is really a 30-day mean. Callers that
// need the strict definition use CalculateSMA.
func TrailingSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) == 0 {
		return 0, errors.New("no prices provided")
	}
	start := len(prices) - period
	if start < 0 {
		start = 0
	}
	return mean(prices[start:]), nil
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
