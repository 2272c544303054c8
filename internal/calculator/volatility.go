package calculator

import "math"

// DailyReturns returns simple day-over-day returns in percent. Element i is the
// return from closes[i] to closes[i+1]; steps from a zero close are skipped.
func DailyReturns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		returns = append(returns, (closes[i]-closes[i-1])/closes[i-1]*100)
	}
	return returns
}

// StdDev is the population standard deviation (divides by n).
func StdDev(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	m := mean(values)
	ss := 0.0
	for _, v := range values {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values))), true
}

// CalculateVolatility is the population standard deviation of daily percentage
// returns over the whole series. ok is false with fewer than two usable closes.
func CalculateVolatility(closes []float64) (float64, bool) {
	return StdDev(DailyReturns(closes))
}
