package calculator

// DailyChange returns the absolute and percentage change between the last two
// closes. ok is false with fewer than two closes; pctOK is false when the
// previous close is zero.
func DailyChange(closes []float64) (abs, pct float64, ok, pctOK bool) {
	if len(closes) < 2 {
		return 0, 0, false, false
	}
	latest := closes[len(closes)-1]
	prev := closes[len(closes)-2]
	abs = latest - prev
	if prev == 0 {
		return abs, 0, true, false
	}
	return abs, abs / prev * 100, true, true
}
