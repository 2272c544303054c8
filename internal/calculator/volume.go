package calculator

import "StockDashboard/internal/model"

// AverageVolume is the mean volume over the trailing window, latest point
// included. Shorter series average every point.
func AverageVolume(points []model.PricePoint, window int) float64 {
	if len(points) == 0 || window <= 0 {
		return 0
	}
	start := len(points) - window
	if start < 0 {
		start = 0
	}
	var sum int64
	for _, p := range points[start:] {
		sum += p.Volume
	}
	return float64(sum) / float64(len(points)-start)
}

// VolumeRatio compares the latest volume to the baseline. ok is false for a zero baseline.
func VolumeRatio(latest int64, avg float64) (float64, bool) {
	if avg == 0 {
		return 0, false
	}
	return float64(latest) / avg, true
}
