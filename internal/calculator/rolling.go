package calculator

import (
	"StockDashboard/internal/model"
)

// RollingSMA returns the moving average at every date that has a full window
// behind it. Unlike TrailingSMA there are no partial windows, so a series shorter
// than the period yields no points.
func RollingSMA(points []model.PricePoint, period int) []model.ChartPoint {
	if period <= 0 || len(points) < period {
		return []model.ChartPoint{}
	}
	out := make([]model.ChartPoint, 0, len(points)-period+1)
	sum := 0.0
	for i, p := range points {
		sum += p.Close
		if i >= period {
			sum -= points[i-period].Close
		}
		if i >= period-1 {
			out = append(out, model.ChartPoint{Date: p.Date, Value: sum / float64(period)})
		}
	}
	return out
}

// ReturnSeries pairs each daily percentage return with the date it was realised on.
func ReturnSeries(points []model.PricePoint) []model.ChartPoint {
	out := make([]model.ChartPoint, 0, len(points))
	for i := 1; i < len(points); i++ {
		prev := points[i-1].Close
		if prev == 0 {
			continue
		}
		out = append(out, model.ChartPoint{
			Date:  points[i].Date,
			Value: (points[i].Close - prev) / prev * 100,
		})
	}
	return out
}

// Overlays builds the chart overlays for a series using the given windows.
func Overlays(series *model.PriceSeries, windows model.Windows) (*model.Overlays, error) {
	if err := ValidateSeries(series); err != nil {
		return nil, err
	}
	if err := validateWindows(windows); err != nil {
		return nil, err
	}
	return &model.Overlays{
		MAShort:     RollingSMA(series.Points, windows.Short),
		MALong:      RollingSMA(series.Points, windows.Long),
		DailyReturn: ReturnSeries(series.Points),
	}, nil
}
