package calculator

import (
	"fmt"

	"StockDashboard/internal/model"
)

// Compute derives a MetricsSnapshot from the series using DefaultWindows.
func Compute(series *model.PriceSeries) (*model.MetricsSnapshot, error) {
	return ComputeWithWindows(series, model.DefaultWindows)
}

// ComputeWithWindows derives a MetricsSnapshot from a series ordered oldest to newest.
//
// It is a pure function of the series. Windowed figures use partial windows when
// the series is shorter than the window: the moving averages, the 52-week range
// and the volume baseline then cover every available point. ChangeAbs, ChangePct
// and Volatility are nil for a single point; VolumeRatio is nil for a zero
// baseline. Any invalid input fails with ErrInvalidInput and no snapshot.
func ComputeWithWindows(series *model.PriceSeries, windows model.Windows) (*model.MetricsSnapshot, error) {
	if err := ValidateSeries(series); err != nil {
		return nil, err
	}
	if err := validateWindows(windows); err != nil {
		return nil, err
	}

	closes := series.Closes()
	last := series.Last()
	snap := &model.MetricsSnapshot{
		AsOf:         last.Date,
		Points:       series.Len(),
		Windows:      windows,
		LatestPrice:  last.Close,
		LatestVolume: last.Volume,
	}

	if abs, pct, ok, pctOK := DailyChange(closes); ok {
		snap.ChangeAbs = &abs
		if pctOK {
			snap.ChangePct = &pct
		}
	}

	var err error
	if snap.MAShort, err = TrailingSMA(closes, windows.Short); err != nil {
		return nil, fmt.Errorf("%w: short average: %v", ErrInvalidInput, err)
	}
	if snap.MALong, err = TrailingSMA(closes, windows.Long); err != nil {
		return nil, fmt.Errorf("%w: long average: %v", ErrInvalidInput, err)
	}

	if vol, ok := CalculateVolatility(closes); ok {
		snap.Volatility = &vol
	}

	if snap.High52w, snap.Low52w, err = CalculateRange(series.Points, windows.Range); err != nil {
		return nil, fmt.Errorf("%w: range: %v", ErrInvalidInput, err)
	}
	if snap.Position52w, err = Calculate52WeekPosition(last.Close, snap.High52w, snap.Low52w); err != nil {
		return nil, fmt.Errorf("%w: range position: %v", ErrInvalidInput, err)
	}

	snap.AvgVolume = AverageVolume(series.Points, windows.Volume)
	if ratio, ok := VolumeRatio(last.Volume, snap.AvgVolume); ok {
		snap.VolumeRatio = &ratio
	}

	return snap, nil
}
