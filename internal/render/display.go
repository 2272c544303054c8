package render

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"StockDashboard/internal/model"
)

// Display keys.
const (
	KeyPrice      = "price"
	KeyChange     = "change"
	KeyVolume     = "volume"
	KeyAvgVolume  = "avg_volume"
	KeyHigh52w    = "week52_high"
	KeyLow52w     = "week52_low"
	KeyMAShort    = "ma_short"
	KeyMALong     = "ma_long"
	KeyVolatility = "volatility"
	KeyPosition   = "week52_position"
)

// Display formats a snapshot into the strings shown on the metric cards.
// Figures the snapshot leaves undefined are omitted.
func Display(snap *model.MetricsSnapshot) map[string]string {
	if snap == nil {
		return map[string]string{}
	}
	out := map[string]string{
		KeyPrice:     Money(snap.LatestPrice),
		KeyVolume:    humanize.Comma(snap.LatestVolume),
		KeyAvgVolume: "Avg: " + humanize.Comma(int64(math.Round(snap.AvgVolume))),
		KeyHigh52w:   Money(snap.High52w),
		KeyLow52w:    Money(snap.Low52w),
		KeyPosition:  fmt.Sprintf("%.0f%%", snap.Position52w*100),
	}
	if snap.ChangeAbs != nil {
		out[KeyChange] = Change(*snap.ChangeAbs, snap.ChangePct)
	}
	if snap.MAShort != 0 {
		out[KeyMAShort] = Money(snap.MAShort)
	}
	if snap.MALong != 0 {
		out[KeyMALong] = Money(snap.MALong)
	}
	if snap.Volatility != nil {
		out[KeyVolatility] = fmt.Sprintf("%.2f%%", *snap.Volatility)
	}
	return out
}

// Money formats a price as $123.45.
func Money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// Change formats an absolute move with its percentage, e.g. +3.60 (+3.60%).
func Change(abs float64, pct *float64) string {
	if pct == nil {
		return fmt.Sprintf("%+.2f", abs)
	}
	return fmt.Sprintf("%+.2f (%+.2f%%)", abs, *pct)
}
