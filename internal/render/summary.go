package render

import (
	"fmt"
	"strings"

	"StockDashboard/internal/model"
)

// Summary formats a snapshot into a plain-text panel.
func Summary(symbol string, snap *model.MetricsSnapshot) string {
	if snap == nil {
		return ""
	}
	d := Display(snap)
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Stock Analysis: %s | %s\n\n", symbol, snap.AsOf.Format("2006-01-02")))

	price := d[KeyPrice]
	if c, ok := d[KeyChange]; ok {
		price += " " + c
	}
	b.WriteString(fmt.Sprintf("Current Price: %s\n", price))
	b.WriteString(fmt.Sprintf("Volume: %s (%s)\n", d[KeyVolume], d[KeyAvgVolume]))
	b.WriteString(fmt.Sprintf("52W High: %s | 52W Low: %s (at %s of range)\n",
		d[KeyHigh52w], d[KeyLow52w], d[KeyPosition]))

	if v, ok := d[KeyMAShort]; ok {
		b.WriteString(fmt.Sprintf("%d-Day MA: %s\n", snap.Windows.Short, v))
	}
	if v, ok := d[KeyMALong]; ok {
		b.WriteString(fmt.Sprintf("%d-Day MA: %s\n", snap.Windows.Long, v))
	}
	if v, ok := d[KeyVolatility]; ok {
		b.WriteString(fmt.Sprintf("Volatility: %s\n", v))
	}
	b.WriteString(fmt.Sprintf("\nBased on %d trading days", snap.Points))
	return b.String()
}
