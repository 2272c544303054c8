package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"StockDashboard/internal/model"
)

var csvHeader = []string{"Date", "Open", "High", "Low", "Close", "Volume"}

// CSVFilename is the download name used for a symbol's export.
func CSVFilename(symbol string) string {
	return fmt.Sprintf("%s_stock_data.csv", symbol)
}

// WriteCSV writes the series oldest first with prices rounded to cents.
func WriteCSV(w io.Writer, series *model.PriceSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range series.Points {
		row := []string{
			p.Date.Format("2006-01-02"),
			cents(p.Open),
			cents(p.High),
			cents(p.Low),
			cents(p.Close),
			strconv.FormatInt(p.Volume, 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func cents(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
