package calculator

import (
	"fmt"
	"math"

	"StockDashboard/internal/model"
)

// ValidateSeries rejects series the calculator cannot compute over: empty series,
// dates that are not strictly increasing and malformed points. Unsorted input is
// an error; it is never reordered.
func ValidateSeries(series *model.PriceSeries) error {
	if series.Len() == 0 {
		return fmt.Errorf("%w: empty price series", ErrInvalidInput)
	}
	for i, p := range series.Points {
		if err := validatePoint(p); err != nil {
			return fmt.Errorf("%w: point %d: %s", ErrInvalidInput, i, err)
		}
		if i > 0 && !p.Date.After(series.Points[i-1].Date) {
			return fmt.Errorf("%w: point %d dated %s is not after %s",
				ErrInvalidInput, i, p.Date.Format("2006-01-02"), series.Points[i-1].Date.Format("2006-01-02"))
		}
	}
	return nil
}

func validatePoint(p model.PricePoint) error {
	if p.Date.IsZero() {
		return fmt.Errorf("missing date")
	}
	for _, v := range []float64{p.Open, p.High, p.Low, p.Close} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite price")
		}
		if v < 0 {
			return fmt.Errorf("negative price %.4f", v)
		}
	}
	if p.High < p.Low {
		return fmt.Errorf("high %.4f below low %.4f", p.High, p.Low)
	}
	if p.Volume < 0 {
		return fmt.Errorf("negative volume %d", p.Volume)
	}
	return nil
}

func validateWindows(w model.Windows) error {
	if w.Short <= 0 || w.Long <= 0 || w.Range <= 0 || w.Volume <= 0 {
		return fmt.Errorf("%w: windows must be positive, got %+v", ErrInvalidInput, w)
	}
	return nil
}
