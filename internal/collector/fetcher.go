package collector

import (
	"context"
	"errors"
	"fmt"

	"StockDashboard/internal/model"
)

var (
	// ErrInvalidSymbol means the symbol failed local validation and was never sent upstream.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrSymbolNotFound means the data source does not know the symbol.
	ErrSymbolNotFound = errors.New("symbol not found")
	// ErrRateLimited means the data source refused the call because of its call frequency limit.
	ErrRateLimited = errors.New("data source rate limit reached")
	// ErrNoData means the data source answered without any bars.
	ErrNoData = errors.New("no data returned")
	// ErrInvalidPeriod means the requested period is not one of model.Periods.
	ErrInvalidPeriod = errors.New("invalid period")
)

// Fetcher retrieves a daily price series, sorted oldest to newest.
type Fetcher interface {
	FetchDaily(ctx context.Context, symbol string) (*model.PriceSeries, error)
	Name() string
}

// FetchError wraps any failure of a Fetcher call with where it happened.
type FetchError struct {
	Source string
	Symbol string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s from %s: %v", e.Symbol, e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
