package collector

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"StockDashboard/internal/cache"
	"StockDashboard/internal/calculator"
	"StockDashboard/internal/model"
	"StockDashboard/internal/recorder"
	"StockDashboard/internal/render"
)

const seriesKeyPrefix = "series"

var symbolPattern = regexp.MustCompile(`^[A-Z0-9.^-]{1,12}$`)

// NormalizeSymbol trims and upper-cases a ticker and checks its shape.
func NormalizeSymbol(symbol string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if !symbolPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}
	return s, nil
}

// cachedSeries is what the collector keeps in the cache per symbol.
type cachedSeries struct {
	Source    string             `json:"source"`
	FetchedAt time.Time          `json:"fetched_at"`
	Series    *model.PriceSeries `json:"series"`
}

// Collector orchestrates data fetching, caching and metric computation.
type Collector struct {
	Fetcher  Fetcher
	Store    cache.Store
	TTL      time.Duration
	Recorder recorder.Recorder
	Windows  model.Windows

	now func() time.Time
}

// NewCollector creates a new Collector. A nil recorder disables telemetry.
func NewCollector(fetcher Fetcher, store cache.Store, ttl time.Duration, rec recorder.Recorder) *Collector {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Collector{
		Fetcher:  fetcher,
		Store:    store,
		TTL:      ttl,
		Recorder: rec,
		Windows:  model.DefaultWindows,
		now:      time.Now,
	}
}

// Dashboard loads the series for symbol, trims it to period and derives
// the snapshot, chart overlays and display strings from the trimmed series.
func (c *Collector) Dashboard(ctx context.Context, symbol string, period model.Period) (*model.Dashboard, error) {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	period, err = model.ParsePeriod(string(period))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}

	entry, hit, err := c.load(ctx, sym)
	if err != nil {
		return nil, err
	}
	series := period.Apply(entry.Series)

	start := c.now()
	snap, err := calculator.ComputeWithWindows(series, c.Windows)
	if err != nil {
		c.Recorder.RecordComputeError(sym)
		return nil, fmt.Errorf("compute metrics for %s: %w", sym, err)
	}
	overlays, err := calculator.Overlays(series, c.Windows)
	if err != nil {
		c.Recorder.RecordComputeError(sym)
		return nil, fmt.Errorf("compute overlays for %s: %w", sym, err)
	}
	c.Recorder.RecordCompute(sym, c.now().Sub(start), snap)

	log.Debug().
		Str("symbol", sym).
		Str("period", string(period)).
		Bool("cache_hit", hit).
		Int("points", snap.Points).
		Float64("price", snap.LatestPrice).
		Msg("dashboard computed")

	return &model.Dashboard{
		Symbol:    sym,
		Period:    period,
		Source:    entry.Source,
		FetchedAt: entry.FetchedAt,
		CacheHit:  hit,
		Series:    series,
		Snapshot:  snap,
		Overlays:  overlays,
		Display:   render.Display(snap),
	}, nil
}

// Series returns the period-trimmed series without computing metrics.
func (c *Collector) Series(ctx context.Context, symbol string, period model.Period) (*model.PriceSeries, error) {
	sym, err := NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	period, err = model.ParsePeriod(string(period))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}
	entry, _, err := c.load(ctx, sym)
	if err != nil {
		return nil, err
	}
	return period.Apply(entry.Series), nil
}

// Refresh drops every cached series so the next request refetches.
func (c *Collector) Refresh(ctx context.Context) error {
	if err := c.Store.DeleteByPrefix(ctx, seriesKeyPrefix+":"); err != nil {
		return fmt.Errorf("clear series cache: %w", err)
	}
	log.Info().Msg("series cache cleared")
	return nil
}

func (c *Collector) cacheKey(symbol string) string {
	return cache.Key(seriesKeyPrefix, c.Fetcher.Name(), symbol)
}

// load returns the cached series for symbol, fetching it on a miss.
func (c *Collector) load(ctx context.Context, symbol string) (*cachedSeries, bool, error) {
	key := c.cacheKey(symbol)

	var entry cachedSeries
	err := c.Store.Get(ctx, key, &entry)
	switch {
	case err == nil && entry.Series.Len() > 0:
		c.Recorder.RecordCacheLookup(true)
		return &entry, true, nil
	case err != nil && !errors.Is(err, cache.ErrCacheMiss):
		log.Warn().Err(err).Str("key", key).Msg("cache read failed, fetching")
	}
	c.Recorder.RecordCacheLookup(false)

	source := c.Fetcher.Name()
	start := c.now()
	series, err := c.Fetcher.FetchDaily(ctx, symbol)
	took := c.now().Sub(start)
	if err != nil {
		c.Recorder.RecordFetch(source, fetchOutcome(err), took)
		log.Error().Err(err).Str("symbol", symbol).Str("source", source).Msg("fetch failed")
		return nil, false, &FetchError{Source: source, Symbol: symbol, Err: err}
	}
	if series.Len() == 0 {
		c.Recorder.RecordFetch(source, recorder.OutcomeNotFound, took)
		return nil, false, &FetchError{Source: source, Symbol: symbol, Err: ErrNoData}
	}
	c.Recorder.RecordFetch(source, recorder.OutcomeOK, took)
	series = &model.PriceSeries{Symbol: symbol, Points: series.Points}

	entry = cachedSeries{Source: source, FetchedAt: c.now().UTC(), Series: series}
	if err := c.Store.Set(ctx, key, entry, c.TTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
	log.Info().Str("symbol", symbol).Str("source", source).Int("points", series.Len()).Dur("took", took).Msg("series fetched")
	return &entry, false, nil
}

func fetchOutcome(err error) string {
	switch {
	case errors.Is(err, ErrSymbolNotFound), errors.Is(err, ErrNoData):
		return recorder.OutcomeNotFound
	case errors.Is(err, ErrRateLimited):
		return recorder.OutcomeRateLimited
	default:
		return recorder.OutcomeError
	}
}
