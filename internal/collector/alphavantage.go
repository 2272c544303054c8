package collector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"StockDashboard/internal/model"
)

const alphaVantageURL = "https://www.alphavantage.co/query"

// AlphaVantageOptions configures an AlphaVantageFetcher.
type AlphaVantageOptions struct {
	APIKey            string
	BaseURL           string // defaults to the public endpoint
	OutputSize        string // compact (last 100 points) or full
	Timeout           time.Duration
	Proxy             string
	RequestsPerMinute int // 0 disables client-side limiting
	MaxRetries        int
	InitialBackoff    time.Duration
}

// AlphaVantageFetcher implements Fetcher with the TIME_SERIES_DAILY endpoint.
type AlphaVantageFetcher struct {
	APIKey         string
	BaseURL        string
	OutputSize     string
	Client         *http.Client
	Limiter        *rate.Limiter
	MaxRetries     int
	InitialBackoff time.Duration
}

// NewAlphaVantageFetcher creates a fetcher from opts, filling in defaults.
func NewAlphaVantageFetcher(opts AlphaVantageOptions) *AlphaVantageFetcher {
	if opts.BaseURL == "" {
		opts.BaseURL = alphaVantageURL
	}
	if opts.OutputSize == "" {
		opts.OutputSize = "compact"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.InitialBackoff == 0 {
		opts.InitialBackoff = 2 * time.Second
	}
	limit := rate.Inf
	if opts.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(opts.RequestsPerMinute))
	}
	return &AlphaVantageFetcher{
		APIKey:         opts.APIKey,
		BaseURL:        opts.BaseURL,
		OutputSize:     opts.OutputSize,
		Client:         newHTTPClient(opts.Timeout, opts.Proxy),
		Limiter:        rate.NewLimiter(limit, 1),
		MaxRetries:     opts.MaxRetries,
		InitialBackoff: opts.InitialBackoff,
	}
}

func (f *AlphaVantageFetcher) Name() string { return "alphavantage" }

// avDaily is the TIME_SERIES_DAILY response. Errors and throttling notices
// arrive with status 200 in their own fields.
type avDaily struct {
	MetaData     map[string]string `json:"Meta Data"`
	TimeSeries   map[string]avBar  `json:"Time Series (Daily)"`
	ErrorMessage string            `json:"Error Message"`
	Note         string            `json:"Note"`
	Information  string            `json:"Information"`
}

type avBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// FetchDaily downloads the daily series. Rate-limit notices and transport
// failures are retried with exponential backoff; unknown symbols are not.
func (f *AlphaVantageFetcher) FetchDaily(ctx context.Context, symbol string) (*model.PriceSeries, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = f.InitialBackoff
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 2 * time.Minute

	var series *model.PriceSeries
	attempt := 0
	op := func() error {
		attempt++
		if err := f.Limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}
		s, err := f.fetchOnce(ctx, symbol)
		if err != nil {
			if errors.Is(err, ErrSymbolNotFound) || errors.Is(err, ErrNoData) || ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			log.Warn().Err(err).Str("symbol", symbol).Int("attempt", attempt).Msg("alphavantage fetch failed")
			return err
		}
		series = s
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(f.MaxRetries)), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, err
	}
	return series, nil
}

func (f *AlphaVantageFetcher) fetchOnce(ctx context.Context, symbol string) (*model.PriceSeries, error) {
	q := url.Values{}
	q.Set("function", "TIME_SERIES_DAILY")
	q.Set("symbol", symbol)
	q.Set("outputsize", f.OutputSize)
	q.Set("apikey", f.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("alphavantage read body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alphavantage: status %d, body: %s", resp.StatusCode, string(body))
	}
	return parseAlphaVantageDaily(symbol, body)
}

func parseAlphaVantageDaily(symbol string, body []byte) (*model.PriceSeries, error) {
	var payload avDaily
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}
	if payload.ErrorMessage != "" {
		return nil, fmt.Errorf("%w: %s: %s", ErrSymbolNotFound, symbol, payload.ErrorMessage)
	}
	if payload.Note != "" {
		return nil, fmt.Errorf("%w: %s", ErrRateLimited, payload.Note)
	}
	if len(payload.TimeSeries) == 0 {
		// The free tier reports its daily quota through Information.
		if payload.Information != "" {
			return nil, fmt.Errorf("%w: %s", ErrRateLimited, payload.Information)
		}
		return nil, fmt.Errorf("%w for symbol %s", ErrNoData, symbol)
	}

	points := make([]model.PricePoint, 0, len(payload.TimeSeries))
	for day, bar := range payload.TimeSeries {
		p, err := bar.toPoint(day)
		if err != nil {
			return nil, fmt.Errorf("alphavantage bar %s: %w", day, err)
		}
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })

	return &model.PriceSeries{Symbol: symbol, Points: points}, nil
}

func (b avBar) toPoint(day string) (model.PricePoint, error) {
	date, err := time.Parse("2006-01-02", day)
	if err != nil {
		return model.PricePoint{}, fmt.Errorf("parse date: %w", err)
	}
	var vals [4]float64
	for i, s := range []string{b.Open, b.High, b.Low, b.Close} {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return model.PricePoint{}, fmt.Errorf("parse price %q: %w", s, err)
		}
		vals[i] = d.InexactFloat64()
	}
	vol, err := decimal.NewFromString(b.Volume)
	if err != nil {
		return model.PricePoint{}, fmt.Errorf("parse volume %q: %w", b.Volume, err)
	}
	return model.PricePoint{
		Date:   date,
		Open:   vals[0],
		High:   vals[1],
		Low:    vals[2],
		Close:  vals[3],
		Volume: vol.IntPart(),
	}, nil
}
