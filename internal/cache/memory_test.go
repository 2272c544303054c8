package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Symbol string    `json:"symbol"`
	Prices []float64 `json:"prices"`
}

func TestMemoryStore_SetGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	defer s.Close()

	in := payload{Symbol: "AAPL", Prices: []float64{1, 2}}
	require.NoError(t, s.Set(ctx, "series:AAPL", in, time.Minute))

	var out payload
	require.NoError(t, s.Get(ctx, "series:AAPL", &out))
	assert.Equal(t, in, out)

	// decoded values are copies
	out.Prices[0] = 99
	var again payload
	require.NoError(t, s.Get(ctx, "series:AAPL", &again))
	assert.Equal(t, 1.0, again.Prices[0])

	assert.ErrorIs(t, s.Get(ctx, "series:MSFT", &out), ErrCacheMiss)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	defer s.Close()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "k", "v", 5*time.Minute))
	var v string
	require.NoError(t, s.Get(ctx, "k", &v))

	now = now.Add(5 * time.Minute)
	assert.ErrorIs(t, s.Get(ctx, "k", &v), ErrCacheMiss)

	require.NoError(t, s.Set(ctx, "forever", "v", 0))
	now = now.Add(24 * time.Hour)
	assert.NoError(t, s.Get(ctx, "forever", &v))
}

func TestMemoryStore_DeleteByPrefix(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0)
	defer s.Close()

	require.NoError(t, s.Set(ctx, Key("series", "yahoo", "AAPL"), 1, time.Minute))
	require.NoError(t, s.Set(ctx, Key("series", "yahoo", "MSFT"), 2, time.Minute))
	require.NoError(t, s.Set(ctx, "other", 3, time.Minute))

	require.NoError(t, s.DeleteByPrefix(ctx, "series:"))
	assert.Equal(t, 1, s.Len())

	var n int
	assert.NoError(t, s.Get(ctx, "other", &n))
	assert.Equal(t, 3, n)
}

func TestMemoryStore_Sweep(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(10 * time.Millisecond)
	defer s.Close()

	require.NoError(t, s.Set(ctx, "short", 1, time.Millisecond))
	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 10*time.Millisecond)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "series:alphavantage:AAPL", Key("series", "alphavantage", "AAPL"))
	assert.Equal(t, "series", Key("series"))
}
