package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockDashboard/internal/model"
)

type recordingWarmer struct {
	mu      sync.Mutex
	calls   []string
	periods []model.Period
	fail    map[string]error
}

func (w *recordingWarmer) Dashboard(_ context.Context, symbol string, period model.Period) (*model.Dashboard, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls = append(w.calls, symbol)
	w.periods = append(w.periods, period)
	if err := w.fail[symbol]; err != nil {
		return nil, err
	}
	return &model.Dashboard{Symbol: symbol, Period: period}, nil
}

func TestRunNow_WalksWatchlistInOrder(t *testing.T) {
	boom := errors.New("boom")
	w := &recordingWarmer{fail: map[string]error{"MSFT": boom}}
	s := NewScheduler(context.Background(), w, []string{"AAPL", "MSFT", "NVDA"}, model.Period90d)

	res := s.RunNow()

	assert.Equal(t, []string{"AAPL", "MSFT", "NVDA"}, w.calls)
	assert.Equal(t, []model.Period{model.Period90d, model.Period90d, model.Period90d}, w.periods)
	assert.Equal(t, []string{"AAPL", "NVDA"}, res.OK)
	require.Len(t, res.Failed, 1)
	assert.ErrorIs(t, res.Failed["MSFT"], boom)
}

func TestRunNow_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := &recordingWarmer{}
	s := NewScheduler(ctx, w, []string{"AAPL", "MSFT"}, model.Period30d)

	res := s.RunNow()

	assert.Empty(t, w.calls)
	assert.Empty(t, res.OK)
	assert.Len(t, res.Failed, 2)
}

func TestRegisterAll(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		entries int
		wantErr bool
	}{
		{"disabled", "", 0, false},
		{"every weekday morning", "0 30 8 * * 1-5", 1, false},
		{"bad expression", "not a cron", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScheduler(context.Background(), &recordingWarmer{}, nil, model.Period30d)
			err := s.RegisterAll(tt.expr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, s.Cron.Entries(), tt.entries)
		})
	}
}
