package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"StockDashboard/internal/model"
)

// Warmer loads a dashboard, filling the series cache as a side effect.
type Warmer interface {
	Dashboard(ctx context.Context, symbol string, period model.Period) (*model.Dashboard, error)
}

// WarmResult summarises one pass over the watchlist.
type WarmResult struct {
	OK     []string
	Failed map[string]error
}

// Scheduler manages the cache warm-up cron task.
type Scheduler struct {
	Cron      *cron.Cron
	Warmer    Warmer
	Watchlist []string
	Period    model.Period
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, w Warmer, watchlist []string, period model.Period) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Warmer:    w,
		Watchlist: watchlist,
		Period:    period,
		Ctx:       ctx,
	}
}

// RegisterAll registers the warm-up task. An empty expression leaves the scheduler idle.
func (s *Scheduler) RegisterAll(warmCron string) error {
	if warmCron == "" {
		log.Info().Msg("cache warm-up disabled")
		return nil
	}
	if _, err := s.Cron.AddFunc(warmCron, func() { s.warmTask() }); err != nil {
		return fmt.Errorf("register warm-up task: %w", err)
	}
	log.Info().Str("cron", warmCron).Int("symbols", len(s.Watchlist)).Msg("cache warm-up registered")
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for a running task to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Info().Msg("scheduler stopped")
}

// RunNow executes one warm-up pass immediately.
func (s *Scheduler) RunNow() WarmResult {
	return s.warmTask()
}

// warmTask walks the watchlist sequentially. Failures are logged and collected.
func (s *Scheduler) warmTask() WarmResult {
	log.Info().Int("symbols", len(s.Watchlist)).Msg("running cache warm-up")
	start := time.Now()
	res := WarmResult{Failed: make(map[string]error)}

	for _, sym := range s.Watchlist {
		if err := s.Ctx.Err(); err != nil {
			res.Failed[sym] = err
			continue
		}
		if _, err := s.Warmer.Dashboard(s.Ctx, sym, s.Period); err != nil {
			log.Error().Err(err).Str("symbol", sym).Msg("warm-up failed")
			res.Failed[sym] = err
			continue
		}
		res.OK = append(res.OK, sym)
	}

	log.Info().
		Int("ok", len(res.OK)).
		Int("failed", len(res.Failed)).
		Dur("took", time.Since(start)).
		Msg("cache warm-up finished")
	return res
}
