package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"StockDashboard/internal/cache"
	"StockDashboard/internal/collector"
	"StockDashboard/internal/config"
	"StockDashboard/internal/logger"
	"StockDashboard/internal/model"
	"StockDashboard/internal/recorder"
	"StockDashboard/internal/scheduler"
	"StockDashboard/internal/server"
)

var version = "dev"

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	_, logCloser, err := logger.Setup(cfg.Log)
	if err != nil {
		log.Fatal().Err(err).Msg("init logger")
	}
	defer logCloser.Close()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}
	log.Info().Str("version", version).Msg("StockDashboard starting")

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init fetcher
	var fetcher collector.Fetcher
	switch cfg.DataSource.Provider {
	case config.ProviderYahoo:
		yf := collector.NewYahooFetcher(cfg.DataSource.Timeout, cfg.Proxy)
		if cfg.DataSource.BaseURL != "" {
			yf.BaseURL = cfg.DataSource.BaseURL
		}
		fetcher = yf
	case config.ProviderMock:
		fetcher = &collector.MockFetcher{Days: 300}
	default:
		fetcher = collector.NewAlphaVantageFetcher(collector.AlphaVantageOptions{
			APIKey:            cfg.DataSource.APIKey,
			BaseURL:           cfg.DataSource.BaseURL,
			OutputSize:        cfg.DataSource.OutputSize,
			Timeout:           cfg.DataSource.Timeout,
			Proxy:             cfg.Proxy,
			RequestsPerMinute: cfg.DataSource.RequestsPerMinute,
			MaxRetries:        cfg.DataSource.MaxRetries,
		})
	}
	log.Info().Str("source", fetcher.Name()).Msg("data source ready")

	// Init cache
	var store cache.Store
	switch cfg.Cache.Backend {
	case config.CacheRedis:
		rs, err := cache.NewRedisStore(ctx, cache.RedisOptions{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			Prefix:   cfg.Cache.Redis.Prefix,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("init redis cache")
		}
		store = rs
	default:
		store = cache.NewMemoryStore(time.Minute)
	}
	defer store.Close()
	log.Info().Str("backend", cfg.Cache.Backend).Dur("ttl", cfg.Cache.TTL).Msg("cache ready")

	// Init metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	rec := recorder.NewPrometheusRecorder(reg)

	col := collector.NewCollector(fetcher, store, cfg.Cache.TTL, rec)
	period := model.Period(cfg.Dashboard.DefaultPeriod)

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, col, cfg.Dashboard.Watchlist, period)
	if err := sched.RegisterAll(cfg.Schedule.WarmCron); err != nil {
		log.Fatal().Err(err).Msg("register cron tasks")
	}
	sched.Start()
	defer sched.Stop()

	if cfg.Schedule.WarmOnStart {
		log.Info().Msg("warm_on_start enabled, warming cache now")
		go sched.RunNow()
	}

	// Init HTTP server
	handler := server.NewStockHandler(col, cfg.Dashboard.Watchlist, period, version)
	srv := server.NewServer(handler,
		server.WithHost(cfg.Server.Host),
		server.WithPort(cfg.Server.Port),
		server.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		server.WithMetrics(reg),
	)
	if err := srv.Start(); err != nil {
		log.Fatal().Err(err).Msg("start http server")
	}

	log.Info().Str("addr", srv.Addr()).Msg("StockDashboard is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping...")
	cancel()
	if err := srv.Stop(context.Background()); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}
	log.Info().Msg("StockDashboard stopped")
}
