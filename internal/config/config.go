package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"StockDashboard/internal/logger"
	"StockDashboard/internal/model"
)

// Data source providers.
const (
	ProviderAlphaVantage = "alphavantage"
	ProviderYahoo        = "yahoo"
	ProviderMock         = "mock"
)

// Cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Provider          string        `yaml:"provider" envconfig:"DATA_SOURCE"`
		APIKey            string        `yaml:"api_key" envconfig:"ALPHA_VANTAGE_KEY"`
		BaseURL           string        `yaml:"base_url" envconfig:"DATA_SOURCE_BASE_URL"`
		OutputSize        string        `yaml:"output_size"` // compact (100 points) or full
		Timeout           time.Duration `yaml:"timeout"`
		RequestsPerMinute int           `yaml:"requests_per_minute"`
		MaxRetries        int           `yaml:"max_retries"`
	} `yaml:"data_source"`
	Dashboard struct {
		Watchlist     []string `yaml:"watchlist" envconfig:"WATCHLIST"`
		DefaultPeriod string   `yaml:"default_period"`
	} `yaml:"dashboard"`
	Cache struct {
		Backend string        `yaml:"backend" envconfig:"CACHE_BACKEND"`
		TTL     time.Duration `yaml:"ttl" envconfig:"CACHE_TTL"`
		Redis   struct {
			Addr     string `yaml:"addr" envconfig:"REDIS_ADDR"`
			Password string `yaml:"password" envconfig:"REDIS_PASSWORD"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Server struct {
		Host            string        `yaml:"host"`
		Port            int           `yaml:"port" envconfig:"HTTP_PORT"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Schedule struct {
		WarmCron    string `yaml:"warm_cron" envconfig:"CRON_WARM"`
		WarmOnStart bool   `yaml:"warm_on_start" envconfig:"WARM_ON_START"`
	} `yaml:"schedule"`
	Log   logger.Config `yaml:"log"`
	Proxy string        `yaml:"proxy" envconfig:"HTTPS_PROXY"`
}

// Load reads config from a YAML file, then applies .env and environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := newConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// newConfig seeds the fields where zero is a meaningful setting, so an
// explicit 0 in YAML or the environment survives applyDefaults.
func newConfig() *Config {
	cfg := &Config{}
	cfg.DataSource.RequestsPerMinute = 5
	cfg.DataSource.MaxRetries = 2
	return cfg
}

func (c *Config) applyDefaults() {
	if c.DataSource.Provider == "" {
		c.DataSource.Provider = ProviderAlphaVantage
	}
	if c.DataSource.OutputSize == "" {
		c.DataSource.OutputSize = "compact"
	}
	if c.DataSource.Timeout == 0 {
		c.DataSource.Timeout = 10 * time.Second
	}
	if len(c.Dashboard.Watchlist) == 0 {
		c.Dashboard.Watchlist = []string{"AAPL", "GOOGL", "MSFT", "AMZN", "TSLA", "META", "NVDA", "NFLX"}
	}
	for i, s := range c.Dashboard.Watchlist {
		c.Dashboard.Watchlist[i] = strings.ToUpper(strings.TrimSpace(s))
	}
	if c.Dashboard.DefaultPeriod == "" {
		c.Dashboard.DefaultPeriod = string(model.Period30d)
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = CacheMemory
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 5 * time.Minute
	}
	if c.Cache.Redis.Prefix == "" {
		c.Cache.Redis.Prefix = "stockdash"
	}
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	switch c.DataSource.Provider {
	case ProviderAlphaVantage:
		if c.DataSource.APIKey == "" {
			return fmt.Errorf("data_source.api_key is required for alphavantage (set ALPHA_VANTAGE_KEY)")
		}
	case ProviderYahoo, ProviderMock:
	default:
		return fmt.Errorf("data_source.provider must be one of alphavantage, yahoo, mock, got %q", c.DataSource.Provider)
	}
	if c.DataSource.OutputSize != "compact" && c.DataSource.OutputSize != "full" {
		return fmt.Errorf("data_source.output_size must be compact or full, got %q", c.DataSource.OutputSize)
	}
	if c.DataSource.RequestsPerMinute < 0 {
		return fmt.Errorf("data_source.requests_per_minute must not be negative")
	}
	if c.DataSource.MaxRetries < 0 {
		return fmt.Errorf("data_source.max_retries must not be negative")
	}
	if _, err := model.ParsePeriod(c.Dashboard.DefaultPeriod); err != nil {
		return fmt.Errorf("dashboard.default_period: %w", err)
	}
	switch c.Cache.Backend {
	case CacheMemory:
	case CacheRedis:
		if c.Cache.Redis.Addr == "" {
			return fmt.Errorf("cache.redis.addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("cache.backend must be memory or redis, got %q", c.Cache.Backend)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}
