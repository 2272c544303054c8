package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ProviderAlphaVantage, cfg.DataSource.Provider)
	assert.Equal(t, "compact", cfg.DataSource.OutputSize)
	assert.Equal(t, 5, cfg.DataSource.RequestsPerMinute)
	assert.Equal(t, 2, cfg.DataSource.MaxRetries)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, CacheMemory, cfg.Cache.Backend)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "30d", cfg.Dashboard.DefaultPeriod)
	assert.Contains(t, cfg.Dashboard.Watchlist, "AAPL")
	assert.Len(t, cfg.Dashboard.Watchlist, 8)
}

func TestLoad_YAMLAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
data_source:
  provider: yahoo
  timeout: 3s
dashboard:
  watchlist: [" ibm ", msft]
cache:
  ttl: 90s
server:
  port: 9000
schedule:
  warm_cron: "0 */10 * * * *"
`)
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("ALPHA_VANTAGE_KEY", "secret")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ProviderYahoo, cfg.DataSource.Provider)
	assert.Equal(t, 3*time.Second, cfg.DataSource.Timeout)
	assert.Equal(t, "secret", cfg.DataSource.APIKey)
	assert.Equal(t, []string{"IBM", "MSFT"}, cfg.Dashboard.Watchlist)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "0 */10 * * * *", cfg.Schedule.WarmCron)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ExplicitZeroLimitsSurvive(t *testing.T) {
	path := writeConfig(t, `
data_source:
  provider: yahoo
  requests_per_minute: 0
  max_retries: 0
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.DataSource.RequestsPerMinute)
	assert.Equal(t, 0, cfg.DataSource.MaxRetries)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "server: [unclosed"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := newConfig()
		cfg.applyDefaults()
		cfg.DataSource.APIKey = "k"
		return cfg
	}
	require.NoError(t, base().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing api key", func(c *Config) { c.DataSource.APIKey = "" }},
		{"unknown provider", func(c *Config) { c.DataSource.Provider = "bloomberg" }},
		{"bad output size", func(c *Config) { c.DataSource.OutputSize = "huge" }},
		{"bad period", func(c *Config) { c.Dashboard.DefaultPeriod = "7d" }},
		{"redis without addr", func(c *Config) { c.Cache.Backend = CacheRedis }},
		{"unknown cache", func(c *Config) { c.Cache.Backend = "memcached" }},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
