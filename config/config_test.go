package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Idempotency: &IdempotencyConfig{Path: "idem.db"}}

	applyDefaults(cfg)

	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, int64(5), cfg.Unlock.DefaultCost)
	assert.Equal(t, "transaction", cfg.Unlock.Strategy)
	assert.Equal(t, "ratio", cfg.Unlock.RevenueShare.Mode)
	assert.Equal(t, "0.8", cfg.Unlock.RevenueShare.Ratio)
	assert.Equal(t, 24*time.Hour, cfg.Idempotency.TTL)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Unlock.Strategy = "saga"
	cfg.Unlock.RevenueShare.Mode = "fee"
	cfg.Unlock.DefaultCost = 8

	applyDefaults(cfg)

	assert.Equal(t, "saga", cfg.Unlock.Strategy)
	assert.Equal(t, "fee", cfg.Unlock.RevenueShare.Mode)
	assert.Empty(t, cfg.Unlock.RevenueShare.Ratio)
	assert.Equal(t, int64(8), cfg.Unlock.DefaultCost)
}

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`env:
  env: test
  serviceName: novelhub
  log:
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 5s
unlock:
  defaultCost: 5
  strategy: transaction
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("UNLOCK_STRATEGY", "saga")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config", rel)
	require.NoError(t, err)

	assert.Equal(t, "novelhub", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "saga", cfg.Unlock.Strategy)
	assert.Equal(t, int64(5), cfg.Unlock.DefaultCost)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")

	require.Error(t, err)
}
