package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Ledger.Host)
	assert.Equal(t, 8080, cfg.Ledger.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Ledger.Addr())

	assert.Equal(t, 8081, cfg.Storefront.Port)
	assert.Equal(t, "http://localhost:8080", cfg.Storefront.LedgerURL)
	assert.Equal(t, 10*time.Second, cfg.Storefront.RequestTimeout)

	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
ledger:
  host: "127.0.0.1"
  port: 9090
storefront:
  host: "127.0.0.1"
  port: 9091
  price: 30
  seller_wallet: "bob"
  ledger_url: "http://127.0.0.1:9090"
  request_timeout: "5s"
redis:
  enabled: true
  host: "redis.example.com"
  port: 6380
  password: "redispwd"
  db: 2
log:
  level: "debug"
  pretty: true
`)
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Ledger.Addr())
	assert.Equal(t, "127.0.0.1:9091", cfg.Storefront.Addr())
	assert.Equal(t, int64(30), cfg.Storefront.Price)
	assert.Equal(t, "bob", cfg.Storefront.SellerWallet)
	assert.Equal(t, "http://127.0.0.1:9090", cfg.Storefront.LedgerURL)
	assert.Equal(t, 5*time.Second, cfg.Storefront.RequestTimeout)

	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis.example.com:6380", cfg.Redis.Addr())
	assert.Equal(t, 2, cfg.Redis.DB)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SETL_LEDGER_PORT", "7070")
	t.Setenv("SETL_STOREFRONT_PRICE", "45")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Ledger.Port)
	assert.Equal(t, int64(45), cfg.Storefront.Price)
}

func TestValidateStorefront(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	// Defaults are incomplete for the storefront.
	assert.Error(t, cfg.ValidateStorefront())

	cfg.Storefront.Price = 30
	assert.Error(t, cfg.ValidateStorefront(), "seller wallet still missing")

	cfg.Storefront.SellerWallet = "bob"
	assert.NoError(t, cfg.ValidateStorefront())

	cfg.Storefront.LedgerURL = ""
	assert.Error(t, cfg.ValidateStorefront())
}
