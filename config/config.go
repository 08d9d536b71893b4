package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds configuration for both services. Each binary reads the same
// file and uses its own section; shared sections (log, redis) apply to both.
type Config struct {
	Ledger     LedgerConfig     `mapstructure:"ledger"`
	Storefront StorefrontConfig `mapstructure:"storefront"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Log        LogConfig        `mapstructure:"log"`
}

// LedgerConfig configures the wallet ledger service.
type LedgerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns the ledger listen address.
func (l LedgerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", l.Host, l.Port)
}

// StorefrontConfig configures the storefront service.
type StorefrontConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	Price          int64         `mapstructure:"price"`
	SellerWallet   string        `mapstructure:"seller_wallet"`
	LedgerURL      string        `mapstructure:"ledger_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// Addr returns the storefront listen address.
func (s StorefrontConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RedisConfig configures the optional rate-limit store. Rate limiting is
// disabled when Enabled is false; the services hold no other external state.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: SETL_.
// Nested keys use underscore: SETL_LEDGER_PORT, SETL_STOREFRONT_PRICE, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("ledger.host", "0.0.0.0")
	v.SetDefault("ledger.port", 8080)
	v.SetDefault("storefront.host", "0.0.0.0")
	v.SetDefault("storefront.port", 8081)
	v.SetDefault("storefront.price", 0)
	v.SetDefault("storefront.seller_wallet", "")
	v.SetDefault("storefront.ledger_url", "http://localhost:8080")
	v.SetDefault("storefront.request_timeout", "10s")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: SETL_STOREFRONT_LEDGER_URL -> storefront.ledger_url
	v.SetEnvPrefix("SETL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ValidateStorefront checks the fields the storefront cannot run without.
func (c *Config) ValidateStorefront() error {
	if c.Storefront.Price <= 0 {
		return fmt.Errorf("storefront.price must be a positive integer")
	}
	if c.Storefront.SellerWallet == "" {
		return fmt.Errorf("storefront.seller_wallet is required")
	}
	if c.Storefront.LedgerURL == "" {
		return fmt.Errorf("storefront.ledger_url is required")
	}
	return nil
}
