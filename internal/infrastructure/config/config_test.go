package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "storefront", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 10*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, "file", cfg.Cart.Backend)
	assert.Equal(t, "cart.json", cfg.Cart.Path)
	assert.Equal(t, "https://wa.me", cfg.Checkout.MessagingEndpoint)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("STOREFRONT_APP_PORT", "9090")
	t.Setenv("STOREFRONT_LOG_LEVEL", "debug")
	t.Setenv("STOREFRONT_CATALOG_ENDPOINT", "https://api.example.com/products")
	t.Setenv("STOREFRONT_CHECKOUT_RECIPIENT", "15551234567")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "https://api.example.com/products", cfg.Catalog.Endpoint)
	assert.Equal(t, "15551234567", cfg.Checkout.Recipient)
}

func TestLoad_InvalidCartBackend(t *testing.T) {
	t.Setenv("STOREFRONT_CART_BACKEND", "cookie")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "cart.backend")
}

func TestLoad_ProductionValidation(t *testing.T) {
	t.Run("missing JWT secret", func(t *testing.T) {
		t.Setenv("STOREFRONT_APP_ENV", "production")
		t.Setenv("STOREFRONT_DATABASE_PASSWORD", "secret")
		t.Setenv("STOREFRONT_DATABASE_SSLMODE", "require")

		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "jwt.secret")
	})

	t.Run("short JWT secret", func(t *testing.T) {
		t.Setenv("STOREFRONT_APP_ENV", "production")
		t.Setenv("STOREFRONT_JWT_SECRET", "too-short")
		t.Setenv("STOREFRONT_DATABASE_PASSWORD", "secret")
		t.Setenv("STOREFRONT_DATABASE_SSLMODE", "require")

		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "32 characters")
	})

	t.Run("sslmode disable rejected", func(t *testing.T) {
		t.Setenv("STOREFRONT_APP_ENV", "production")
		t.Setenv("STOREFRONT_JWT_SECRET", strings.Repeat("k", 32))
		t.Setenv("STOREFRONT_DATABASE_PASSWORD", "secret")

		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "sslmode")
	})

	t.Run("valid production config", func(t *testing.T) {
		t.Setenv("STOREFRONT_APP_ENV", "production")
		t.Setenv("STOREFRONT_JWT_SECRET", strings.Repeat("k", 32))
		t.Setenv("STOREFRONT_DATABASE_PASSWORD", "secret")
		t.Setenv("STOREFRONT_DATABASE_SSLMODE", "require")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "store",
		Password: "p@ss/word",
		DBName:   "storefront",
		SSLMode:  "require",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5433")
	assert.Contains(t, dsn, "sslmode=require")
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", r.Addr())
}
