package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "lockre-pos", cfg.App.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "lockre.db", cfg.Store.Path)
	assert.Equal(t, 0, cfg.Store.SchemaVersion)
	assert.Equal(t, "XOF", cfg.Shop.Currency)
	assert.Equal(t, "fr", cfg.Shop.Locale)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORE_PATH", "/data/tienda.db")
	t.Setenv("STORE_SCHEMA_VERSION", "1")
	t.Setenv("SHOP_CURRENCY", "EUR")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "/data/tienda.db", cfg.Store.Path)
	assert.Equal(t, 1, cfg.Store.SchemaVersion)
	assert.Equal(t, "EUR", cfg.Shop.Currency)
}
