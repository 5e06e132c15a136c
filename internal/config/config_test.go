package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("ORDERS_DECREMENT_SUPPLY", "")
	t.Setenv("CATALOG_SEED", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.True(t, cfg.Catalog.Seed)
	assert.False(t, cfg.Catalog.DecrementSupply)
	assert.Equal(t, 24*time.Hour, cfg.JWT.SessionExpiry)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadProductionNeedsSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetEnvBoolFallsBack(t *testing.T) {
	t.Setenv("SOME_FLAG", "maybe")
	assert.True(t, getEnvBool("SOME_FLAG", true))

	t.Setenv("SOME_FLAG", "false")
	assert.False(t, getEnvBool("SOME_FLAG", true))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
	assert.Nil(t, splitList(""))
}
