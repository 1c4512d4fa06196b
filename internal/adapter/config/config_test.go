package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URI", "postgres://localhost/lavanderia")
	t.Setenv("RECONCILE_WORKERS", "2")
	t.Setenv("STRICT_RATES", "true")
	t.Setenv("TOKEN_TTL", "1h")

	conf, err := NewConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/lavanderia", conf.Database.DSN)
	assert.Equal(t, "localhost:8080", conf.HTTP.HostString)
	assert.Equal(t, 2, conf.Reconcile.Workers)
	assert.Equal(t, 64, conf.Reconcile.QueueSize)
	assert.True(t, conf.Reconcile.StrictRates)
	assert.Equal(t, time.Hour, conf.Auth.TokenTTL)
	assert.Equal(t, AppModeDevelop, conf.App.Mode)
}

func TestNewConfigFromEnv_BadWorkers(t *testing.T) {
	t.Setenv("RECONCILE_WORKERS", "0")

	_, err := NewConfigFromEnv()
	assert.Error(t, err)
}

func TestNewConfigFromEnv_PoolTooSmall(t *testing.T) {
	t.Setenv("RECONCILE_WORKERS", "4")
	t.Setenv("DATABASE_MAX_CONNS", "4")

	_, err := NewConfigFromEnv()
	assert.Error(t, err)

	t.Setenv("DATABASE_MAX_CONNS", "8")
	conf, err := NewConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, int32(8), conf.Database.MaxConns)
}
