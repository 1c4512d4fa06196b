package logger

import (
	"testing"

	"github.com/MikeRez0/lavanderia/internal/adapter/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	l, err := NewLogger(&config.App{LogLevel: "warn", Mode: config.AppModeProduction})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.InfoLevel))
	assert.True(t, l.Core().Enabled(zap.WarnLevel))

	l, err = NewLogger(&config.App{LogLevel: "debug", Mode: config.AppModeDevelop})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))

	_, err = NewLogger(&config.App{LogLevel: "loud"})
	assert.Error(t, err)
}
