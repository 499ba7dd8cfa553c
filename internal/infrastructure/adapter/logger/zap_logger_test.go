package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/core"
)

func TestZapLoggerWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.log")
	l, err := NewZapLogger(Options{Level: "debug", Format: "json", OutputPath: path})
	require.NoError(t, err)

	l.Named("mutator").Info("Transaction committed", map[string]any{"wallet_id": 7})
	require.NoError(t, l.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"Transaction committed"`)
	assert.Contains(t, string(data), `"logger":"mutator"`)
	assert.Contains(t, string(data), `"wallet_id":7`)
}

func TestZapLoggerLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.log")
	l, err := NewZapLogger(Options{Level: "warn", Format: "json", OutputPath: path})
	require.NoError(t, err)
	assert.Equal(t, core.LogLevelWarn, l.GetLevel())

	l.Info("hidden", nil)
	l.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
	l.Debug("visible", nil)
	require.NoError(t, l.Flush())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "visible")
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, l.GetLevel())
	assert.Same(t, l, l.Named("x"))
	assert.NoError(t, l.Flush())
}
