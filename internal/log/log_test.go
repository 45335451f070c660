package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitDisabled(t *testing.T) {
	require.NoError(t, Init(Options{}))
	assert.False(t, Logger().Core().Enabled(zap.ErrorLevel))
}

func TestInitWritesFile(t *testing.T) {
	t.Cleanup(func() { SetLogger(zap.NewNop()) })
	path := filepath.Join(t.TempDir(), "logs", "textdiff.log")

	require.NoError(t, Init(Options{Enabled: true, Level: "debug", File: path}))
	Debug("compared texts", zap.Int("records", 2))
	_ = Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "compared texts")
	assert.Contains(t, string(data), `"records":2`)
}

func TestInitRejectsBadOptions(t *testing.T) {
	assert.Error(t, Init(Options{Enabled: true}))
	assert.Error(t, Init(Options{Enabled: true, Level: "loud", File: filepath.Join(t.TempDir(), "x.log")}))
}

func TestHelpersUseGlobalLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	Info("info message")
	Warn("warn message")
	With(zap.String("side", "left")).Error("error message")

	require.Equal(t, 3, logs.Len())
	entries := logs.All()
	assert.Equal(t, "info message", entries[0].Message)
	assert.Equal(t, "left", entries[2].ContextMap()["side"])
}
