package observability

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jcikl/jcikl-member-app-sub001/config"
)

func setupTestLogger(t *testing.T, cfg config.LoggerConfig) *bytes.Buffer {
	t.Helper()
	ResetForTest()
	t.Cleanup(ResetForTest)
	buf := new(bytes.Buffer)
	Initialize(cfg, zapcore.AddSync(buf))
	return buf
}

func TestInitialize_JSON(t *testing.T) {
	buf := setupTestLogger(t, config.LoggerConfig{Level: "info", Format: "json", ServiceName: "vlist"})

	GetLogger().Warn("window changed", zap.Int("start", 0), zap.Int("end", 16))
	Sync()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "vlist", entry["logger"])
	assert.Equal(t, "window changed", entry["msg"])
	assert.EqualValues(t, 16, entry["end"])
}

func TestInitialize_Console(t *testing.T) {
	buf := setupTestLogger(t, config.LoggerConfig{Level: "debug", Format: "console", ServiceName: "vlist"})

	GetLogger().Debug("scroll")
	Sync()

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "vlist.")
	assert.Contains(t, out, "scroll")
}

func TestInitialize_LevelFiltersAndBadLevelFallsBack(t *testing.T) {
	buf := setupTestLogger(t, config.LoggerConfig{Level: "nonsense", Format: "json"})

	GetLogger().Debug("hidden")
	GetLogger().Info("shown")
	Sync()

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitialize_OnlyOnce(t *testing.T) {
	first := setupTestLogger(t, config.LoggerConfig{Level: "info", Format: "json", ServiceName: "first"})
	second := new(bytes.Buffer)
	Initialize(config.LoggerConfig{Level: "info", Format: "json", ServiceName: "second"}, zapcore.AddSync(second))

	GetLogger().Info("hello")
	Sync()

	assert.Contains(t, first.String(), "first")
	assert.Empty(t, second.String())
}

func TestInitialize_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vlist.log")
	setupTestLogger(t, config.LoggerConfig{Level: "info", Format: "console", LogFile: path, MaxSize: 1})

	GetLogger().Info("to file", zap.String("k", "v"))
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry), "file output is JSON regardless of console format")
	assert.Equal(t, "to file", entry["msg"])
}

func TestGetLogger_NopBeforeInitialize(t *testing.T) {
	ResetForTest()
	l := GetLogger()
	require.NotNil(t, l)
	assert.False(t, l.Core().Enabled(zap.ErrorLevel))
	Sync()
}
