package telemetry

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestInitLoggerFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	path := filepath.Join(t.TempDir(), "acv.log")
	logger, closer, err := InitLogger(slog.LevelDebug, path)
	require.NoError(t, err)

	logger.Debug("contact selected", "id", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "contact selected", rec["msg"])
	assert.Equal(t, float64(3), rec["id"])
}

func TestInitLoggerLevelFilters(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	path := filepath.Join(t.TempDir(), "acv.log")
	logger, closer, err := InitLogger(slog.LevelWarn, path)
	require.NoError(t, err)
	logger.Info("dropped")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestInitLoggerDiscard(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	logger, closer, err := InitLogger(slog.LevelInfo, "")
	require.NoError(t, err)
	logger.Info("nowhere")
	assert.NoError(t, closer.Close())
}

func TestInitLoggerBadPath(t *testing.T) {
	_, _, err := InitLogger(slog.LevelInfo, "/nonexistent/dir/acv.log")
	assert.Error(t, err)
}
