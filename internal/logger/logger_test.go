package logger

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

func TestInit_Disabled(t *testing.T) {
	require.NoError(t, Init(Options{Enabled: false}))
	assert.False(t, L.Enabled(t.Context(), slog.LevelError))
}

func TestClose_Stderr(t *testing.T) {
	require.NoError(t, Init(Options{Enabled: true, Level: slog.LevelDebug}))
	require.True(t, L.Enabled(t.Context(), slog.LevelDebug))

	Close()
	assert.False(t, L.Enabled(t.Context(), slog.LevelError), "closed logger must discard output")
}

func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "vecctl.log")
	require.NoError(t, Init(Options{Enabled: true, Level: slog.LevelDebug, Path: path}))
	t.Cleanup(Close)

	Debug("vector: reallocated", "from", 4, "to", 8)
	Info("replay finished", "ops", 3)
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "vector: reallocated", rec["msg"])
	assert.EqualValues(t, 8, rec["to"])

	Info("after close")
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, after, "closed logger must discard output")
}

func TestInit_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warn.log")
	require.NoError(t, Init(Options{Enabled: true, Level: slog.LevelWarn, Path: path}))
	t.Cleanup(Close)

	Info("dropped")
	Warn("kept")
	Error("kept too")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"trace", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
