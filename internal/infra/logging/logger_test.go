package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/runoshun/aicli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_Info(t *testing.T) {
	stateDir := t.TempDir()
	logger := New(stateDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("exec", "test message")

	content, err := os.ReadFile(domain.LogPath(stateDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO]")
	assert.Contains(t, string(content), "[exec]")
	assert.Contains(t, string(content), "test message")
}

func TestLogger_LevelFiltering(t *testing.T) {
	stateDir := t.TempDir()
	logger := New(stateDir, slog.LevelWarn) // Only warn and above
	defer func() { _ = logger.Close() }()

	logger.Debug("exec", "debug message")
	logger.Info("exec", "info message")
	logger.Warn("exec", "warn message")
	logger.Error("exec", "error message")

	content, err := os.ReadFile(domain.LogPath(stateDir))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug message")
	assert.NotContains(t, string(content), "info message")
	assert.Contains(t, string(content), "warn message")
	assert.Contains(t, string(content), "error message")
}

func TestLogger_DisabledWhenEmptyStateDir(t *testing.T) {
	logger := New("", slog.LevelDebug)
	defer func() { _ = logger.Close() }()

	// Should not panic or create files
	logger.Info("exec", "test message")
	logger.Debug("exec", "debug message")
	logger.Warn("exec", "warn message")
	logger.Error("exec", "error message")
}

func TestLogger_LogFormat(t *testing.T) {
	stateDir := t.TempDir()
	logger := New(stateDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("history", `recorded "ls -la"`)

	content, err := os.ReadFile(domain.LogPath(stateDir))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 1)

	// Format: [timestamp] [INFO] [history] message
	assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] \[INFO\] \[history\] recorded "ls -la"$`, lines[0])
}

func TestLogger_ConcurrentWrites(t *testing.T) {
	stateDir := t.TempDir()
	logger := New(stateDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("exec", "line")
		}()
	}
	wg.Wait()

	content, err := os.ReadFile(domain.LogPath(stateDir))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(content)), "\n"), 20)
}

func TestLogger_Close(t *testing.T) {
	stateDir := t.TempDir()
	logger := New(stateDir, slog.LevelInfo)

	logger.Info("exec", "test message")

	assert.NoError(t, logger.Close())
	assert.NoError(t, logger.Close(), "second close is a no-op")
	assert.FileExists(t, domain.LogPath(stateDir))
}

func TestLogger_CreateLogsDir(t *testing.T) {
	stateDir := t.TempDir()
	logsDir := filepath.Join(stateDir, "logs")

	_, err := os.Stat(logsDir)
	assert.True(t, os.IsNotExist(err))

	logger := New(stateDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()
	logger.Info("exec", "test message")

	stat, err := os.Stat(logsDir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}
