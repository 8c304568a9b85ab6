package domain

import (
	"runtime"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultHistoryLimit, cfg.History.Limit)
	assert.True(t, cfg.Exec.ConfirmEnabled())
	assert.True(t, cfg.Output.ColorEnabled())
	assert.True(t, cfg.History.IsEnabled())
	assert.NoError(t, cfg.Validate())
	if runtime.GOOS != "windows" {
		assert.Equal(t, "sh", cfg.Exec.Shell)
		assert.Equal(t, "-c", cfg.Exec.ShellFlag)
	}
}

func TestExecConfig_TimeoutDuration(t *testing.T) {
	tests := []struct {
		name    string
		timeout string
		want    time.Duration
		wantErr bool
	}{
		{"empty", "", 0, false},
		{"zero", "0", 0, false},
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"invalid", "soon", 0, true},
		{"negative", "-1s", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExecConfig{Timeout: tt.timeout}.TimeoutDuration()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("bad log level", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Log.Level = "verbose"
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("negative history limit", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.History.Limit = -1
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})

	t.Run("bad timeout", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Exec.Timeout = "abc"
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})
}

func TestConfig_Toggles(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Exec.Confirm = boolPtr(false)
	cfg.Output.Color = boolPtr(false)
	cfg.History.Enabled = boolPtr(false)

	assert.False(t, cfg.Exec.ConfirmEnabled())
	assert.False(t, cfg.Output.ColorEnabled())
	assert.False(t, cfg.History.IsEnabled())
}

func TestConfig_ShellCommand(t *testing.T) {
	t.Run("uses configured shell and dir", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Exec.Shell = "bash"
		cfg.Exec.ShellFlag = "-lc"
		cfg.Exec.Dir = "/work"

		cmd := cfg.ShellCommand("echo hi", "")
		assert.Equal(t, "echo hi", cmd.Line)
		assert.Equal(t, "bash", cmd.Shell)
		assert.Equal(t, "-lc", cmd.ShellFlag)
		assert.Equal(t, "/work", cmd.Dir)
	})

	t.Run("dir argument overrides config", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Exec.Dir = "/work"

		cmd := cfg.ShellCommand("pwd", "/other")
		assert.Equal(t, "/other", cmd.Dir)
	})

	t.Run("custom shell without flag gets default flag", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Exec.Shell = "zsh"
		cfg.Exec.ShellFlag = ""

		cmd := cfg.ShellCommand("ls", "")
		_, flag := DefaultShell()
		assert.Equal(t, flag, cmd.ShellFlag)
	})
}

func TestRenderConfigTemplate(t *testing.T) {
	cfg := NewDefaultConfig()
	out := RenderConfigTemplate(cfg)

	assert.Contains(t, out, "[exec]")
	assert.Contains(t, out, "[history]")
	assert.Contains(t, out, `level = "info"`)
	assert.Contains(t, out, "limit = 20")

	// The rendered template must be valid TOML that decodes back into Config.
	var decoded Config
	require.NoError(t, toml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, cfg.Exec.Shell, decoded.Exec.Shell)
	assert.Equal(t, cfg.Exec.ShellFlag, decoded.Exec.ShellFlag)
	assert.Equal(t, DefaultHistoryLimit, decoded.History.Limit)
}

func TestConfigPaths(t *testing.T) {
	assert.Equal(t, "/home/u/.config/aicli/config.toml", GlobalConfigPath("/home/u/.config"))
	assert.Equal(t, "/repo/.aicli.toml", ProjectConfigPath("/repo"))
	assert.Equal(t, "/state/aicli", StateDir("/state"))
	assert.Equal(t, "/state/aicli/history.json", HistoryPath("/state/aicli"))
	assert.Equal(t, "/state/aicli/logs/aicli.log", LogPath("/state/aicli"))
}
