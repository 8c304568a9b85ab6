package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/aicli/internal/app"
	"github.com/runoshun/aicli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConfigTestContainer creates an app.Container with real config infrastructure
// rooted in a temporary project directory.
func newConfigTestContainer(t *testing.T) (*app.Container, string, string) {
	t.Helper()

	projectDir := t.TempDir()
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	container, err := app.New(projectDir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	return container, projectDir, configHome
}

func executeConfig(t *testing.T, c *app.Container, args ...string) (string, error) {
	t.Helper()
	cmd := newConfigCommand(c)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestConfigCommand_NoSubcommand_ShowsHelp(t *testing.T) {
	container, _, _ := newConfigTestContainer(t)

	output, err := executeConfig(t, container)

	require.NoError(t, err)
	assert.Contains(t, output, "Available Commands:")
	assert.Contains(t, output, "show")
	assert.Contains(t, output, "template")
	assert.Contains(t, output, "init")
}

func TestConfigShow_Defaults(t *testing.T) {
	container, projectDir, configHome := newConfigTestContainer(t)

	output, err := executeConfig(t, container, "show")

	require.NoError(t, err)
	assert.Contains(t, output, "[Loaded from]")
	assert.Contains(t, output, filepath.Join(configHome, "aicli", "config.toml")+" (not found)")
	assert.Contains(t, output, filepath.Join(projectDir, ".aicli.toml")+" (not found)")
	assert.Contains(t, output, "[Effective Config]")
	assert.Contains(t, output, "[exec]")
	assert.Contains(t, output, "confirm = true")
	assert.Contains(t, output, "color = true")
	assert.Contains(t, output, "enabled = true")
	assert.Contains(t, output, "limit = 20")
}

func TestConfigShow_ProjectOverrides(t *testing.T) {
	container, projectDir, _ := newConfigTestContainer(t)
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, ".aicli.toml"), []byte(`
[exec]
shell = "bash"
timeout = "30s"
confirm = false
`), 0o644))

	output, err := executeConfig(t, container, "show")

	require.NoError(t, err)
	assert.Contains(t, output, "- "+filepath.Join(projectDir, ".aicli.toml")+"\n")
	assert.Regexp(t, `shell = ['"]bash['"]`, output)
	assert.Regexp(t, `timeout = ['"]30s['"]`, output)
	assert.Contains(t, output, "confirm = false")
}

func TestConfigShow_InvalidConfig(t *testing.T) {
	container, projectDir, _ := newConfigTestContainer(t)
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, ".aicli.toml"), []byte(`
[exec]
timeout = "soon"
`), 0o644))

	_, err := executeConfig(t, container, "show")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "exec.timeout")
}

func TestConfigTemplate(t *testing.T) {
	container, _, _ := newConfigTestContainer(t)

	output, err := executeConfig(t, container, "template")

	require.NoError(t, err)
	assert.Contains(t, output, "[exec]")
	assert.Contains(t, output, "[history]")
	assert.Contains(t, output, `level = "info"`)
}

func TestConfigInit_Project(t *testing.T) {
	container, projectDir, _ := newConfigTestContainer(t)
	path := filepath.Join(projectDir, ".aicli.toml")

	output, err := executeConfig(t, container, "init")

	require.NoError(t, err)
	assert.Equal(t, "Created config file: "+path+"\n", output)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[exec]")

	// Second init refuses to overwrite
	_, err = executeConfig(t, container, "init")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigExists)

	// --force overwrites
	_, err = executeConfig(t, container, "init", "--force")
	require.NoError(t, err)
}

func TestConfigInit_Global(t *testing.T) {
	container, projectDir, configHome := newConfigTestContainer(t)

	output, err := executeConfig(t, container, "init", "--global")

	require.NoError(t, err)
	path := filepath.Join(configHome, "aicli", "config.toml")
	assert.Contains(t, output, path)
	assert.FileExists(t, path)
	assert.NoFileExists(t, filepath.Join(projectDir, ".aicli.toml"))
}
