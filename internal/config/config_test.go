package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperr "sshTui/internal/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "config.toml"))

	require.NoError(t, m.Load())
	assert.Equal(t, DefaultPreferences(), *m.Preferences())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `ssh_binary = "/usr/local/bin/ssh"
timeout = 5
ssh_config = "/etc/ssh/ssh_config"
backup = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	m := NewManager(path)
	require.NoError(t, m.Load())

	prefs := m.Preferences()
	assert.Equal(t, "/usr/local/bin/ssh", prefs.SSHBinary)
	assert.Equal(t, 5, prefs.Timeout)
	assert.Equal(t, 5*time.Second, prefs.ConnectTimeout())
	assert.Equal(t, "/etc/ssh/ssh_config", prefs.SSHConfigFile())
	assert.False(t, prefs.Backup)
	assert.Equal(t, "info", prefs.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SSHTUI_SSH_BINARY", "/opt/ssh")
	t.Setenv("SSHTUI_TIMEOUT", "12")

	m := NewManager(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, m.Load())

	assert.Equal(t, "/opt/ssh", m.Preferences().SSHBinary)
	assert.Equal(t, 12, m.Preferences().Timeout)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("timeout = = 3\n"), 0600))

	err := NewManager(path).Load()
	assert.True(t, apperr.Is(err, apperr.ConfigError))
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	m := NewManager(path)
	m.Preferences().SSHBinary = "/bin/ssh"
	m.Preferences().Backup = false

	require.NoError(t, m.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(DefaultFilePerms), info.Mode().Perm())

	loaded := NewManager(path)
	require.NoError(t, loaded.Load())
	assert.Equal(t, *m.Preferences(), *loaded.Preferences())
}

func TestConnectTimeoutDisabled(t *testing.T) {
	prefs := DefaultPreferences()
	prefs.Timeout = -1
	assert.Zero(t, prefs.ConnectTimeout())
}

func TestSSHConfigFileExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	prefs := DefaultPreferences()
	assert.Equal(t, filepath.Join(home, ".ssh", "config"), prefs.SSHConfigFile())
}

func TestGetDefaultConfigPath(t *testing.T) {
	path, err := GetDefaultConfigPath()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join(DefaultConfigDir, DefaultConfigFileName)))
}
