package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	apperr "sshTui/internal/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cliConfig = `Host a
  HostName 1.1.1.1
  ForwardAgent yes

Host b
  HostName 2.2.2.2

Host *
  User admin
`

type testEnv struct {
	sshConfig string
	prefs     string
	logFile   string
}

func newTestEnv(t *testing.T, content string) testEnv {
	t.Helper()
	dir := t.TempDir()
	env := testEnv{
		sshConfig: filepath.Join(dir, "ssh_config"),
		prefs:     filepath.Join(dir, "config.toml"),
		logFile:   filepath.Join(dir, "sshtui.log"),
	}
	require.NoError(t, os.WriteFile(env.sshConfig, []byte(content), 0600))
	return env
}

func (e testEnv) run(args ...string) (string, error) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{
		"--config", e.prefs,
		"--ssh-config", e.sshConfig,
		"--log-file", e.logFile,
	}, args...))
	err := root.Execute()
	return out.String(), err
}

func (e testEnv) contents(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(e.sshConfig)
	require.NoError(t, err)
	return string(data)
}

func TestListCommand(t *testing.T) {
	env := newTestEnv(t, cliConfig)

	out, err := env.run("list", "--names")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)

	out, err = env.run("ls")
	require.NoError(t, err)
	assert.Contains(t, out, "HostName")
	assert.Contains(t, out, "1.1.1.1")
	assert.Contains(t, out, "2.2.2.2")
}

func TestListEmpty(t *testing.T) {
	env := newTestEnv(t, "")

	out, err := env.run("list")
	require.NoError(t, err)
	assert.Contains(t, out, "No hosts in")
}

func TestShowCommandResolvesInheritedValues(t *testing.T) {
	env := newTestEnv(t, cliConfig)

	out, err := env.run("show", "b")
	require.NoError(t, err)
	assert.Contains(t, out, "HostName      2.2.2.2\n")
	assert.Contains(t, out, "User          admin\n")
}

func TestAddCommand(t *testing.T) {
	env := newTestEnv(t, cliConfig)

	_, err := env.run("add", "c", "--hostname", "3.3.3.3", "-u", "root", "-p", "2200")
	require.NoError(t, err)
	assert.Contains(t, env.contents(t), "Host c\n  HostName 3.3.3.3\n  User root\n  Port 2200\n")

	_, err = env.run("add", "c", "--hostname", "4.4.4.4")
	assert.True(t, apperr.IsDuplicate(err))
}

func TestAddCommandForceKeepsExtra(t *testing.T) {
	env := newTestEnv(t, cliConfig)

	_, err := env.run("add", "a", "--hostname", "9.9.9.9", "--force")
	require.NoError(t, err)

	contents := env.contents(t)
	assert.Contains(t, contents, "Host a\n  HostName 9.9.9.9\n  ForwardAgent yes\n")
	assert.NotContains(t, contents, "1.1.1.1")
}

func TestAddCommandValidation(t *testing.T) {
	env := newTestEnv(t, cliConfig)

	_, err := env.run("add", "c", "--hostname", "h", "--port", "0")
	assert.True(t, apperr.IsValidation(err))

	_, err = env.run("add", "web*", "--hostname", "h")
	assert.True(t, apperr.IsValidation(err))

	assert.Equal(t, cliConfig, env.contents(t))
}

func TestRemoveAndRestore(t *testing.T) {
	env := newTestEnv(t, cliConfig)

	_, err := env.run("rm", "missing")
	assert.True(t, apperr.IsNotFound(err))

	_, err = env.run("rm", "a")
	require.NoError(t, err)
	assert.NotContains(t, env.contents(t), "Host a\n")
	assert.Contains(t, env.contents(t), "Host *\n")

	out, err := env.run("restore")
	require.NoError(t, err)
	assert.Contains(t, out, "Restored")
	assert.Equal(t, cliConfig, env.contents(t))
}

func TestPreferencesDisableBackup(t *testing.T) {
	env := newTestEnv(t, cliConfig)
	require.NoError(t, os.WriteFile(env.prefs, []byte("backup = false\n"), 0600))

	_, err := env.run("rm", "b")
	require.NoError(t, err)
	assert.NoFileExists(t, env.sshConfig+".old")

	_, err = env.run("restore")
	assert.True(t, apperr.IsNotFound(err))
}
