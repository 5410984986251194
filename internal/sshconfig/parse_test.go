package sshconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `# global settings
ServerAliveInterval 30

Host app-server
  HostName app.example.com
  User deploy
  Port 2222
  IdentityFile ~/.ssh/app_rsa
  ProxyCommand ssh -W %h:%p bastion
  LocalForward 8080 localhost:80
  # inline comment
  ForwardAgent yes

Host *
  ServerAliveInterval 60
  User root

Host db
  hostname db.internal   # primary
`

func TestParseTwoHosts(t *testing.T) {
	entries := Parse("Host a\n  HostName 1.1.1.1\n\nHost b\n  HostName 2.2.2.2\n")

	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Host)
	assert.Equal(t, "1.1.1.1", entries[0].HostName)
	assert.Equal(t, []string{""}, entries[0].Extra)
	assert.Equal(t, "b", entries[1].Host)
	assert.Equal(t, "2.2.2.2", entries[1].HostName)
	assert.Empty(t, entries[1].Extra)
}

func TestParseSampleConfig(t *testing.T) {
	entries := Parse(sampleConfig)
	require.Len(t, entries, 2)

	app := entries[0]
	assert.Equal(t, HostEntry{
		Host:         "app-server",
		HostName:     "app.example.com",
		User:         "deploy",
		Port:         "2222",
		IdentityFile: "~/.ssh/app_rsa",
		ProxyCommand: "ssh -W %h:%p bastion",
		Extra: []string{
			"  LocalForward 8080 localhost:80",
			"  # inline comment",
			"  ForwardAgent yes",
			"",
		},
	}, app)

	db := entries[1]
	assert.Equal(t, "db", db.Host)
	assert.Equal(t, "db.internal", db.HostName)
	assert.Empty(t, db.User, "values from the pattern block must not leak")
	assert.Empty(t, db.Extra)
}

func TestParseSkipsPatternHosts(t *testing.T) {
	entries := Parse("Host *\n  User root\n\nHost 10.0.?.1\n  Port 2200\n\nHost real\n  HostName 1.2.3.4\n")

	require.Len(t, entries, 1)
	assert.Equal(t, "real", entries[0].Host)
	assert.Empty(t, entries[0].User)
	assert.Empty(t, entries[0].Port)
}

func TestParseHostWithoutName(t *testing.T) {
	entries := Parse("Host a\n  HostName 1\nHost\n  User nobody\nHost b\n  HostName 2\n")

	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Host)
	assert.Empty(t, entries[0].User)
	assert.Equal(t, "b", entries[1].Host)
	assert.Empty(t, entries[1].User)
}

func TestParseKeywordsAreCaseInsensitive(t *testing.T) {
	entries := Parse("HOST x\n  HOSTNAME y\n  user Z\n  identityFILE ~/.ssh/k\n  proxycommand nc %h %p\n")

	require.Len(t, entries, 1)
	assert.Equal(t, HostEntry{
		Host:         "x",
		HostName:     "y",
		User:         "Z",
		IdentityFile: "~/.ssh/k",
		ProxyCommand: "nc %h %p",
	}, entries[0])
}

func TestParseLastKeywordWins(t *testing.T) {
	entries := Parse("Host a\n  HostName one\n  HostName two\n")

	require.Len(t, entries, 1)
	assert.Equal(t, "two", entries[0].HostName)
}

func TestParseKeepsDuplicateHosts(t *testing.T) {
	entries := Parse("Host a\n  HostName 1\nHost a\n  HostName 2\n")

	require.Len(t, entries, 2)
	assert.Equal(t, "1", entries[0].HostName)
	assert.Equal(t, "2", entries[1].HostName)

	first, ok := Find(entries, "a")
	require.True(t, ok)
	assert.Equal(t, "1", first.HostName)
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"collapses whitespace", "Host a\n  ProxyCommand   ssh  -W %h:%p   jump\n", "ssh -W %h:%p jump"},
		{"strips inline comment", "Host a\n  ProxyCommand ssh jump # via bastion\n", "ssh jump"},
		{"keeps escaped hash", "Host a\n  ProxyCommand ssh jump\\#1\n", "ssh jump\\#1"},
		{"crlf line endings", "Host a\r\n  ProxyCommand ssh jump\r\n", "ssh jump"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := Parse(tt.text)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.want, entries[0].ProxyCommand)
		})
	}
}

func TestParseExtraKeepsLeadingWhitespace(t *testing.T) {
	entries := Parse("Host a\n\tForwardAgent yes   \n    # note  \n   \n")

	require.Len(t, entries, 1)
	assert.Equal(t, []string{"\tForwardAgent yes", "    # note", ""}, entries[0].Extra)
}

func TestParseIgnoresPreamble(t *testing.T) {
	entries := Parse("ServerAliveInterval 30\n# comment\n\nHost a\n  HostName 1\n")

	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Extra)
}

func TestParseEmpty(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("\n\n# only comments\n"))
}

func TestSplitJoinLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{""}, SplitLines("\n"))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\nb"))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\r\nb\r\n"))
	assert.Equal(t, []string{"a", ""}, SplitLines("a\n\n"))

	assert.Equal(t, "", JoinLines(nil))
	assert.Equal(t, "a\n\n", JoinLines([]string{"a", ""}))
}
