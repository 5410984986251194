package sshconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inheritingConfig = `Host web
  HostName web.example.com

Host *
  User admin
  Port 2200
`

func TestResolveInheritsFromPatterns(t *testing.T) {
	eff, err := Resolve(inheritingConfig, "web")
	require.NoError(t, err)

	assert.Equal(t, "web.example.com", eff.HostName)
	assert.Equal(t, "admin", eff.User)
	assert.Equal(t, "2200", eff.Port)
	assert.Empty(t, eff.ProxyCommand)
}

func TestResolveFirstValueWins(t *testing.T) {
	eff, err := Resolve(sampleConfig, "app-server")
	require.NoError(t, err)

	// "Host *" appears later, so the block's own User wins.
	assert.Equal(t, "deploy", eff.User)
	assert.Equal(t, "2222", eff.Port)
	assert.Equal(t, "ssh -W %h:%p bastion", eff.ProxyCommand)
}

func TestResolveUnknownAlias(t *testing.T) {
	eff, err := Resolve("Host a\n  HostName 1.1.1.1\n", "zzz")
	require.NoError(t, err)
	assert.True(t, eff.IsZero())
}

func TestResolveEmpty(t *testing.T) {
	eff, err := Resolve("", "a")
	require.NoError(t, err)
	assert.True(t, eff.IsZero())
}

func TestResolverLooksUpManyAliases(t *testing.T) {
	r, err := NewResolver(inheritingConfig)
	require.NoError(t, err)

	assert.Equal(t, "web.example.com", r.Lookup("web").HostName)

	other := r.Lookup("other")
	assert.Empty(t, other.HostName)
	assert.Equal(t, "admin", other.User)
	assert.Equal(t, "2200", other.Port)
}
