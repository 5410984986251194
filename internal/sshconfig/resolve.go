package sshconfig

import (
	"strings"

	apperr "sshTui/internal/error"

	"github.com/kevinburke/ssh_config"
)

// Effective holds the values the SSH client would apply for an alias,
// including those inherited from pattern blocks such as "Host *".
type Effective struct {
	HostName     string
	User         string
	Port         string
	IdentityFile string
	ProxyCommand string
}

func (e Effective) IsZero() bool {
	return e == Effective{}
}

// Resolver answers effective-value lookups against one decoded copy of the
// configuration text.
type Resolver struct {
	cfg *ssh_config.Config
}

func NewResolver(text string) (*Resolver, error) {
	cfg, err := ssh_config.Decode(strings.NewReader(text))
	if err != nil {
		return nil, apperr.New(apperr.ConfigError, "failed to evaluate SSH config", err)
	}
	return &Resolver{cfg: cfg}, nil
}

// Lookup returns the first matching value for each recognized keyword.
// Keywords that are not set anywhere resolve to "".
func (r *Resolver) Lookup(alias string) Effective {
	get := func(key string) string {
		v, err := r.cfg.Get(alias, key)
		if err != nil {
			return ""
		}
		return v
	}

	return Effective{
		HostName:     get("HostName"),
		User:         get("User"),
		Port:         get("Port"),
		IdentityFile: get("IdentityFile"),
		ProxyCommand: get("ProxyCommand"),
	}
}

// Resolve evaluates text the way the SSH client does and looks up alias.
func Resolve(text, alias string) (Effective, error) {
	r, err := NewResolver(text)
	if err != nil {
		return Effective{}, err
	}
	return r.Lookup(alias), nil
}
