// Package sshconfig reads and rewrites the flat "Host" subset of an OpenSSH
// client configuration file.
//
// Parsing turns file text into HostEntry records. Editing works on the raw
// lines of the file: a single host block is located by name and replaced,
// appended or removed, and every other line is left exactly as it was.
// Lines inside a block that are not one of the five recognized keywords are
// carried in HostEntry.Extra so that a rewrite does not lose them.
package sshconfig

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	apperr "sshTui/internal/error"
)

// HostEntry is one "Host" block. Empty fields are omitted when the block is
// rendered.
type HostEntry struct {
	Host         string
	HostName     string
	User         string
	Port         string
	IdentityFile string
	ProxyCommand string

	// Extra holds the block's unrecognized lines verbatim, in file order.
	Extra []string
}

// Validate checks the entry before it is written. The returned error is an
// *AppError of type ValidationError.
func (e HostEntry) Validate() error {
	host := strings.TrimSpace(e.Host)
	if host == "" {
		return apperr.Newf(apperr.ValidationError, "Host cannot be empty")
	}
	if isWildcard(host) {
		return apperr.Newf(apperr.ValidationError, "Host cannot contain wildcard characters")
	}
	if strings.ContainsFunc(host, unicode.IsSpace) {
		return apperr.Newf(apperr.ValidationError, "Host cannot contain whitespace")
	}
	if strings.TrimSpace(e.HostName) == "" {
		return apperr.Newf(apperr.ValidationError, "HostName cannot be empty")
	}

	port := strings.TrimSpace(e.Port)
	if port == "" {
		return nil
	}
	n, err := strconv.Atoi(port)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return apperr.Newf(apperr.ValidationError, "Port must be a number between 1 and 65535")
	}
	if err != nil || n < 1 || n > 65535 {
		return apperr.Newf(apperr.ValidationError, "port out of range: %s (must be between 1 and 65535)", port)
	}
	return nil
}

// Clone returns a copy that shares no memory with e.
func (e HostEntry) Clone() HostEntry {
	c := e
	if e.Extra != nil {
		c.Extra = append([]string(nil), e.Extra...)
	}
	return c
}
