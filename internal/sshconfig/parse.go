package sshconfig

import (
	"strings"
	"unicode"
)

// Parse converts configuration text into host entries in file order.
//
// It never fails. Lines before the first "Host" line are not represented,
// and blocks whose name is missing or is a pattern (contains '*' or '?') are
// skipped together with their body.
func Parse(text string) []HostEntry {
	var (
		entries []HostEntry
		current *HostEntry
	)

	flush := func() {
		if current != nil && current.Host != "" {
			entries = append(entries, *current)
		}
		current = nil
	}

	for _, raw := range SplitLines(text) {
		parts := strings.Fields(logicalLine(raw))

		if len(parts) > 0 && strings.EqualFold(parts[0], "host") {
			flush()
			if len(parts) > 1 && !isWildcard(parts[1]) {
				current = &HostEntry{Host: parts[1]}
			}
			continue
		}

		if current == nil {
			continue
		}

		if len(parts) == 0 {
			current.Extra = append(current.Extra, strings.TrimRightFunc(raw, unicode.IsSpace))
			continue
		}

		value := strings.Join(parts[1:], " ")
		switch strings.ToLower(parts[0]) {
		case "hostname":
			current.HostName = value
		case "user":
			current.User = value
		case "port":
			current.Port = value
		case "identityfile":
			current.IdentityFile = value
		case "proxycommand":
			current.ProxyCommand = value
		default:
			current.Extra = append(current.Extra, strings.TrimRightFunc(raw, unicode.IsSpace))
		}
	}
	flush()

	return entries
}

// Find returns the first entry with the given name.
func Find(entries []HostEntry, name string) (HostEntry, bool) {
	for _, e := range entries {
		if e.Host == name {
			return e, true
		}
	}
	return HostEntry{}, false
}
