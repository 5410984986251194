package sshconfig

import (
	"strings"

	apperr "sshTui/internal/error"
)

// FindBlock locates the block declared by the first "Host <name>" line whose
// name equals name exactly. The block ends before the next host header or at
// the end of the file. Pattern hosts are never returned.
func FindBlock(lines []string, name string) (start, end int, ok bool) {
	if name == "" || isWildcard(name) {
		return 0, 0, false
	}

	for i := 0; i < len(lines); i++ {
		header, isHeader := hostHeader(lines[i])
		if !isHeader {
			continue
		}

		j := i + 1
		for j < len(lines) {
			if _, next := hostHeader(lines[j]); next {
				break
			}
			j++
		}

		if header == name {
			return i, j, true
		}
		i = j - 1
	}
	return 0, 0, false
}

// RenderBlock renders entry in canonical form, terminated by one blank line.
func RenderBlock(entry HostEntry) []string {
	lines := []string{"Host " + strings.TrimSpace(entry.Host)}

	fields := []struct {
		keyword, value string
	}{
		{"HostName", entry.HostName},
		{"User", entry.User},
		{"Port", entry.Port},
		{"IdentityFile", entry.IdentityFile},
		{"ProxyCommand", entry.ProxyCommand},
	}
	for _, f := range fields {
		if v := strings.TrimSpace(f.value); v != "" {
			lines = append(lines, "  "+f.keyword+" "+v)
		}
	}

	lines = append(lines, entry.Extra...)

	if !isBlank(lines[len(lines)-1]) {
		lines = append(lines, "")
	}
	return lines
}

// Upsert replaces the block named entry.Host, or appends a new block when
// there is none.
func Upsert(lines []string, entry HostEntry) ([]string, error) {
	return Update(lines, strings.TrimSpace(entry.Host), entry)
}

// Update replaces the block named originalName with entry, which may carry a
// different name. When originalName is not present the entry is appended.
func Update(lines []string, originalName string, entry HostEntry) ([]string, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if start, end, ok := FindBlock(lines, originalName); ok {
		return replaceBlock(lines, start, end, entry), nil
	}
	return appendBlock(lines, entry), nil
}

// Add appends entry and fails with a DuplicateError when a block with the
// same name already exists.
func Add(lines []string, entry HostEntry) ([]string, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(entry.Host)
	if _, _, ok := FindBlock(lines, name); ok {
		return nil, apperr.Newf(apperr.DuplicateError, "Host '%s' already exists", name)
	}
	return appendBlock(lines, entry), nil
}

// Delete removes the block named name. A missing block is a NotFoundError.
func Delete(lines []string, name string) ([]string, error) {
	start, end, ok := FindBlock(lines, name)
	if !ok {
		return nil, apperr.Newf(apperr.NotFoundError, "Host '%s' not found", name)
	}
	return removeBlock(lines, start, end), nil
}

func replaceBlock(lines []string, start, end int, entry HostEntry) []string {
	block := RenderBlock(entry)
	out := make([]string, 0, len(lines)-(end-start)+len(block))
	out = append(out, lines[:start]...)
	out = append(out, block...)
	out = append(out, lines[end:]...)
	return out
}

func appendBlock(lines []string, entry HostEntry) []string {
	block := RenderBlock(entry)
	out := make([]string, 0, len(lines)+len(block)+1)
	out = append(out, lines...)
	if len(out) > 0 && !isBlank(out[len(out)-1]) {
		out = append(out, "")
	}
	return append(out, block...)
}

func removeBlock(lines []string, start, end int) []string {
	out := make([]string, 0, len(lines)-(end-start))
	out = append(out, lines[:start]...)

	rest := lines[end:]
	if len(rest) > 0 {
		for len(rest) > 0 && isBlank(rest[0]) {
			rest = rest[1:]
		}
		return append(out, rest...)
	}

	for len(out) > 0 && isBlank(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}
