package sshconfig

import "strings"

// SplitLines splits file text into lines. A trailing newline does not produce
// an empty final line and a trailing "\r" is dropped from each line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// JoinLines is the inverse of SplitLines: every line, the last one included,
// is terminated by a single newline.
func JoinLines(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// stripComment cuts the line at the first '#' that is not preceded by a
// backslash.
func stripComment(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != '#' {
			continue
		}
		if i > 0 && line[i-1] == '\\' {
			continue
		}
		return line[:i]
	}
	return line
}

func logicalLine(line string) string {
	return strings.TrimSpace(stripComment(line))
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isWildcard(name string) bool {
	return strings.ContainsAny(name, "*?")
}

// hostHeader returns the name declared by a "Host <name>" line. Lines with
// the keyword but no argument are not headers.
func hostHeader(line string) (string, bool) {
	parts := strings.Fields(logicalLine(line))
	if len(parts) < 2 || !strings.EqualFold(parts[0], "host") {
		return "", false
	}
	return parts[1], true
}
