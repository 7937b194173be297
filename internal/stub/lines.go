package stub

import (
	"regexp"
	"slices"
	"strings"
)

// importLine matches a single-line PHP class import.
var importLine = regexp.MustCompile(`^use [^;{]+;$`)

// lineEnding returns the line terminator used by text.
func lineEnding(text string) string {
	if strings.Contains(text, "\r\n") {
		return "\r\n"
	}
	return "\n"
}

// isBlankLine reports whether l (including its terminator) is empty.
func isBlankLine(l string) bool {
	return l == "\n" || l == "\r\n"
}

// CollapseBlankLines collapses every run of exactly two consecutive blank
// lines into one. Shorter and longer runs are left alone, which keeps the
// pass idempotent. Both LF and CRLF line endings are recognised.
func CollapseBlankLines(text string) string {
	lines := strings.SplitAfter(text, "\n")

	var out strings.Builder
	out.Grow(len(text))

	var run []string
	flush := func() {
		if len(run) == 2 {
			out.WriteString(run[0])
		} else {
			for _, l := range run {
				out.WriteString(l)
			}
		}
		run = run[:0]
	}

	for _, l := range lines {
		if isBlankLine(l) {
			run = append(run, l)
			continue
		}
		flush()
		out.WriteString(l)
	}
	flush()

	return out.String()
}

// SortImports sorts the first contiguous block of `use` statements
// alphabetically. Text without imports is returned unchanged.
func SortImports(text string) string {
	lines := strings.SplitAfter(text, "\n")

	start, end := -1, -1
	for i, l := range lines {
		if importLine.MatchString(strings.TrimRight(l, "\r\n")) {
			if start < 0 {
				start = i
			}
			end = i + 1
			continue
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 || end-start < 2 {
		return text
	}

	block := make([]string, 0, end-start)
	for _, l := range lines[start:end] {
		block = append(block, strings.TrimRight(l, "\r\n"))
	}
	slices.Sort(block)

	eol := lineEnding(text)
	// The last import keeps whatever terminator it had originally.
	lastEOL := lines[end-1][len(strings.TrimRight(lines[end-1], "\r\n")):]

	var out strings.Builder
	out.Grow(len(text))
	for _, l := range lines[:start] {
		out.WriteString(l)
	}
	for i, imp := range block {
		out.WriteString(imp)
		if i < len(block)-1 {
			out.WriteString(eol)
		} else {
			out.WriteString(lastEOL)
		}
	}
	for _, l := range lines[end:] {
		out.WriteString(l)
	}
	return out.String()
}
