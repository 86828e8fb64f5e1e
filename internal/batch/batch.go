package batch

import (
	"fmt"
	"os"
	"strings"
)

// Entry is one line of a batch file: a Persian phrase and an optional note
type Entry struct {
	Phrase string
	Note   string
	// Line is the 1-based line number the entry was read from
	Line int
}

// ReadBatchFile reads phrases from a file and returns Entry slice
// Supports formats:
// - Phrase only: "سلام دوست"
// - With a note: "سلام = hello" (the note is carried into exports)
// Blank lines, lines starting with '#' and lines without a phrase are skipped.
func ReadBatchFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return ParseBatch(string(content)), nil
}

// ParseBatch parses batch file content
func ParseBatch(content string) []Entry {
	var entries []Entry

	for i, line := range splitLines(content) {
		line = trimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry := Entry{Phrase: line, Line: i + 1}
		if strings.Contains(line, "=") {
			parts := strings.SplitN(line, "=", 2)
			entry.Phrase = strings.TrimSpace(parts[0])
			entry.Note = strings.TrimSpace(parts[1])
		}

		// Ignore lines with an empty phrase part
		if entry.Phrase == "" {
			continue
		}
		entries = append(entries, entry)
	}

	return entries
}

// splitLines splits a string by newlines
func splitLines(s string) []string {
	var lines []string
	current := ""
	for _, r := range s {
		if r == '\n' {
			lines = append(lines, current)
			current = ""
		} else if r != '\r' {
			current += string(r)
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// trimSpace trims whitespace from string
func trimSpace(s string) string {
	start := 0
	end := len(s)

	// Trim from start
	for start < end && isSpace(rune(s[start])) {
		start++
	}

	// Trim from end
	for end > start && isSpace(rune(s[end-1])) {
		end--
	}

	return s[start:end]
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
