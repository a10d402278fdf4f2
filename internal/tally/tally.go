// Package tally reads input files and counts character occurrences.
package tally

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Histogram maps each character (post-lowercasing) to its occurrence count.
type Histogram map[rune]int

// Total returns the number of characters counted across all input.
func (h Histogram) Total() int {
	total := 0
	for _, count := range h {
		total += count
	}
	return total
}

// Add counts every rune of line into the histogram after lowercasing.
func (h Histogram) Add(line string) {
	for _, r := range strings.ToLower(line) {
		h[r]++
	}
}

// CountFiles tallies character frequencies over the listed files in order.
// Any unreadable file aborts the whole run: a partial tally would silently
// skew the reported percentages.
func CountFiles(paths []string) (Histogram, error) {
	hist := Histogram{}
	for _, path := range paths {
		if err := countFile(hist, path); err != nil {
			return nil, err
		}
	}
	return hist, nil
}

func countFile(hist Histogram, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only input.
			_ = cerr
		}
	}()

	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			hist.Add(normalizeNewline(line))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
	}
}

// normalizeNewline folds a Windows line ending into a single newline so the
// terminator counts as one character regardless of platform.
func normalizeNewline(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2] + "\n"
	}
	return line
}
