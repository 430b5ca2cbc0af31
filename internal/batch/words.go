// Package batch runs the non-interactive variant: a list of English
// words processed sequentially through the pronunciation fetcher, with
// the result set written as a JSON file.
package batch

import (
	"fmt"
	"os"
	"strings"
)

// DefaultWords is the word list processed when no input is provided.
func DefaultWords() []string {
	return []string{"toilet", "computer", "water"}
}

// SplitWords splits a comma-separated word list, trims whitespace and
// drops empty pieces. The interactive form uses it to validate input.
func SplitWords(input string) []string {
	var words []string
	for _, piece := range strings.Split(input, ",") {
		if piece = strings.TrimSpace(piece); piece != "" {
			words = append(words, piece)
		}
	}
	return words
}

// ReadWordFile reads words from a file, one per line; commas within a
// line are accepted as well. Blank lines are skipped.
func ReadWordFile(filename string) ([]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read word file: %w", err)
	}

	var words []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		words = append(words, SplitWords(line)...)
	}
	return words, nil
}
