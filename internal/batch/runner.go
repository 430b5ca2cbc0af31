package batch

import (
	"context"
	"fmt"
	"os"

	"codeberg.org/vtelikepalli/uccharana/internal/pronounce"
)

// Runner processes words sequentially through a fetcher. One word's
// failure is stored in place and does not halt the rest.
type Runner struct {
	fetcher  *pronounce.Fetcher
	progress func(index, total int, word string)
}

// NewRunner creates a runner for the given fetcher.
func NewRunner(fetcher *pronounce.Fetcher) *Runner {
	return &Runner{fetcher: fetcher}
}

// SetProgress installs a callback invoked before each word is fetched.
func (r *Runner) SetProgress(fn func(index, total int, word string)) {
	r.progress = fn
}

// Run fetches each word in order and returns the results, one per word.
func (r *Runner) Run(ctx context.Context, words []string) pronounce.ResultSet {
	results := make(pronounce.ResultSet, 0, len(words))
	for i, word := range words {
		if r.progress != nil {
			r.progress(i+1, len(words), word)
		}
		results = append(results, r.fetcher.Fetch(ctx, word))
	}
	return results
}

// WriteResultSet writes the result set as pretty-printed UTF-8 JSON.
func WriteResultSet(path string, results pronounce.ResultSet) error {
	data, err := results.MarshalPretty()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
