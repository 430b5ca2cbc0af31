package processor

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/vtelikepalli/uccharana/internal/batch"
	"codeberg.org/vtelikepalli/uccharana/internal/cli"
	"codeberg.org/vtelikepalli/uccharana/internal/gui"
	"codeberg.org/vtelikepalli/uccharana/internal/logging"
	"codeberg.org/vtelikepalli/uccharana/internal/pronounce"
)

// Processor handles the main word processing logic
type Processor struct {
	flags   *cli.Flags
	fetcher *pronounce.Fetcher
	log     *logging.Logger
}

// NewProcessor creates a new word processor
func NewProcessor(flags *cli.Flags, log *logging.Logger) *Processor {
	fetcher := pronounce.NewFetcher(pronounce.Config{
		APIKey:    cli.GetAPIKey(),
		Endpoint:  flags.Endpoint,
		Model:     flags.Model,
		MaxTokens: flags.MaxTokens,
		Timeout:   time.Duration(flags.TimeoutSeconds) * time.Second,
		Logger:    log.Logger,
	})

	return &Processor{
		flags:   flags,
		fetcher: fetcher,
		log:     log,
	}
}

// ProcessBatch processes the given words sequentially and writes the
// result set to the configured output file. With no words given it
// falls back to the batch file flag, then to the built-in sample list.
func (p *Processor) ProcessBatch(words []string) error {
	if len(words) == 0 && p.flags.BatchFile != "" {
		fileWords, err := batch.ReadWordFile(p.flags.BatchFile)
		if err != nil {
			return err
		}
		words = fileWords
	}
	if len(words) == 0 {
		words = batch.DefaultWords()
	}

	p.log.Info("starting batch processing", "words", len(words))
	start := time.Now()

	runner := batch.NewRunner(p.fetcher)
	runner.SetProgress(func(index, total int, word string) {
		fmt.Printf("Processing %d/%d: %s\n", index, total, word)
	})

	results := runner.Run(context.Background(), words)

	if err := batch.WriteResultSet(p.flags.OutputPath, results); err != nil {
		return err
	}

	total, succeeded, failed := results.Counts()
	p.log.Info("batch processing completed",
		"duration", time.Since(start).Round(time.Millisecond).String(),
		"total", total, "succeeded", succeeded, "failed", failed)

	fmt.Printf("\nTotal words: %d\n", total)
	fmt.Printf("Successful: %d\n", succeeded)
	if failed > 0 {
		fmt.Printf("Failed: %d\n", failed)
	}
	fmt.Printf("\nOutput saved to %s\n", p.flags.OutputPath)
	return nil
}

// RunGUIMode launches the interactive form.
func (p *Processor) RunGUIMode() error {
	app := gui.New(&gui.Config{
		Fetcher: p.fetcher,
		Log:     p.log,
	})
	app.Run()
	return nil
}
