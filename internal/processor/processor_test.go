package processor

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/vtelikepalli/uccharana/internal/cli"
	"codeberg.org/vtelikepalli/uccharana/internal/logging"
	"codeberg.org/vtelikepalli/uccharana/internal/pronounce"
	"codeberg.org/vtelikepalli/uccharana/internal/testutil"
)

func newTestProcessor(t *testing.T, flags *cli.Flags) *Processor {
	t.Helper()

	t.Setenv(cli.APIKeyEnvVar, "test-api-key")

	log, err := logging.New(logging.Options{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	t.Cleanup(func() { log.Close() })

	return NewProcessor(flags, log)
}

func TestProcessBatch_Args(t *testing.T) {
	server := testutil.CompletionServer(t, nil)
	defer server.Close()

	flags := cli.NewFlags()
	flags.Endpoint = server.URL
	flags.OutputPath = filepath.Join(t.TempDir(), "pronunciations.json")

	proc := newTestProcessor(t, flags)

	if err := proc.ProcessBatch([]string{"toilet", "water"}); err != nil {
		t.Fatalf("ProcessBatch failed: %v", err)
	}

	testutil.AssertFileExists(t, flags.OutputPath)

	content, err := os.ReadFile(flags.OutputPath)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	var results pronounce.ResultSet
	if err := json.Unmarshal(content, &results); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Word != "toilet" || results[1].Word != "water" {
		t.Errorf("Result order mismatch: %+v", results)
	}
}

func TestProcessBatch_FallsBackToBatchFile(t *testing.T) {
	server := testutil.CompletionServer(t, nil)
	defer server.Close()

	flags := cli.NewFlags()
	flags.Endpoint = server.URL
	flags.BatchFile = testutil.WriteWordFile(t, "computer", "water")
	flags.OutputPath = filepath.Join(t.TempDir(), "pronunciations.json")

	proc := newTestProcessor(t, flags)

	if err := proc.ProcessBatch(nil); err != nil {
		t.Fatalf("ProcessBatch failed: %v", err)
	}

	content, err := os.ReadFile(flags.OutputPath)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	var results pronounce.ResultSet
	if err := json.Unmarshal(content, &results); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Word != "computer" {
		t.Errorf("Expected first word from batch file, got %q", results[0].Word)
	}
}

func TestProcessBatch_FallsBackToDefaultWords(t *testing.T) {
	server := testutil.CompletionServer(t, nil)
	defer server.Close()

	flags := cli.NewFlags()
	flags.Endpoint = server.URL
	flags.OutputPath = filepath.Join(t.TempDir(), "pronunciations.json")

	proc := newTestProcessor(t, flags)

	if err := proc.ProcessBatch(nil); err != nil {
		t.Fatalf("ProcessBatch failed: %v", err)
	}

	content, err := os.ReadFile(flags.OutputPath)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	var results pronounce.ResultSet
	if err := json.Unmarshal(content, &results); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("Expected 3 results for the sample word list, got %d", len(results))
	}
}

func TestProcessBatch_MissingBatchFile(t *testing.T) {
	flags := cli.NewFlags()
	flags.BatchFile = "/nonexistent/words.txt"

	proc := newTestProcessor(t, flags)

	err := proc.ProcessBatch(nil)
	if err == nil {
		t.Fatal("Expected error for missing batch file")
	}
	if !strings.Contains(err.Error(), "word file") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestProcessBatch_FailuresStillWritten(t *testing.T) {
	server := testutil.CompletionServer(t, map[string]bool{"computer": true})
	defer server.Close()

	flags := cli.NewFlags()
	flags.Endpoint = server.URL
	flags.OutputPath = filepath.Join(t.TempDir(), "pronunciations.json")

	proc := newTestProcessor(t, flags)

	if err := proc.ProcessBatch([]string{"toilet", "computer"}); err != nil {
		t.Fatalf("ProcessBatch failed: %v", err)
	}

	content, err := os.ReadFile(flags.OutputPath)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	var results pronounce.ResultSet
	if err := json.Unmarshal(content, &results); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if !results[1].Failed() {
		t.Error("Expected error result for 'computer'")
	}
	if results[1].Err == "" || !strings.Contains(results[1].Err, "500") {
		t.Errorf("Expected status error, got %q", results[1].Err)
	}
}
