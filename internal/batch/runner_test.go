package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"codeberg.org/vtelikepalli/uccharana/internal/pronounce"
	"codeberg.org/vtelikepalli/uccharana/internal/testutil"
)

func TestRunner_Run_PreservesOrder(t *testing.T) {
	server := testutil.CompletionServer(t, nil)
	defer server.Close()

	fetcher := pronounce.NewFetcher(pronounce.Config{APIKey: "test-api-key", Endpoint: server.URL})
	words := DefaultWords()

	results := NewRunner(fetcher).Run(context.Background(), words)

	if len(results) != len(words) {
		t.Fatalf("Expected %d results, got %d", len(words), len(results))
	}
	for i, word := range words {
		if results[i].Word != word {
			t.Errorf("Result %d: expected word %q, got %q", i, word, results[i].Word)
		}
	}
}

func TestRunner_Run_ErrorDoesNotHaltBatch(t *testing.T) {
	server := testutil.CompletionServer(t, map[string]bool{"computer": true})
	defer server.Close()

	fetcher := pronounce.NewFetcher(pronounce.Config{APIKey: "test-api-key", Endpoint: server.URL})

	results := NewRunner(fetcher).Run(context.Background(), []string{"toilet", "computer", "water"})

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	if results[0].Failed() {
		t.Errorf("Expected success for 'toilet', got error: %s", results[0].Err)
	}
	if !results[1].Failed() {
		t.Error("Expected error result for 'computer'")
	}
	if !strings.Contains(results[1].Err, "500") {
		t.Errorf("Expected status error for 'computer', got %q", results[1].Err)
	}
	if results[2].Failed() {
		t.Errorf("Expected success for 'water', got error: %s", results[2].Err)
	}
}

func TestRunner_Progress(t *testing.T) {
	server := testutil.CompletionServer(t, nil)
	defer server.Close()

	fetcher := pronounce.NewFetcher(pronounce.Config{APIKey: "test-api-key", Endpoint: server.URL})
	runner := NewRunner(fetcher)

	var calls []string
	runner.SetProgress(func(index, total int, word string) {
		calls = append(calls, fmt.Sprintf("%d/%d %s", index, total, word))
	})

	runner.Run(context.Background(), []string{"toilet", "water"})

	want := []string{"1/2 toilet", "2/2 water"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("Progress calls = %v, want %v", calls, want)
	}
}

func TestWriteResultSet(t *testing.T) {
	server := testutil.CompletionServer(t, map[string]bool{"computer": true})
	defer server.Close()

	fetcher := pronounce.NewFetcher(pronounce.Config{APIKey: "test-api-key", Endpoint: server.URL})
	results := NewRunner(fetcher).Run(context.Background(), []string{"toilet", "computer"})

	outputPath := filepath.Join(t.TempDir(), "pronunciations.json")
	if err := WriteResultSet(outputPath, results); err != nil {
		t.Fatalf("WriteResultSet failed: %v", err)
	}

	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	// Telugu script is written literally, not escaped.
	if !strings.Contains(string(content), "తె-toilet") {
		t.Errorf("Output does not contain literal Telugu text: %s", content)
	}

	var decoded pronounce.ResultSet
	if err := json.Unmarshal(content, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(decoded, results) {
		t.Errorf("Round trip mismatch:\nwritten: %+v\nread:    %+v", results, decoded)
	}
}

func TestWriteResultSet_InvalidPath(t *testing.T) {
	err := WriteResultSet("/nonexistent/dir/out.json", pronounce.ResultSet{})
	if err == nil {
		t.Error("Expected error for invalid output path")
	}
}
