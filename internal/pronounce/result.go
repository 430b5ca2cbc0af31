package pronounce

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Error categories. The strings match the JSON output of earlier
// versions of this tool, so downstream consumers keep working.
const (
	ErrParseFailure = "Failed to parse JSON from LLM output"
	ErrIncomplete   = "Incomplete JSON from LLM output"
	ErrTimeout      = "Request timeout"
	ErrConnection   = "Connection error"
	ErrUnexpected   = "Unexpected error"
)

// Result is the outcome of fetching one word. It marshals either as a
// success object (word, pronunciation, pronunciation_telugu) or as an
// error object (error plus context fields); omitempty keeps the two
// shapes disjoint on the wire.
type Result struct {
	Word                string `json:"word,omitempty"`
	Pronunciation       string `json:"pronunciation,omitempty"`
	PronunciationTelugu string `json:"pronunciation_telugu,omitempty"`

	Err       string `json:"error,omitempty"`
	Details   string `json:"details,omitempty"`
	RawOutput string `json:"raw_output,omitempty"`
}

// Failed reports whether the result carries an error instead of a
// pronunciation.
func (r Result) Failed() bool {
	return r.Err != ""
}

// ResultSet is an ordered sequence of results, one per input word.
type ResultSet []Result

// Counts returns the total number of results and how many of them
// succeeded and failed.
func (rs ResultSet) Counts() (total, succeeded, failed int) {
	total = len(rs)
	for _, r := range rs {
		if r.Failed() {
			failed++
		} else {
			succeeded++
		}
	}
	return total, succeeded, failed
}

// MarshalPretty renders the result set as an indented JSON array with
// non-ASCII characters (Telugu script in particular) emitted literally.
func (rs ResultSet) MarshalPretty() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rs); err != nil {
		return nil, fmt.Errorf("failed to encode result set: %w", err)
	}
	return buf.Bytes(), nil
}

func parseFailure(word, rawOutput string) Result {
	return Result{Err: ErrParseFailure, RawOutput: rawOutput, Word: word}
}

func incomplete(word, rawOutput string) Result {
	return Result{Err: ErrIncomplete, RawOutput: rawOutput, Word: word}
}

func statusFailure(word string, status int, body string) Result {
	return Result{
		Err:     fmt.Sprintf("API request failed with status %d", status),
		Details: body,
		Word:    word,
	}
}

func timeoutFailure(word string) Result {
	return Result{Err: ErrTimeout, Word: word}
}

func connectionFailure(word, details string) Result {
	return Result{Err: ErrConnection, Details: details, Word: word}
}

func unexpectedFailure(word, details string) Result {
	return Result{Err: ErrUnexpected, Details: details, Word: word}
}
