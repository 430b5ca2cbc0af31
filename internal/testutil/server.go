// Package testutil provides shared test helpers, most importantly a
// mock completion endpoint that answers with canned pronunciations.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// CompletionServer answers completion requests with a canned
// pronunciation derived from the word found in the prompt, and fails
// requests for words listed in failWords with a 500.
func CompletionServer(t *testing.T, failWords map[string]bool) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Prompt string `json:"prompt"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}

		word := WordFromPrompt(req.Prompt)

		if failWords[word] {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, "internal error")
			return
		}

		text := fmt.Sprintf(`{"word":%q,"pronunciation":"P-%s","pronunciation_telugu":"తె-%s"}`, word, word, word)
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]string{{"text": text}},
		})
	}))
}

// WordFromPrompt extracts the input word from a pronunciation prompt.
// The word is the last single-quoted segment.
func WordFromPrompt(prompt string) string {
	end := strings.LastIndex(prompt, "'")
	if end < 0 {
		return ""
	}
	start := strings.LastIndex(prompt[:end], "'")
	if start < 0 {
		return ""
	}
	return prompt[start+1 : end]
}
