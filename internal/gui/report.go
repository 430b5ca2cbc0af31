package gui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"codeberg.org/vtelikepalli/uccharana/internal/pronounce"
)

// ResultJSON renders a single result as indented JSON for display.
func ResultJSON(result pronounce.Result) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Sprintf("{\"error\": %q}", err.Error())
	}
	return strings.TrimRight(buf.String(), "\n")
}

// ResultTitle builds the accordion header for a result.
func ResultTitle(result pronounce.Result) string {
	if result.Failed() {
		return fmt.Sprintf("%s - failed: %s", result.Word, result.Err)
	}
	return fmt.Sprintf("%s - %s", result.Word, result.Pronunciation)
}

// SaveFilename returns the default name for a downloaded result file.
func SaveFilename(t time.Time) string {
	return fmt.Sprintf("pronunciations_%s.json", t.Format("20060102_150405"))
}
