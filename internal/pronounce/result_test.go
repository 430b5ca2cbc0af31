package pronounce

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func sampleResultSet() ResultSet {
	return ResultSet{
		{Word: "toilet", Pronunciation: "TOy Luht", PronunciationTelugu: "టాయ్ లహ్ట్"},
		{Err: ErrParseFailure, RawOutput: "not json at all", Word: "computer"},
		{Word: "water", Pronunciation: "WAH tur", PronunciationTelugu: "వా టర్"},
	}
}

func TestResult_Failed(t *testing.T) {
	success := Result{Word: "toilet", Pronunciation: "TOy Luht", PronunciationTelugu: "టాయ్ లహ్ట్"}
	if success.Failed() {
		t.Error("Success result reported as failed")
	}

	failure := Result{Err: ErrTimeout, Word: "toilet"}
	if !failure.Failed() {
		t.Error("Error result not reported as failed")
	}
}

func TestResultSet_Counts(t *testing.T) {
	total, succeeded, failed := sampleResultSet().Counts()

	if total != 3 {
		t.Errorf("Expected total 3, got %d", total)
	}
	if succeeded != 2 {
		t.Errorf("Expected 2 successes, got %d", succeeded)
	}
	if failed != 1 {
		t.Errorf("Expected 1 failure, got %d", failed)
	}
}

func TestResultSet_Counts_Empty(t *testing.T) {
	total, succeeded, failed := ResultSet{}.Counts()
	if total != 0 || succeeded != 0 || failed != 0 {
		t.Errorf("Expected all zero counts, got %d/%d/%d", total, succeeded, failed)
	}
}

func TestResultSet_RoundTrip(t *testing.T) {
	original := sampleResultSet()

	data, err := original.MarshalPretty()
	if err != nil {
		t.Fatalf("MarshalPretty failed: %v", err)
	}

	var decoded ResultSet
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal result set: %v", err)
	}

	if !reflect.DeepEqual(decoded, original) {
		t.Errorf("Round trip mismatch:\noriginal: %+v\ndecoded:  %+v", original, decoded)
	}
}

func TestResultSet_MarshalPretty_LiteralUnicode(t *testing.T) {
	data, err := sampleResultSet().MarshalPretty()
	if err != nil {
		t.Fatalf("MarshalPretty failed: %v", err)
	}

	out := string(data)
	if !strings.Contains(out, "టాయ్ లహ్ట్") {
		t.Error("Telugu script not preserved literally in output")
	}
	if strings.Contains(out, `\u`) {
		t.Errorf("Output contains escaped Unicode: %s", out)
	}
}

func TestResultSet_MarshalPretty_ErrorShape(t *testing.T) {
	rs := ResultSet{{Err: "API request failed with status 500", Details: "internal error", Word: "toilet"}}

	data, err := rs.MarshalPretty()
	if err != nil {
		t.Fatalf("MarshalPretty failed: %v", err)
	}

	var decoded []map[string]string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(decoded))
	}

	obj := decoded[0]
	if obj["error"] != "API request failed with status 500" {
		t.Errorf("Unexpected error field: %q", obj["error"])
	}
	if obj["details"] != "internal error" {
		t.Errorf("Unexpected details field: %q", obj["details"])
	}
	if _, ok := obj["pronunciation"]; ok {
		t.Error("Error object must not carry a pronunciation field")
	}
}

func TestResultSet_MarshalPretty_SuccessShape(t *testing.T) {
	rs := ResultSet{{Word: "toilet", Pronunciation: "TOy Luht", PronunciationTelugu: "టాయ్ లహ్ట్"}}

	data, err := rs.MarshalPretty()
	if err != nil {
		t.Fatalf("MarshalPretty failed: %v", err)
	}

	var decoded []map[string]string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	obj := decoded[0]
	for _, key := range []string{"word", "pronunciation", "pronunciation_telugu"} {
		if obj[key] == "" {
			t.Errorf("Missing key %q in success object", key)
		}
	}
	if _, ok := obj["error"]; ok {
		t.Error("Success object must not carry an error field")
	}
}
