package composer

import (
	"strings"
	"testing"

	"notebookGenerator/worker/models"
)

func TestExtractQueries_Order(t *testing.T) {
	text := "Intro. image - [first cue]\n\nMiddle. image - [second cue]\n\nEnd. image - [third cue]"

	queries := ExtractQueries(text)

	if len(queries) != 3 {
		t.Fatalf("Expected 3 queries, got %d", len(queries))
	}

	expected := []string{"first cue", "second cue", "third cue"}
	for i, want := range expected {
		if queries[i] != want {
			t.Errorf("Query %d: expected %q, got %q", i, want, queries[i])
		}
	}
}

func TestExtractQueries_NoMarkers(t *testing.T) {
	queries := ExtractQueries("Plain text without any image cues.")

	if len(queries) != 0 {
		t.Errorf("Expected no queries, got %d", len(queries))
	}
}

func TestExtractQueries_Duplicates(t *testing.T) {
	text := "A image - [same cue] B image - [same cue] C"

	queries := ExtractQueries(text)

	if len(queries) != 2 {
		t.Fatalf("Expected 2 queries, got %d", len(queries))
	}
	if queries[0] != "same cue" || queries[1] != "same cue" {
		t.Errorf("Expected duplicated queries to be kept, got %v", queries)
	}
}

func TestExtractQueries_EmptyDescription(t *testing.T) {
	queries := ExtractQueries("Text image - [] more text")

	if len(queries) != 1 {
		t.Fatalf("Expected 1 query, got %d", len(queries))
	}
	if queries[0] != "" {
		t.Errorf("Expected empty query, got %q", queries[0])
	}
}

func TestAssemble_ReplacesValidated(t *testing.T) {
	text := "Look: image - [a coral reef] done."
	requests := []models.ImageRequest{
		{
			Query:        "a coral reef",
			Status:       models.ImageStatusValidated,
			SourceURL:    "https://example.com/reef.jpg",
			ValidatedURL: "https://example.com/reef.jpg",
		},
	}

	result := Assemble(text, requests)

	expected := "Look: ![a coral reef](https://example.com/reef.jpg) done."
	if result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}

func TestAssemble_LeavesFailedVerbatim(t *testing.T) {
	text := "Look: image - [a coral reef] done."
	requests := []models.ImageRequest{
		{
			Query:        "a coral reef",
			Status:       models.ImageStatusFailed,
			ErrorMessage: "no image found",
		},
	}

	result := Assemble(text, requests)

	if result != text {
		t.Errorf("Expected text unchanged, got %q", result)
	}
}

func TestAssemble_FirstOccurrenceOnly(t *testing.T) {
	text := "A image - [same cue] B image - [same cue] C"
	requests := []models.ImageRequest{
		{
			Query:        "same cue",
			Status:       models.ImageStatusValidated,
			ValidatedURL: "https://example.com/1.jpg",
		},
	}

	result := Assemble(text, requests)

	if !strings.Contains(result, "![same cue](https://example.com/1.jpg)") {
		t.Errorf("Expected first marker replaced, got %q", result)
	}
	if !strings.Contains(result, "image - [same cue]") {
		t.Errorf("Expected second marker left verbatim, got %q", result)
	}
	if strings.Count(result, "![same cue]") != 1 {
		t.Errorf("Expected exactly one embed, got %q", result)
	}
}

func TestAssemble_MixedResults(t *testing.T) {
	text := "X image - [good one] Y image - [bad one] Z"
	requests := []models.ImageRequest{
		{Query: "good one", Status: models.ImageStatusValidated, ValidatedURL: "https://example.com/g.jpg"},
		{Query: "bad one", Status: models.ImageStatusFailed, ErrorMessage: "validation rejected"},
	}

	result := Assemble(text, requests)

	if !strings.Contains(result, "![good one](https://example.com/g.jpg)") {
		t.Errorf("Expected validated marker replaced, got %q", result)
	}
	if !strings.Contains(result, "image - [bad one]") {
		t.Errorf("Expected failed marker left verbatim, got %q", result)
	}
}

func TestMarker_RoundTrip(t *testing.T) {
	queries := ExtractQueries("before " + Marker("round trip") + " after")

	if len(queries) != 1 || queries[0] != "round trip" {
		t.Errorf("Expected marker to round-trip through extraction, got %v", queries)
	}
}
