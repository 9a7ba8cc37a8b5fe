package ai

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

func TestMockTextGenerator_EmitsImageCues(t *testing.T) {
	gen := NewMockTextGenerator(zaptest.NewLogger(t), 0)

	text, err := gen.Generate(context.Background(), "volcano")
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}

	if !strings.Contains(text, "volcano") {
		t.Error("Expected topic in generated text")
	}
	if count := strings.Count(text, "image - ["); count != 3 {
		t.Errorf("Expected 3 image cues, got %d", count)
	}
	if !strings.Contains(text, "image - [A wide shot of a volcano at sunset]") {
		t.Errorf("Expected topic-derived cue, got %q", text)
	}
}

func TestMockTextGenerator_CancelledContext(t *testing.T) {
	gen := NewMockTextGenerator(zaptest.NewLogger(t), time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := gen.Generate(ctx, "volcano"); err == nil {
		t.Error("Expected error from cancelled context")
	}
}

func TestMockImageSource_DeterministicURLs(t *testing.T) {
	source := NewMockImageSource(zaptest.NewLogger(t), 0)

	urls, err := source.FindImages(context.Background(), "A Coral Reef", 2)
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}

	if len(urls) != 2 {
		t.Fatalf("Expected 2 URLs, got %d", len(urls))
	}
	if urls[0] != "https://picsum.photos/seed/a-coral-reef-1/800/600" {
		t.Errorf("Unexpected first URL: %s", urls[0])
	}
	if urls[1] != "https://picsum.photos/seed/a-coral-reef-2/800/600" {
		t.Errorf("Unexpected second URL: %s", urls[1])
	}

	again, err := source.FindImages(context.Background(), "A Coral Reef", 2)
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}
	if again[0] != urls[0] {
		t.Error("Expected repeated queries to yield the same URLs")
	}
}

func TestMockImageValidator_Accepts(t *testing.T) {
	validator := NewMockImageValidator(zaptest.NewLogger(t), 0)

	accepted, url, err := validator.Validate(context.Background(), "https://example.com/x.jpg", "context", "a nice view")
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}
	if !accepted {
		t.Error("Expected acceptance")
	}
	if url != "https://example.com/x.jpg" {
		t.Errorf("Expected original URL back, got %s", url)
	}
}

func TestMockImageValidator_RejectSentinel(t *testing.T) {
	validator := NewMockImageValidator(zaptest.NewLogger(t), 0)

	accepted, url, err := validator.Validate(context.Background(), "https://example.com/x.jpg", "context", "a drawing to fail_validation")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if accepted {
		t.Error("Expected rejection for sentinel query")
	}
	if url != "" {
		t.Errorf("Expected empty URL on rejection, got %s", url)
	}
}
