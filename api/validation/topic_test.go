package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateTopic(t *testing.T) {
	tests := []struct {
		name    string
		topic   string
		maxLen  int
		wantErr error
	}{
		{"valid", "oceans", 500, nil},
		{"empty", "", 500, ErrEmptyTopic},
		{"whitespace only", "   \t\n", 500, ErrEmptyTopic},
		{"too long", strings.Repeat("a", 501), 500, ErrTopicTooLong},
		{"at limit", strings.Repeat("a", 500), 500, nil},
		{"zero max falls back to default", strings.Repeat("a", 400), 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTopic(tt.topic, tt.maxLen)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTopic(%q) = %v, want %v", tt.topic, err, tt.wantErr)
			}
		})
	}
}
