package validation

import (
	"strings"
	"unicode/utf8"
)

const DefaultMaxTopicLen = 500

// ValidateTopic rejects topics that are empty after trimming or longer than
// maxLen runes. A maxLen of zero falls back to DefaultMaxTopicLen.
func ValidateTopic(topic string, maxLen int) error {
	if maxLen <= 0 {
		maxLen = DefaultMaxTopicLen
	}

	if strings.TrimSpace(topic) == "" {
		return ErrEmptyTopic
	}

	if utf8.RuneCountInString(topic) > maxLen {
		return ErrTopicTooLong
	}

	return nil
}
