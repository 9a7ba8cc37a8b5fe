package validation

import "errors"

var (
	ErrEmptyTopic   = errors.New("topic must not be empty")
	ErrTopicTooLong = errors.New("topic exceeds maximum length")
)
