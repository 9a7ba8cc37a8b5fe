package ai

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

// rejectSentinel marks queries the mock validator always rejects, so the
// rejection path can be exercised end to end.
const rejectSentinel = "fail_validation"

// MockImageValidator stands in for a multimodal model checking an image
// against its textual context. Accepted images keep their original URL.
type MockImageValidator struct {
	logger  *zap.Logger
	latency time.Duration
}

func NewMockImageValidator(logger *zap.Logger, latency time.Duration) *MockImageValidator {
	return &MockImageValidator{logger: logger, latency: latency}
}

func (v *MockImageValidator) Validate(ctx context.Context, imageURL, contextText, query string) (bool, string, error) {
	v.logger.Info("Validating image",
		zap.String("url", imageURL),
		zap.String("query", query),
	)

	if err := simulate(ctx, v.latency); err != nil {
		return false, "", err
	}

	if strings.Contains(strings.ToLower(query), rejectSentinel) {
		return false, "", nil
	}

	return true, imageURL, nil
}
