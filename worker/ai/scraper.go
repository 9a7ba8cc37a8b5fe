package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// MockImageSource stands in for an image search client. URLs are derived
// deterministically from the query so repeated runs are reproducible.
type MockImageSource struct {
	logger  *zap.Logger
	latency time.Duration
}

func NewMockImageSource(logger *zap.Logger, latency time.Duration) *MockImageSource {
	return &MockImageSource{logger: logger, latency: latency}
}

func (s *MockImageSource) FindImages(ctx context.Context, query string, count int) ([]string, error) {
	s.logger.Info("Searching images", zap.String("query", query), zap.Int("count", count))

	if err := simulate(ctx, s.latency); err != nil {
		return nil, err
	}

	slug := querySlug(query)
	urls := make([]string, 0, count)
	for i := 0; i < count; i++ {
		urls = append(urls, fmt.Sprintf("https://picsum.photos/seed/%s-%d/800/600", slug, i+1))
	}

	return urls, nil
}

func querySlug(query string) string {
	slug := strings.ToLower(query)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "[", "")
	slug = strings.ReplaceAll(slug, "]", "")
	return slug
}
