package ai

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// MockTextGenerator stands in for the LLM client. It emits a fixed essay
// shape with three image cues derived from the topic.
type MockTextGenerator struct {
	logger  *zap.Logger
	latency time.Duration
}

func NewMockTextGenerator(logger *zap.Logger, latency time.Duration) *MockTextGenerator {
	return &MockTextGenerator{logger: logger, latency: latency}
}

func (g *MockTextGenerator) Generate(ctx context.Context, topic string) (string, error) {
	g.logger.Info("Generating text", zap.String("topic", topic))

	if err := simulate(ctx, g.latency); err != nil {
		return "", err
	}

	text := fmt.Sprintf(
		"The majestic %[1]s stands as a testament to nature's grandeur. image - [A wide shot of a %[1]s at sunset]\n\n"+
			"Exploring the intricate details of the %[1]s reveals fascinating patterns. image - [Close-up of %[1]s's texture]\n\n"+
			"Many species rely on the %[1]s for survival. image - [Wildlife interacting with %[1]s]\n\n"+
			"In conclusion, the %[1]s is truly remarkable.",
		topic,
	)

	return text, nil
}
