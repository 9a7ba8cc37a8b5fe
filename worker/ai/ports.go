package ai

import (
	"context"
	"time"
)

// TextGenerator produces the notebook body for a topic, with image cues
// embedded as "image - [description]" markers.
type TextGenerator interface {
	Generate(ctx context.Context, topic string) (string, error)
}

// ImageSource looks up candidate image URLs for a query. An empty result
// means nothing was found; it is not an error.
type ImageSource interface {
	FindImages(ctx context.Context, query string, count int) ([]string, error)
}

// ImageValidator decides whether a candidate image fits its surrounding
// text and query. The returned URL is non-empty iff the image is accepted.
type ImageValidator interface {
	Validate(ctx context.Context, imageURL, contextText, query string) (bool, string, error)
}

// simulate blocks for the configured mock latency, bailing out early if the
// job context is cancelled.
func simulate(ctx context.Context, latency time.Duration) error {
	if latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
