package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"notebookGenerator/worker/models"
)

const (
	statusKeyPrefix = "task:status:"
	statusTTL       = 10 * time.Minute
)

// StatusEntry mirrors the cached task view the API service reads when
// polling. UserID rides along so ownership can be checked on cache hits.
type StatusEntry struct {
	UserID       string            `json:"user_id"`
	Status       models.TaskStatus `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
}

type StatusCache struct {
	client *redis.Client
}

func NewStatusCache(client *redis.Client) *StatusCache {
	return &StatusCache{client: client}
}

func (c *StatusCache) Set(ctx context.Context, taskID string, entry StatusEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statusKeyPrefix+taskID, data, statusTTL).Err()
}
