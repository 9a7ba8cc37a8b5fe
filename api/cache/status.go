package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"notebookGenerator/api/database"
	"notebookGenerator/api/models"
)

const (
	statusKeyPrefix = "task:status:"
	statusTTL       = 10 * time.Minute
)

// StatusEntry is the cached view of a task consulted by the polling endpoint
// before the store is hit. UserID is carried so the ownership check works on
// cache hits too.
type StatusEntry struct {
	UserID       string            `json:"user_id"`
	Status       models.TaskStatus `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
}

type StatusCache struct {
	cache *database.Cache
}

func NewStatusCache(cache *database.Cache) *StatusCache {
	return &StatusCache{cache: cache}
}

func (sc *StatusCache) Get(ctx context.Context, taskID string) (*StatusEntry, error) {
	key := fmt.Sprintf("%s%s", statusKeyPrefix, taskID)

	data, err := sc.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var entry StatusEntry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		return nil, err
	}

	return &entry, nil
}

func (sc *StatusCache) Set(ctx context.Context, taskID string, entry StatusEntry) error {
	key := fmt.Sprintf("%s%s", statusKeyPrefix, taskID)

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return sc.cache.Set(ctx, key, data, statusTTL)
}

func (sc *StatusCache) Delete(ctx context.Context, taskID string) error {
	key := fmt.Sprintf("%s%s", statusKeyPrefix, taskID)
	return sc.cache.Del(ctx, key)
}
