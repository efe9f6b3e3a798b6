package state

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// SearchHistory remembers recent search queries. It never stores API data.
type SearchHistory interface {
	Record(ctx context.Context, query string) error
	Recent(ctx context.Context) ([]string, error)
}

type redisSearchHistory struct {
	redisClient *redis.Client
	key         string
	size        int64
}

func NewRedisSearchHistory(redisClient *redis.Client, size int) SearchHistory {
	if size <= 0 {
		size = 10
	}
	return &redisSearchHistory{
		redisClient: redisClient,
		key:         "grimoire:history:searches",
		size:        int64(size),
	}
}

// Record moves query to the front of the list, dropping older duplicates and
// anything past the configured size.
func (h *redisSearchHistory) Record(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	_, err := h.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, h.key, 0, query)
		pipe.LPush(ctx, h.key, query)
		pipe.LTrim(ctx, h.key, 0, h.size-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record search %q: %w", query, err)
	}
	return nil
}

func (h *redisSearchHistory) Recent(ctx context.Context) ([]string, error) {
	queries, err := h.redisClient.LRange(ctx, h.key, 0, h.size-1).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read search history: %w", err)
	}
	return queries, nil
}

