package state

import (
	"context"
	"strings"
	"sync"
)

// MemorySearchHistory keeps recent searches in process memory. It backs tests
// and single-process runs without Redis.
type MemorySearchHistory struct {
	mu      sync.Mutex
	queries []string
	size    int
}

func NewMemorySearchHistory(size int) *MemorySearchHistory {
	if size <= 0 {
		size = 10
	}
	return &MemorySearchHistory{size: size}
}

func (h *MemorySearchHistory) Record(_ context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	queries := make([]string, 0, h.size)
	queries = append(queries, query)
	for _, q := range h.queries {
		if q != query && len(queries) < h.size {
			queries = append(queries, q)
		}
	}
	h.queries = queries
	return nil
}

func (h *MemorySearchHistory) Recent(context.Context) ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.queries...), nil
}
