package state

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ SearchHistory = (*MemorySearchHistory)(nil)

func TestMemorySearchHistory(t *testing.T) {
	ctx := context.Background()
	h := NewMemorySearchHistory(3)

	for _, q := range []string{"necron", "  ", "ork", "necron", "custodes", "lord"} {
		require.NoError(t, h.Record(ctx, q))
	}

	recent, err := h.Recent(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"lord", "custodes", "necron"}, recent)
}

func TestMemorySearchHistory_Concurrent(t *testing.T) {
	ctx := context.Background()
	h := NewMemorySearchHistory(5)

	done := make(chan struct{})
	for i := 0; i < 20; i++ {
		go func(i int) {
			_ = h.Record(ctx, fmt.Sprintf("q%d", i%7))
			done <- struct{}{}
		}(i)
	}
	for i := 0; i < 20; i++ {
		<-done
	}

	recent, err := h.Recent(ctx)
	require.NoError(t, err)
	assert.Len(t, recent, 5)
}

