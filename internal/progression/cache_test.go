package progression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MindQuest_Go/internal/domain"
)

func TestStateCache_KeepsNewestVersion(t *testing.T) {
	c := newStateCache(10, time.Minute)

	newer := domain.NewProgressionState("user-1", testNow)
	newer.Version = 3
	newer.TotalXP = 300
	c.Set(newer)

	older := newer.Clone()
	older.Version = 2
	older.TotalXP = 100
	c.Set(older)

	got, ok := c.Get("user-1")
	require.True(t, ok)
	assert.Equal(t, int64(3), got.Version)
	assert.Equal(t, int64(300), got.TotalXP)

	newest := newer.Clone()
	newest.Version = 4
	c.Set(newest)
	got, _ = c.Get("user-1")
	assert.Equal(t, int64(4), got.Version)
}

func TestStateCache_SchemaMismatchDropsEntry(t *testing.T) {
	c := newStateCache(10, time.Minute)
	c.lru.Add("user-1", &cachedStateEntry{Version: "old", State: domain.NewProgressionState("user-1", testNow)})

	_, ok := c.Get("user-1")
	assert.False(t, ok)
	assert.Zero(t, c.Len())

	c.Set(domain.NewProgressionState("user-1", testNow))
	c.Invalidate("user-1")
	assert.Zero(t, c.Len())
}
