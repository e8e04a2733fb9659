package cache

import (
	"testing"
	"time"

	"grid-scenarios/internal/analysis"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCache(t *testing.T) {
	report := analysis.PerformanceReport(30, 40)

	t.Run("should store and return a report by id", func(t *testing.T) {
		c := New(time.Minute)
		e := c.Put(report)
		_, err := uuid.Parse(e.ID)
		require.NoError(t, err)
		assert.Equal(t, e.CreatedAt.Add(time.Minute), e.ExpiresAt)

		got, ok := c.Get(e.ID)
		require.True(t, ok)
		assert.Equal(t, report, got.Report)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("should miss unknown ids", func(t *testing.T) {
		c := New(time.Minute)
		_, ok := c.Get("missing")
		assert.False(t, ok)

		var nilCache *ReportCache
		_, ok = nilCache.Get("missing")
		assert.False(t, ok)
	})

	t.Run("should expire and prune entries", func(t *testing.T) {
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		c := New(time.Minute)
		c.now = func() time.Time { return now }

		old := c.Put(report)
		now = now.Add(2 * time.Minute)

		_, ok := c.Get(old.ID)
		assert.False(t, ok)
		assert.Equal(t, 1, c.Len())

		c.Put(report)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("should fall back to the default ttl", func(t *testing.T) {
		c := New(0)
		e := c.Put(report)
		assert.Equal(t, DefaultTTL, e.ExpiresAt.Sub(e.CreatedAt))
		c.Clear()
		assert.Equal(t, 0, c.Len())
	})
}
