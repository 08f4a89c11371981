package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func connectOrSkip(t *testing.T) *ReportCache {
	t.Helper()
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		t.Skip("REDIS_URL not set")
	}
	rc, err := InitRedis(addr, time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { CloseRedis(rc) })
	return rc
}

func TestReportCacheRoundTrip(t *testing.T) {
	rc := connectOrSkip(t)
	ctx := context.Background()
	require.NoError(t, rc.Invalidate(ctx))

	key, err := rc.Key(ctx, "reviews", map[string]string{"game_id": "7"})
	require.NoError(t, err)
	var got []row
	hit, err := rc.Load(ctx, key, &got)
	require.NoError(t, err)
	assert.False(t, hit)

	rows := []row{{ID: 2, Name: "b"}, {ID: 1, Name: "a"}}
	require.NoError(t, rc.Store(ctx, key, rows))

	hit, err = rc.Load(ctx, key, &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, rows, got)
}

func TestReportCacheInvalidate(t *testing.T) {
	rc := connectOrSkip(t)
	ctx := context.Background()

	filter := map[string]string{"user_id": "3"}
	before, err := rc.Key(ctx, "activity", filter)
	require.NoError(t, err)
	require.NoError(t, rc.Invalidate(ctx))
	// rows computed before the invalidation land under the old generation
	require.NoError(t, rc.Store(ctx, before, []row{{ID: 1}}))

	after, err := rc.Key(ctx, "activity", filter)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)

	var got []row
	hit, err := rc.Load(ctx, after, &got)
	require.NoError(t, err)
	assert.False(t, hit, "rows stored before Invalidate must not be served")
}
