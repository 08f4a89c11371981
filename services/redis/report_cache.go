package redis

import (
	redis_utils "Arcadia/services/redis/utils"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ReportCache stores report rows as JSON under a generation token. Catalog
// writes call Invalidate, which swaps the token so stale rows are never read.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{client: client, ttl: ttl}
}

// Load fills dst with the rows cached under key. The boolean is false on a miss.
func (rc *ReportCache) Load(ctx context.Context, key string, dst any) (bool, error) {
	data, err := rc.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return true, nil
}

func (rc *ReportCache) Store(ctx context.Context, key string, rows any) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encoding rows for %s: %w", key, err)
	}
	return rc.client.Set(ctx, key, data, rc.ttl).Err()
}

// Invalidate starts a new generation. Old entries expire on their own TTL.
func (rc *ReportCache) Invalidate(ctx context.Context) error {
	return rc.client.Set(ctx, redis_utils.GenerationKey, uuid.NewString(), 0).Err()
}

func (rc *ReportCache) generation(ctx context.Context) (string, error) {
	gen, err := rc.client.Get(ctx, redis_utils.GenerationKey).Result()
	if err == nil {
		return gen, nil
	}
	if !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("reading cache generation: %w", err)
	}
	// first use: only one concurrent initialiser wins
	if err := rc.client.SetNX(ctx, redis_utils.GenerationKey, uuid.NewString(), 0).Err(); err != nil {
		return "", fmt.Errorf("initialising cache generation: %w", err)
	}
	return rc.client.Get(ctx, redis_utils.GenerationKey).Result()
}

// Key resolves the current generation once. Load and Store for one report
// share the key, so an Invalidate in between leaves the stored rows orphaned.
func (rc *ReportCache) Key(ctx context.Context, report string, filter any) (string, error) {
	gen, err := rc.generation(ctx)
	if err != nil {
		return "", err
	}
	raw, err := json.Marshal(filter)
	if err != nil {
		return "", fmt.Errorf("encoding filter: %w", err)
	}
	return redis_utils.FormatReportKey(gen, report, raw), nil
}
