package flow

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisDedupGuard stores the dedup record as a redis string with a
// DedupWindow TTL, so the 24h rule survives process restarts. Expiry is
// redis's job — no sweeping needed.
type RedisDedupGuard struct {
	rdb *redis.Client
}

// NewRedisDedupGuard returns a guard backed by rdb.
func NewRedisDedupGuard(rdb *redis.Client) *RedisDedupGuard {
	return &RedisDedupGuard{rdb: rdb}
}

func dedupKey(userID int64) string {
	return fmt.Sprintf("vacancy:dedup:%d", userID)
}

// IsDuplicate implements DedupGuard.
func (g *RedisDedupGuard) IsDuplicate(ctx context.Context, userID int64, fingerprint string) (bool, error) {
	stored, err := g.rdb.Get(ctx, dedupKey(userID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("dedup get: %w", err)
	}
	return stored == fingerprint, nil
}

// Record implements DedupGuard.
func (g *RedisDedupGuard) Record(ctx context.Context, userID int64, fingerprint string) error {
	if err := g.rdb.Set(ctx, dedupKey(userID), fingerprint, DedupWindow).Err(); err != nil {
		return fmt.Errorf("dedup set: %w", err)
	}
	return nil
}
