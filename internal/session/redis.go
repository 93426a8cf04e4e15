package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session history in a Redis list per session, so multiple
// backend replicas observe the same conversation. Each turn is one JSON
// element; LTRIM enforces the turn cap and key TTL replaces the in-memory
// sweep. Errors from Redis are returned to the caller, who is expected to
// treat history as best-effort.
type RedisStore struct {
	rdb      *redis.Client
	maxTurns int
	ttl      time.Duration
}

// NewRedisStore constructs a RedisStore over rdb. Non-positive maxTurns or
// ttl fall back to DefaultMaxTurns / DefaultTTL.
func NewRedisStore(rdb *redis.Client, maxTurns int, ttl time.Duration) *RedisStore {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{rdb: rdb, maxTurns: maxTurns, ttl: ttl}
}

func (s *RedisStore) key(id string) string { return "session:turns:" + id }

// History returns the ordered turns for id, oldest first. A missing key
// yields an empty slice.
func (s *RedisStore) History(ctx context.Context, id string) ([]Turn, error) {
	raw, err := s.rdb.LRange(ctx, s.key(id), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("session: history %q: %w", id, err)
	}
	out := make([]Turn, 0, len(raw))
	for _, item := range raw {
		var t Turn
		if err := json.Unmarshal([]byte(item), &t); err != nil {
			// Skip unreadable elements instead of poisoning the session.
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// Append pushes the user/assistant pair, trims to the newest maxTurns
// elements, and refreshes the key TTL, all in one pipeline round trip.
func (s *RedisStore) Append(ctx context.Context, id string, userTurn, assistantTurn Turn) error {
	ub, err := json.Marshal(userTurn)
	if err != nil {
		return err
	}
	ab, err := json.Marshal(assistantTurn)
	if err != nil {
		return err
	}

	key := s.key(id)
	pipe := s.rdb.TxPipeline()
	pipe.RPush(ctx, key, ub, ab)
	pipe.LTrim(ctx, key, int64(-s.maxTurns), -1)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("session: append %q: %w", id, err)
	}
	return nil
}
