// Package viewtrack records which requests a session has already opened,
// so detail views count at most once per session per request.
package viewtrack

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Tracker answers "is this the first time this session opens this
// request?". Entries expire with the session, keeping the index bounded
// and shared across API instances.
type Tracker interface {
	MarkViewed(ctx context.Context, sessionID string, requestID uint) (bool, error)
}

type RedisTracker struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisTracker connects to Redis and verifies the connection.
func NewRedisTracker(redisURL string, ttl time.Duration) (*RedisTracker, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisTracker{
		client: client,
		prefix: "viewed:",
		ttl:    ttl,
	}, nil
}

// NewRedisTrackerWithClient wraps an existing client (tests).
func NewRedisTrackerWithClient(client *redis.Client, ttl time.Duration) *RedisTracker {
	return &RedisTracker{
		client: client,
		prefix: "viewed:",
		ttl:    ttl,
	}
}

func (t *RedisTracker) key(sessionID string, requestID uint) string {
	return fmt.Sprintf("%s%s:%d", t.prefix, sessionID, requestID)
}

// MarkViewed returns true exactly once per (session, request): SETNX
// claims the key atomically, so concurrent calls from the same session
// agree on a single first view.
func (t *RedisTracker) MarkViewed(ctx context.Context, sessionID string, requestID uint) (bool, error) {
	first, err := t.client.SetNX(ctx, t.key(sessionID, requestID), 1, t.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("mark viewed: %w", err)
	}
	return first, nil
}

func (t *RedisTracker) Ping(ctx context.Context) error {
	return t.client.Ping(ctx).Err()
}

func (t *RedisTracker) Close() error {
	return t.client.Close()
}
