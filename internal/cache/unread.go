// Package cache shields the notification unread counter from polling
// traffic: the web client asks every 30 seconds, so the count is kept in
// redis briefly and recomputed only after it expires or changes.
package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const unreadTTL = 60 * time.Second

type UnreadCache struct {
	rdb *redis.Client
}

// NewUnread returns a nil-safe cache; with an empty URL every lookup is a
// miss and writes are no-ops, so redis stays optional.
func NewUnread(redisURL string) (*UnreadCache, error) {
	if redisURL == "" {
		return &UnreadCache{}, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	return &UnreadCache{rdb: redis.NewClient(opts)}, nil
}

func unreadKey(userID string) string {
	return "notif:unread:" + userID
}

func (c *UnreadCache) Get(ctx context.Context, userID string) (int64, bool) {
	if c == nil || c.rdb == nil {
		return 0, false
	}

	count, err := c.rdb.Get(ctx, unreadKey(userID)).Int64()
	if err != nil {
		return 0, false
	}
	return count, true
}

func (c *UnreadCache) Set(ctx context.Context, userID string, count int64) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Set(ctx, unreadKey(userID), count, unreadTTL)
}

func (c *UnreadCache) Invalidate(ctx context.Context, userID string) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, unreadKey(userID))
}
