package slot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FeedCache keeps one feed per (court, date) key in redis. There is exactly
// one value per key, so a newly written feed fully replaces any stale one;
// in-flight fetch races are the caller's concern (last request wins).
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFeedCache(client *redis.Client, ttl time.Duration) *FeedCache {
	return &FeedCache{
		client: client,
		ttl:    ttl,
	}
}

func feedKey(courtID int64, date string) string {
	return fmt.Sprintf("slotfeed:%d:%s", courtID, date)
}

// Get returns the cached feed, or nil on a miss.
func (c *FeedCache) Get(ctx context.Context, courtID int64, date string) (*Feed, error) {
	val, err := c.client.Get(ctx, feedKey(courtID, date)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached feed failed: %w", err)
	}

	var f Feed
	if err := json.Unmarshal([]byte(val), &f); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten.
		return nil, nil
	}
	return &f, nil
}

// Set stores the feed under its (court, date) key.
func (c *FeedCache) Set(ctx context.Context, courtID int64, date string, f *Feed) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal feed failed: %w", err)
	}
	return c.client.Set(ctx, feedKey(courtID, date), data, c.ttl).Err()
}

// Delete drops the cached feed for one (court, date) key, used when a
// booking lands on that court and date.
func (c *FeedCache) Delete(ctx context.Context, courtID int64, date string) error {
	return c.client.Del(ctx, feedKey(courtID, date)).Err()
}
