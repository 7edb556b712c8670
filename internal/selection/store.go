package selection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store keeps one selection set per (user, box) in redis. Sessions expire on
// their own after the TTL, which covers the "left the flow" path without a
// cleanup job.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(userID string, boxID int64) string {
	return fmt.Sprintf("selection:%s:%d", userID, boxID)
}

// Get loads the user's selection for one box. A missing or corrupt session
// comes back as an empty set.
func (s *Store) Get(ctx context.Context, userID string, boxID int64) (*Set, error) {
	val, err := s.client.Get(ctx, sessionKey(userID, boxID)).Result()
	if errors.Is(err, redis.Nil) {
		return NewSet(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get selection session failed: %w", err)
	}

	set := NewSet()
	if err := json.Unmarshal([]byte(val), set); err != nil {
		return NewSet(), nil
	}
	return set, nil
}

// Save writes the selection back and refreshes its TTL.
func (s *Store) Save(ctx context.Context, userID string, boxID int64, set *Set) error {
	data, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("marshal selection session failed: %w", err)
	}
	return s.client.Set(ctx, sessionKey(userID, boxID), data, s.ttl).Err()
}

// Clear drops the session, used after a successful submission and by the
// explicit clear endpoint.
func (s *Store) Clear(ctx context.Context, userID string, boxID int64) error {
	return s.client.Del(ctx, sessionKey(userID, boxID)).Err()
}
