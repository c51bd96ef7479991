package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DedupStore provides idempotency claims backed by Redis.
// Key format: stockreq:<user_id>:<medication_id>:<facility_id>
type DedupStore struct {
	client *redis.Client
}

// NewDedupStore creates a DedupStore wrapping the given Redis client.
func NewDedupStore(client *redis.Client) *DedupStore {
	return &DedupStore{client: client}
}

// Claim stores value under key unless the key is already held. When it is,
// the held value is returned with claimed=false.
func (d *DedupStore) Claim(ctx context.Context, key, value string, ttl time.Duration) (bool, string, error) {
	ok, err := d.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, "", fmt.Errorf("dedup claim: %w", err)
	}
	if ok {
		return true, "", nil
	}

	existing, err := d.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		// The key expired between the two calls; treat the request as new.
		return true, "", nil
	}
	if err != nil {
		return false, "", fmt.Errorf("dedup lookup: %w", err)
	}
	return false, existing, nil
}

// Release deletes key so the next Claim succeeds.
func (d *DedupStore) Release(ctx context.Context, key string) error {
	if err := d.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("dedup release: %w", err)
	}
	return nil
}

// NopDedupStore claims every key. It stands in when Redis is not configured.
type NopDedupStore struct{}

func (NopDedupStore) Claim(context.Context, string, string, time.Duration) (bool, string, error) {
	return true, "", nil
}

func (NopDedupStore) Release(context.Context, string) error { return nil }
