package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTLs for cached values. The catalogs are read-only at runtime so a longer
// window is safe.
const (
	CatalogTTL = 10 * time.Minute
)

// Cache keys. The catalogs are shared across all users.
func FoodItemsKey() string                { return "catalog:food:items" }
func FoodCategoriesKey() string           { return "catalog:food:categories" }
func FoodItemKey(id uint) string          { return fmt.Sprintf("catalog:food:item:%d", id) }
func WorkoutTypesKey() string             { return "catalog:workout:types" }
func WorkoutTemplatesKey(k string) string { return "catalog:workout:templates:" + k }

// GetJSON attempts to get the key from Redis and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}
	s, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and sets the key with TTL.
func SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, b, ttl).Err()
}

// Aside tries Redis first; on miss it calls fetch (which must write into
// dest), then stores the result with ttl. Cache failures degrade to a plain
// fetch, never to a request failure.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	found, err := GetJSON(ctx, key, dest)
	if err == nil && found {
		return nil
	}

	if err := fetch(); err != nil {
		return err
	}

	// Store into cache (best-effort)
	_ = SetJSON(ctx, key, dest, ttl)
	return nil
}
