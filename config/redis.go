package config

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

var Redis *CacheService

// ErrKeyNotFound is re-exported so callers can tell a cache miss apart from a
// transport failure without importing the redis client themselves.
var ErrKeyNotFound = redis.Nil

type CacheService struct {
	Ctx        context.Context
	Connection *redis.Client
}

func NewCacheService() error {
	c := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
		Username: os.Getenv("REDIS_USERNAME"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	ctx := context.Background()

	if err := c.Ping(ctx).Err(); err != nil {
		return err
	}

	Redis = &CacheService{
		Ctx:        ctx,
		Connection: c,
	}

	return nil
}

// GetKey unmarshals the JSON value stored at key into src.
// Returns ErrKeyNotFound when the key does not exist.
func (c *CacheService) GetKey(key string, src interface{}) error {
	val, err := c.Connection.Get(c.Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), src)
}

// SetKey stores value at key as JSON.
func (c *CacheService) SetKey(key string, value interface{}, expiration time.Duration) error {
	cacheEntry, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Connection.Set(c.Ctx, key, cacheEntry, expiration).Err()
}
