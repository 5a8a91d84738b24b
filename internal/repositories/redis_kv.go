package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/logger"
)

// RedisKVRepository stores string values in Redis under a common key prefix.
type RedisKVRepository struct {
	client *redis.Client
	prefix string
	exp    time.Duration // expiration of stored values, zero keeps them forever
}

// NewRedisKVRepository creates a new repository instance with optional TTL.
func NewRedisKVRepository(client *redis.Client, prefix string, expiration time.Duration) *RedisKVRepository {
	return &RedisKVRepository{
		client: client,
		prefix: prefix,
		exp:    expiration,
	}
}

func (r *RedisKVRepository) key(k string) string {
	return r.prefix + k
}

// Get returns the value stored under key.
func (r *RedisKVRepository) Get(ctx context.Context, key string) (string, error) {
	k := r.key(key)

	val, err := r.client.Get(ctx, k).Result()
	if err != nil {
		logger.Log.Debugw("redis get",
			"key", k,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyNotFound
		}
		return "", err
	}

	logger.Log.Debugw("redis get",
		"key", k,
		"size", len(val),
	)
	return val, nil
}

// Set stores value under key with the repository expiration.
func (r *RedisKVRepository) Set(ctx context.Context, key, value string) error {
	k := r.key(key)
	err := r.client.Set(ctx, k, value, r.exp).Err()

	logger.Log.Debugw("redis set",
		"key", k,
		"ttl", r.exp,
		"error", err,
	)
	return err
}

// Delete removes key. Deleting a missing key is not an error.
func (r *RedisKVRepository) Delete(ctx context.Context, key string) error {
	k := r.key(key)
	err := r.client.Del(ctx, k).Err()

	logger.Log.Debugw("redis delete",
		"key", k,
		"error", err,
	)
	return err
}

// Exists reports whether key holds a value.
func (r *RedisKVRepository) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(key)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
