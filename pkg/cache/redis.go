package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions holds connection settings for the shared cache.
type RedisOptions struct {
	Address  string
	Password string
	DB       int
}

// RedisStore keeps entries in Redis so every replica shares one cache.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisClient dials nothing; go-redis connects lazily on first command.
func NewRedisClient(opts RedisOptions) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         opts.Address,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
}

// NewRedis wraps client as a Store.
func NewRedis(client *redis.Client, cfg Config) (*RedisStore, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	cfg.setDefaults()
	return &RedisStore{client: client, ttl: cfg.TTL, prefix: cfg.KeyPrefix}, nil
}

func (s *RedisStore) key(ns Namespace, key string) string {
	return s.prefix + ":" + compositeKey(ns, key)
}

func (s *RedisStore) Get(ctx context.Context, ns Namespace, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.key(ns, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache: redis get: %w", err)
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, ns Namespace, key, value string) error {
	if err := s.client.Set(ctx, s.key(ns, key), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("cache: redis set: %w", err)
	}
	return nil
}

// Ping checks the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache: redis ping: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
