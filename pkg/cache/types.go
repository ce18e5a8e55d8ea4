package cache

import (
	"errors"
	"time"
)

// Namespace partitions the cache so different consumers never collide.
type Namespace string

const (
	NamespaceIntent Namespace = "intent"
)

// Backend names accepted in configuration.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

const (
	DefaultSize      = 10000
	DefaultTTL       = 24 * time.Hour
	DefaultKeyPrefix = "voice-intent"
)

var (
	ErrUnknownBackend = errors.New("cache: unknown backend")
	ErrNilClient      = errors.New("cache: redis client is nil")
)

// Config selects and sizes a cache backend.
type Config struct {
	Backend   string
	Size      int
	TTL       time.Duration
	KeyPrefix string
}

func (c *Config) setDefaults() {
	if c.Backend == "" {
		c.Backend = BackendMemory
	}
	if c.Size <= 0 {
		c.Size = DefaultSize
	}
	if c.TTL <= 0 {
		c.TTL = DefaultTTL
	}
	if c.KeyPrefix == "" {
		c.KeyPrefix = DefaultKeyPrefix
	}
}

func compositeKey(ns Namespace, key string) string {
	return string(ns) + ":" + key
}
