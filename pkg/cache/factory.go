package cache

import "fmt"

// New builds the Store selected by cfg.Backend. redisOpts is only used for the
// redis backend.
func New(cfg Config, redisOpts RedisOptions) (Store, error) {
	cfg.setDefaults()

	switch cfg.Backend {
	case BackendMemory:
		return NewMemory(cfg), nil
	case BackendRedis:
		return NewRedis(NewRedisClient(redisOpts), cfg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, cfg.Backend)
	}
}
