package session

import (
	"fmt"
	"io"

	"profix/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenStore builds the store named by cfg.Store. A redis store is wrapped in
// a FailoverStore backed by memory; rdb must be non-nil in that case.
func OpenStore(cfg config.SessionConfig, rdb *redis.Client, logger *zerolog.Logger) (Store, io.Closer, error) {
	switch cfg.Store {
	case config.SessionStoreMemory:
		return NewMemoryStore(), nopCloser{}, nil
	case config.SessionStoreSQLite:
		s, err := NewSQLiteStore(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case config.SessionStoreRedis:
		if rdb == nil {
			return nil, nil, fmt.Errorf("session store %q needs a redis client", cfg.Store)
		}
		return NewFailoverStore(NewRedisStore(rdb, cfg.TTL), NewMemoryStore(), logger), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}
