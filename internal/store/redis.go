package store

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisStore backs the adapter with a Redis instance for setups that
// already run one locally.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedis(addr, password string, db int) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStore{rdb: rdb}
}

// NewRedisFromClient wraps an existing client (used by tests).
func NewRedisFromClient(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Ping() error {
	return s.rdb.Ping(context.Background()).Err()
}

func (s *RedisStore) Get(key string) (string, bool, error) {
	val, err := s.rdb.Get(context.Background(), key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisStore) Set(key, value string) error {
	return s.rdb.Set(context.Background(), key, value, 0).Err()
}

func (s *RedisStore) Remove(key string) error {
	return s.rdb.Del(context.Background(), key).Err()
}
