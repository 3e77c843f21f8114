package flash

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "fyyur:flash:"

// RedisStore keeps each session's messages in a Redis list that expires after TTL.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{Client: client, TTL: ttl}
}

func (s *RedisStore) Add(w http.ResponseWriter, r *http.Request, msg string) error {
	id, _ := session(w, r, true)
	return s.push(r.Context(), id, msg)
}

func (s *RedisStore) Pop(w http.ResponseWriter, r *http.Request) ([]string, error) {
	id, ok := session(w, r, false)
	if !ok {
		return nil, nil
	}
	return s.drain(r.Context(), id)
}

func (s *RedisStore) push(ctx context.Context, id, msg string) error {
	key := keyPrefix + id
	_, err := s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, msg)
		pipe.Expire(ctx, key, s.TTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("flash push: %w", err)
	}
	return nil
}

func (s *RedisStore) drain(ctx context.Context, id string) ([]string, error) {
	key := keyPrefix + id
	var lrange *redis.StringSliceCmd
	_, err := s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		lrange = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("flash pop: %w", err)
	}
	msgs := lrange.Val()
	if len(msgs) == 0 {
		return nil, nil
	}
	return msgs, nil
}
