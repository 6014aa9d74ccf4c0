package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/buildrun/unihub-client/domain"
)

const defaultConnectTimeout = 5 * time.Second

// Connect initialises a Redis client and validates connectivity with a ping.
func Connect(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// RedisStore keeps the session in Redis under two keys, for deployments where
// the client must keep its session across hosts (shared test rigs, CI). No TTL
// is applied: the token carries its own expiry and a stale one is rejected by
// the backend on first use.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "unihub"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) sessionKey() string { return s.prefix + ":session" }
func (s *RedisStore) tokenKey() string   { return s.prefix + ":token" }

func (s *RedisStore) Save(ctx context.Context, user *domain.User, token string) error {
	blob, err := json.Marshal(persistedSession{User: *user, AccessToken: token})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.sessionKey(), blob, 0)
	pipe.Set(ctx, s.tokenKey(), token, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context) (*domain.User, string, error) {
	blob, err := s.client.Get(ctx, s.sessionKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("read session: %w", err)
	}

	var ps persistedSession
	if err := json.Unmarshal(blob, &ps); err != nil {
		return nil, "", fmt.Errorf("decode session: %w", err)
	}

	if ps.AccessToken != "" {
		if err := s.client.Set(ctx, s.tokenKey(), ps.AccessToken, 0).Err(); err != nil {
			return nil, "", fmt.Errorf("restore token: %w", err)
		}
	}

	user := ps.User
	return &user, ps.AccessToken, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.tokenKey(), s.sessionKey()).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
