// Package sessions implements the session/identity holder: the durable store
// for authenticated principals keyed by session id.
package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stockflow/stockflow-api/internal/application/auth"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/pkg/config"
)

var _ auth.SessionStore = (*RedisStore)(nil)

const keyPrefix = "session:"

// RedisStore session store on Redis. Sessions expire with the token TTL;
// logout deletes them early.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg config.RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

// Close releases the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Set stores the principal under its session id with the given TTL.
func (s *RedisStore) Set(ctx context.Context, p *entity.Principal, ttl time.Duration) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal principal: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+p.SessionID, data, ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Clear removes the session. Clearing an absent session is not an error.
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Current returns the stored principal, or nil when the session is absent,
// expired or holds malformed data. Malformed data is dropped and reads as
// "no session": the caller forces re-login instead of failing.
func (s *RedisStore) Current(ctx context.Context, sessionID string) (*entity.Principal, error) {
	data, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}
	p, ok := DecodePrincipal(data)
	if !ok {
		_ = s.client.Del(ctx, keyPrefix+sessionID)
		return nil, nil
	}
	return p, nil
}

// DecodePrincipal parses stored session data. Returns ok=false for malformed
// or empty payloads.
func DecodePrincipal(data []byte) (*entity.Principal, bool) {
	var p entity.Principal
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, false
	}
	if p.UserID == "" || p.Role == "" {
		return nil, false
	}
	return &p, true
}
