package redisad

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"review_portal/internal/adapters/observability"
	"review_portal/internal/domain"
)

const keyPrefix = "session:"

// SessionStore keeps per-visitor page state. Every Save refreshes the TTL.
type SessionStore struct {
	c   *redis.Client
	ttl time.Duration
}

func New(addr, pass string, db int, ttl time.Duration) *SessionStore {
	return NewWithClient(redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}), ttl)
}

func NewWithClient(c *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{c: c, ttl: ttl}
}

func (s *SessionStore) Ping(ctx context.Context) error { return s.c.Ping(ctx).Err() }

func (s *SessionStore) Close() error { return s.c.Close() }

func (s *SessionStore) Load(ctx context.Context, id string) (domain.Session, bool, error) {
	v, err := s.c.Get(ctx, keyPrefix+id).Bytes()
	if err == redis.Nil {
		observability.ObserveSession("redis", "miss")
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, err
	}
	var sess domain.Session
	if err := json.Unmarshal(v, &sess); err != nil {
		return domain.Session{}, false, fmt.Errorf("decode session %s: %w", id, err)
	}
	observability.ObserveSession("redis", "hit")
	return sess, true, nil
}

func (s *SessionStore) Save(ctx context.Context, id string, sess domain.Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", id, err)
	}
	observability.ObserveSession("redis", "save")
	return s.c.Set(ctx, keyPrefix+id, b, s.ttl).Err()
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	observability.ObserveSession("redis", "del")
	return s.c.Del(ctx, keyPrefix+id).Err()
}
