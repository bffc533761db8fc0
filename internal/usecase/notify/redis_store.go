package notify

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	approvalDomain "sacco-backend/internal/domain/approval"
)

// RedisSessionStore keeps tracker state in redis so a session's polls can
// land on any short-lived handler. Expiry bounds abandoned sessions.
type RedisSessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSessionStore(rdb *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb, ttl: ttl}
}

func sessionKey(sessionID string) string { return "notify:sess:" + sessionID }

func (s *RedisSessionStore) Load(ctx context.Context, sessionID string) (map[string]approvalDomain.Status, bool, error) {
	v, err := s.rdb.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var statuses map[string]approvalDomain.Status
	if err := json.Unmarshal(v, &statuses); err != nil {
		// Corrupt state: treat the session as new rather than failing the poll.
		return nil, false, nil
	}
	return statuses, true, nil
}

func (s *RedisSessionStore) Store(ctx context.Context, sessionID string, statuses map[string]approvalDomain.Status) error {
	if statuses == nil {
		statuses = map[string]approvalDomain.Status{}
	}
	payload, err := json.Marshal(statuses)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKey(sessionID), payload, s.ttl).Err()
}
