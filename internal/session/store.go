// internal/session/store.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"proposal-assistant/internal/common/database"
	"proposal-assistant/internal/common/logger"
)

const keyPrefix = "session:"

// Store persists sessions in Redis with a sliding TTL.
type Store struct {
	redis  *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

func NewStore(redisClient *database.RedisClient, ttl time.Duration, log logger.Logger) *Store {
	return &Store{
		redis: redisClient,
		ttl:   ttl,
		logger: log.With(map[string]interface{}{
			"component": "session",
		}),
	}
}

// Get loads a session by ID. An unknown or empty ID yields a fresh session.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return NewSession(), nil
	}

	raw, err := s.redis.Get(ctx, keyPrefix+id)
	if errors.Is(err, redis.Nil) {
		s.logger.Info("session not found, starting fresh", map[string]interface{}{
			"sessionId": id,
		})
		session := NewSession()
		session.ID = id
		return session, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}

	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &session, nil
}

// Save persists the session and refreshes its TTL.
func (s *Store) Save(ctx context.Context, session *Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}
	if err := s.redis.Set(ctx, keyPrefix+session.ID, raw, s.ttl); err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

// Delete removes a session.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.redis.Del(ctx, keyPrefix+id)
}
