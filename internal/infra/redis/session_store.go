package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kursadbilgin/notification-info/internal/auth"
	goredis "github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

var _ auth.SessionStore = (*SessionStore)(nil)

// SessionStore maps session ids to customer ids under session:<id>.
type SessionStore struct {
	client *goredis.Client
}

func NewSessionStore(client *goredis.Client) (*SessionStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &SessionStore{client: client}, nil
}

func (s *SessionStore) CustomerID(ctx context.Context, sessionID string) (string, error) {
	customerID, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", auth.ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get session: %w", err)
	}
	return customerID, nil
}

// Save binds sessionID to customerID. A ttl <= 0 keeps the session until it
// is deleted.
func (s *SessionStore) Save(ctx context.Context, sessionID, customerID string, ttl time.Duration) error {
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("session id is required")
	}
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, sessionKey(sessionID), customerID, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + strings.TrimSpace(sessionID)
}
