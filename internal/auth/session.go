package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"galleria/internal/model"
)

const (
	// SessionCookie is the name of the cookie carrying the session token.
	SessionCookie = "gallery_session"
	// SessionTTL is how long a session lives without re-login.
	SessionTTL = 30 * 24 * time.Hour

	sessionKeyPrefix = "session:"
)

// ErrSessionNotFound is returned when no session exists for a token.
var ErrSessionNotFound = errors.New("session not found")

// Session is the server-held record proving a user is authenticated,
// referenced by the opaque client-held token.
type Session struct {
	Token     string     `json:"token"`
	UserID    uuid.UUID  `json:"userId"`
	Username  string     `json:"username"`
	Role      model.Role `json:"role"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

// SessionStore defines the interface for session persistence.
type SessionStore interface {
	Create(ctx context.Context, userID uuid.UUID, username string, role model.Role) (*Session, error)
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// RedisSessionStore keeps sessions in Redis with a TTL matching the
// session lifetime, so expired sessions vanish without a sweeper.
type RedisSessionStore struct {
	client *redis.Client
}

// Ensure RedisSessionStore implements SessionStore
var _ SessionStore = (*RedisSessionStore)(nil)

// NewRedisSessionStore creates a session store on an existing Redis connection.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

// Create issues a fresh opaque token and persists the session under it.
func (s *RedisSessionStore) Create(ctx context.Context, userID uuid.UUID, username string, role model.Role) (*Session, error) {
	sess := &Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		Username:  username,
		Role:      role,
		ExpiresAt: time.Now().Add(SessionTTL),
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}

	key := sessionKeyPrefix + sess.Token
	if err := s.client.Set(ctx, key, payload, SessionTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

// Get resolves a token to its session, or ErrSessionNotFound.
func (s *RedisSessionStore) Get(ctx context.Context, token string) (*Session, error) {
	key := sessionKeyPrefix + token
	payload, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	// Redis TTL already enforces expiry; the stored timestamp is a
	// second line of defense against clock-skewed writes.
	if time.Now().After(sess.ExpiresAt) {
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

// Delete destroys a session. Deleting an unknown token is a no-op.
func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	key := sessionKeyPrefix + token
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
