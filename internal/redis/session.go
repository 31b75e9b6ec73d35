package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore holds operator sessions in Redis. Sessions replace the
// ambient logged-in flag of the old dashboard: each token is explicit
// state with its own TTL and teardown.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// SessionTTL is how long an operator session stays valid without a new login.
const SessionTTL = 12 * time.Hour

const sessionPrefix = "session:"

// Session is the state attached to one operator login.
type Session struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Create stores a session under the given token.
func (s *SessionStore) Create(ctx context.Context, token string, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionPrefix+token, data, SessionTTL).Err()
}

// Get retrieves the session for a token. Returns (nil, nil) when the token
// is unknown or expired.
func (s *SessionStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := s.client.Get(ctx, sessionPrefix+token).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Unknown or expired token
		}
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Delete removes a session, logging the operator out.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionPrefix+token).Err()
}
