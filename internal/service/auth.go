package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/google/uuid"

	"courier/internal/redis"
)

// AuthService handles operator login and session validation. The dashboard
// is single-tenant: one operator credential pair comes from configuration
// and sessions live in Redis with a TTL.
type AuthService struct {
	sessionStore redis.SessionStoreInterface
	username     string
	password     string
}

// NewAuthService creates a new AuthService.
func NewAuthService(sessionStore redis.SessionStoreInterface, username, password string) *AuthService {
	return &AuthService{
		sessionStore: sessionStore,
		username:     username,
		password:     password,
	}
}

// Login verifies the credentials and opens a session, returning its token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	token := uuid.New().String()
	session := &redis.Session{
		Username:  username,
		CreatedAt: time.Now(),
	}
	if err := s.sessionStore.Create(ctx, token, session); err != nil {
		return "", err
	}

	return token, nil
}

// Validate resolves a session token to its session.
func (s *AuthService) Validate(ctx context.Context, token string) (*redis.Session, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	session, err := s.sessionStore.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrInvalidSession
	}
	return session, nil
}

// Logout tears down a session. Logging out an unknown token is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessionStore.Delete(ctx, token)
}
