package tests

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"courier/internal/service"
)

// ──────────────────────────────────────────────
// 2. OPERATOR SESSIONS
// ──────────────────────────────────────────────

func TestLogin_ValidCredentials_OpensSession(t *testing.T) {
	t.Parallel()

	sessionStore := NewMockSessionStore()
	authService := service.NewAuthService(sessionStore, "admin", "s3cret")

	token, err := authService.Login(context.Background(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}
	if sessionStore.CountSessions() != 1 {
		t.Errorf("expected 1 session, got %d", sessionStore.CountSessions())
	}

	session, err := authService.Validate(context.Background(), token)
	if err != nil {
		t.Fatalf("expected the token to validate, got: %v", err)
	}
	if session.Username != "admin" {
		t.Errorf("expected session for admin, got %q", session.Username)
	}
}

func TestLogin_BadCredentials_Fails(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "wrong"},
		{name: "wrong username", username: "root", password: "s3cret"},
		{name: "both empty", username: "", password: ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sessionStore := NewMockSessionStore()
			authService := service.NewAuthService(sessionStore, "admin", "s3cret")

			_, err := authService.Login(context.Background(), tc.username, tc.password)
			if !errors.Is(err, service.ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got: %v", err)
			}
			if sessionStore.CountSessions() != 0 {
				t.Errorf("expected no session, got %d", sessionStore.CountSessions())
			}
		})
	}
}

func TestValidate_UnknownOrEmptyToken_Fails(t *testing.T) {
	t.Parallel()

	authService := service.NewAuthService(NewMockSessionStore(), "admin", "s3cret")

	if _, err := authService.Validate(context.Background(), "no-such-token"); !errors.Is(err, service.ErrInvalidSession) {
		t.Errorf("expected ErrInvalidSession for unknown token, got: %v", err)
	}
	if _, err := authService.Validate(context.Background(), ""); !errors.Is(err, service.ErrInvalidSession) {
		t.Errorf("expected ErrInvalidSession for empty token, got: %v", err)
	}
}

func TestLogout_TearsDownSession(t *testing.T) {
	t.Parallel()

	sessionStore := NewMockSessionStore()
	authService := service.NewAuthService(sessionStore, "admin", "s3cret")

	token, err := authService.Login(context.Background(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("expected login to succeed, got: %v", err)
	}

	if err := authService.Logout(context.Background(), token); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if sessionStore.CountSessions() != 0 {
		t.Errorf("expected the session to be removed, got %d", sessionStore.CountSessions())
	}
	if _, err := authService.Validate(context.Background(), token); !errors.Is(err, service.ErrInvalidSession) {
		t.Errorf("expected the token to stop validating, got: %v", err)
	}
}

func TestLogout_EmptyToken_NoOp(t *testing.T) {
	t.Parallel()

	sessionStore := NewMockSessionStore()
	authService := service.NewAuthService(sessionStore, "admin", "s3cret")

	if err := authService.Logout(context.Background(), ""); err != nil {
		t.Errorf("expected no error for empty token, got: %v", err)
	}
	if atomic.LoadInt32(&sessionStore.DeleteCallCount) != 0 {
		t.Errorf("expected no delete call, got %d", sessionStore.DeleteCallCount)
	}
}
