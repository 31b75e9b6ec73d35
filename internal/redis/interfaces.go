package redis

import (
	"context"
	"time"

	"courier/internal/domain"
)

// DatasetStoreInterface defines the interface for dataset snapshot caching.
type DatasetStoreInterface interface {
	Get(ctx context.Context) ([]domain.DeliveryRecord, error)
	Set(ctx context.Context, records []domain.DeliveryRecord) error
	Invalidate(ctx context.Context) error
}

// LockStoreInterface defines the interface for distributed locking.
type LockStoreInterface interface {
	AcquireRefreshLock(ctx context.Context, ttl time.Duration) (bool, error)
	ReleaseRefreshLock(ctx context.Context) error
}

// SessionStoreInterface defines the interface for operator sessions.
type SessionStoreInterface interface {
	Create(ctx context.Context, token string, session *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// Ensure concrete types implement interfaces.
var (
	_ DatasetStoreInterface = (*DatasetStore)(nil)
	_ LockStoreInterface    = (*LockStore)(nil)
	_ SessionStoreInterface = (*SessionStore)(nil)
)
