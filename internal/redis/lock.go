package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockStore handles distributed locking in Redis.
type LockStore struct {
	client *redis.Client
}

// NewLockStore creates a new LockStore.
func NewLockStore(client *redis.Client) *LockStore {
	return &LockStore{client: client}
}

const refreshLockKey = "lock:dataset:refresh"

// AcquireRefreshLock attempts to acquire the dataset refresh lock so only
// one instance refetches the sheet when the snapshot expires.
// Returns true if the lock was acquired, false if already held.
func (s *LockStore) AcquireRefreshLock(ctx context.Context, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, refreshLockKey, "1", ttl).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

// ReleaseRefreshLock releases the dataset refresh lock.
func (s *LockStore) ReleaseRefreshLock(ctx context.Context) error {
	return s.client.Del(ctx, refreshLockKey).Err()
}
