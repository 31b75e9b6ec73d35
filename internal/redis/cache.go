package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"courier/internal/domain"
)

// DatasetStore caches the normalized delivery dataset in Redis.
//
// The sheet is refetched once the cached snapshot ages past the TTL;
// until then every dashboard interaction is served from the snapshot.
type DatasetStore struct {
	client *redis.Client
}

// NewDatasetStore creates a new DatasetStore.
func NewDatasetStore(client *redis.Client) *DatasetStore {
	return &DatasetStore{client: client}
}

// DatasetTTL is the staleness window of the cached sheet snapshot.
const DatasetTTL = 5 * time.Minute

const datasetKey = "cache:dataset"

// Get retrieves the cached dataset snapshot. Returns (nil, nil) on a cache
// miss so callers fall through to a fresh fetch.
func (s *DatasetStore) Get(ctx context.Context) ([]domain.DeliveryRecord, error) {
	data, err := s.client.Get(ctx, datasetKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var records []domain.DeliveryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Set stores a dataset snapshot with the staleness TTL.
func (s *DatasetStore) Set(ctx context.Context, records []domain.DeliveryRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, datasetKey, data, DatasetTTL).Err()
}

// Invalidate drops the cached snapshot so the next read refetches.
func (s *DatasetStore) Invalidate(ctx context.Context) error {
	return s.client.Del(ctx, datasetKey).Err()
}
