package service

import (
	"context"
	"time"

	"courier/internal/domain"
	"courier/internal/pipeline"
	"courier/internal/redis"
	"courier/internal/sheet"
)

// SheetSource supplies raw rows from the published sheet.
type SheetSource interface {
	Fetch(ctx context.Context) ([]sheet.Row, error)
}

// refreshLockTTL bounds how long a crashed refresher can block others.
const refreshLockTTL = 30 * time.Second

// DatasetService serves the normalized delivery dataset, refreshing it from
// the sheet once the cached snapshot passes its staleness window.
type DatasetService struct {
	source       SheetSource
	datasetStore redis.DatasetStoreInterface
	lockStore    redis.LockStoreInterface
}

// NewDatasetService creates a new DatasetService.
func NewDatasetService(
	source SheetSource,
	datasetStore redis.DatasetStoreInterface,
	lockStore redis.LockStoreInterface,
) *DatasetService {
	return &DatasetService{
		source:       source,
		datasetStore: datasetStore,
		lockStore:    lockStore,
	}
}

// Snapshot returns the current dataset: the cached snapshot when fresh,
// otherwise a fresh fetch-and-normalize from the sheet.
//
// Cache errors fail open to a direct fetch. A fetch failure surfaces as
// sheet.ErrUnavailable so callers stop early instead of summarizing an
// empty dataset as if it were real.
func (s *DatasetService) Snapshot(ctx context.Context) ([]domain.DeliveryRecord, error) {
	if s.datasetStore != nil {
		records, err := s.datasetStore.Get(ctx)
		if err == nil && records != nil {
			return records, nil
		}
	}

	// Keep concurrent dashboard loads from stampeding the sheet endpoint.
	// The lock is best-effort: if Redis is down we fetch anyway.
	locked := false
	if s.lockStore != nil {
		if ok, err := s.lockStore.AcquireRefreshLock(ctx, refreshLockTTL); err == nil && ok {
			locked = true
			defer func() { _ = s.lockStore.ReleaseRefreshLock(ctx) }()
		}
	}
	if !locked && s.datasetStore != nil {
		// Another instance may have refreshed while we waited on the lock
		// attempt; re-check before hitting the sheet.
		if records, err := s.datasetStore.Get(ctx); err == nil && records != nil {
			return records, nil
		}
	}

	rows, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	records := pipeline.Normalize(rows)

	if s.datasetStore != nil {
		_ = s.datasetStore.Set(ctx, records)
	}

	return records, nil
}

// Employees returns the distinct employees in the current dataset for the
// filter dropdown.
func (s *DatasetService) Employees(ctx context.Context) ([]string, error) {
	records, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return pipeline.Employees(records), nil
}

// Refresh drops the cached snapshot and fetches a fresh one.
func (s *DatasetService) Refresh(ctx context.Context) ([]domain.DeliveryRecord, error) {
	if s.datasetStore != nil {
		_ = s.datasetStore.Invalidate(ctx)
	}
	return s.Snapshot(ctx)
}
