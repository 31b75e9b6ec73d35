package tests

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"courier/internal/domain"
	"courier/internal/redis"
	"courier/internal/repository"
	"courier/internal/sheet"
)

// ──────────────────────────────────────────────
// MOCK SHEET SOURCE
// ──────────────────────────────────────────────

// MockSheetSource is a mock implementation of service.SheetSource.
type MockSheetSource struct {
	mu   sync.RWMutex
	rows []sheet.Row

	// Counters for verification
	FetchCallCount int32

	// Error injection
	FetchError error
}

// NewMockSheetSource creates a new mock sheet source.
func NewMockSheetSource() *MockSheetSource {
	return &MockSheetSource{}
}

// SetRows sets the rows the source serves (for test setup).
func (m *MockSheetSource) SetRows(rows []sheet.Row) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = rows
}

func (m *MockSheetSource) Fetch(ctx context.Context) ([]sheet.Row, error) {
	atomic.AddInt32(&m.FetchCallCount, 1)
	if m.FetchError != nil {
		return nil, m.FetchError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]sheet.Row, len(m.rows))
	copy(result, m.rows)
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK DATASET STORE
// ──────────────────────────────────────────────

// MockDatasetStore is a mock implementation of DatasetStore.
type MockDatasetStore struct {
	mu      sync.RWMutex
	records []domain.DeliveryRecord
	cached  bool

	// Counters for verification
	GetCallCount        int32
	SetCallCount        int32
	InvalidateCallCount int32

	// Error injection
	GetError error
	SetError error
}

// NewMockDatasetStore creates a new mock dataset store.
func NewMockDatasetStore() *MockDatasetStore {
	return &MockDatasetStore{}
}

// Prime seeds the cache with a snapshot (for test setup).
func (m *MockDatasetStore) Prime(records []domain.DeliveryRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = records
	m.cached = true
}

func (m *MockDatasetStore) Get(ctx context.Context) ([]domain.DeliveryRecord, error) {
	atomic.AddInt32(&m.GetCallCount, 1)
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.cached {
		return nil, nil // Cache miss
	}
	result := make([]domain.DeliveryRecord, len(m.records))
	copy(result, m.records)
	return result, nil
}

func (m *MockDatasetStore) Set(ctx context.Context, records []domain.DeliveryRecord) error {
	atomic.AddInt32(&m.SetCallCount, 1)
	if m.SetError != nil {
		return m.SetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = records
	m.cached = true
	return nil
}

func (m *MockDatasetStore) Invalidate(ctx context.Context) error {
	atomic.AddInt32(&m.InvalidateCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
	m.cached = false
	return nil
}

// HasSnapshot reports whether a snapshot is cached (for test assertions).
func (m *MockDatasetStore) HasSnapshot() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cached
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is a mock implementation of LockStore.
type MockLockStore struct {
	mu     sync.Mutex
	expiry time.Time

	// Counters for verification
	AcquireCallCount int32
	ReleaseCallCount int32

	// Error injection
	AcquireError error

	// Force lock failure
	ForceAcquireFailure bool
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{}
}

func (m *MockLockStore) AcquireRefreshLock(ctx context.Context, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireCallCount, 1)
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	if m.ForceAcquireFailure {
		return false, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if time.Now().Before(m.expiry) {
		return false, nil // Lock still held.
	}
	m.expiry = time.Now().Add(ttl)
	return true, nil
}

func (m *MockLockStore) ReleaseRefreshLock(ctx context.Context) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expiry = time.Time{}
	return nil
}

// IsLocked checks if the refresh lock is held (for test assertions).
func (m *MockLockStore) IsLocked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return time.Now().Before(m.expiry)
}

// ──────────────────────────────────────────────
// MOCK SESSION STORE
// ──────────────────────────────────────────────

// MockSessionStore is a mock implementation of SessionStore.
type MockSessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*redis.Session

	// Counters for verification
	CreateCallCount int32
	DeleteCallCount int32

	// Error injection
	CreateError error
	GetError    error
}

// NewMockSessionStore creates a new mock session store.
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{
		sessions: make(map[string]*redis.Session),
	}
}

func (m *MockSessionStore) Create(ctx context.Context, token string, session *redis.Session) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = session
	return nil
}

func (m *MockSessionStore) Get(ctx context.Context, token string) (*redis.Session, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[token]
	if !ok {
		return nil, nil // Unknown or expired token
	}
	copy := *session
	return &copy, nil
}

func (m *MockSessionStore) Delete(ctx context.Context, token string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

// CountSessions returns the number of live sessions.
func (m *MockSessionStore) CountSessions() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// ──────────────────────────────────────────────
// MOCK REPORT REPOSITORY
// ──────────────────────────────────────────────

// MockReportRepository is a mock implementation of ReportRepository.
type MockReportRepository struct {
	mu      sync.RWMutex
	reports map[string]*domain.ArchivedReport

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockReportRepository creates a new mock report repository.
func NewMockReportRepository() *MockReportRepository {
	return &MockReportRepository{
		reports: make(map[string]*domain.ArchivedReport),
	}
}

func (m *MockReportRepository) Create(ctx context.Context, report *domain.ArchivedReport) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports[report.ID] = report
	return nil
}

func (m *MockReportRepository) GetByID(ctx context.Context, id string) (*domain.ArchivedReport, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	report, ok := m.reports[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *report
	return &copy, nil
}

func (m *MockReportRepository) GetAll(ctx context.Context) ([]*domain.ArchivedReport, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.ArchivedReport, 0, len(m.reports))
	for _, r := range m.reports {
		copy := *r
		result = append(result, &copy)
	}
	return result, nil
}

// GetReport returns the report by ID (for test assertions).
func (m *MockReportRepository) GetReport(id string) *domain.ArchivedReport {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.reports[id]
}

// CountReports returns the number of archived reports.
func (m *MockReportRepository) CountReports() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.reports)
}

// ──────────────────────────────────────────────
// HELPER ERRORS
// ──────────────────────────────────────────────

var (
	ErrMockDBConstraint = errors.New("mock: unique constraint violation")
	ErrMockTimeout      = errors.New("mock: operation timeout")
)
