package iocache

import (
	"time"

	"github.com/codescout/codescout/internal/contract"
	"github.com/codescout/codescout/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetCacheStore implements the StoreManager interface.
func (m *MockStoreManager) GetCacheStore() contract.CacheStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.CacheStore)
	return store
}

// GetRunsStore implements the StoreManager interface.
func (m *MockStoreManager) GetRunsStore() contract.RunsStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.RunsStore)
	return store
}

// MockCacheStore is a mock implementation of CacheStore for testing.
type MockCacheStore struct {
	mock.Mock
}

var _ contract.CacheStore = &MockCacheStore{} // Compile-time check

// Get implements the CacheStore interface.
func (m *MockCacheStore) Get(key string) ([]byte, int, int64, error) {
	args := m.Called(key)
	return args.Get(0).([]byte), args.Int(1), args.Get(2).(int64), args.Error(3)
}

// Set implements the CacheStore interface.
func (m *MockCacheStore) Set(key string, data []byte, version int, ts int64) error {
	args := m.Called(key, data, version, ts)
	return args.Error(0)
}

// Delete implements the CacheStore interface.
func (m *MockCacheStore) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

// Close implements the CacheStore interface.
func (m *MockCacheStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// GetStatus implements the CacheStore interface.
func (m *MockCacheStore) GetStatus() (schema.CacheStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.CacheStatus), args.Error(1)
}

// MockRunsStore is a mock implementation of RunsStore for testing.
type MockRunsStore struct {
	mock.Mock
}

var _ contract.RunsStore = &MockRunsStore{} // Compile-time check

// BeginRun implements the RunsStore interface.
func (m *MockRunsStore) BeginRun(kind schema.RefreshKind, startTime time.Time) (int64, error) {
	args := m.Called(kind, startTime)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the RunsStore interface.
func (m *MockRunsStore) EndRun(runID int64, endTime time.Time, entryCount int) error {
	args := m.Called(runID, endTime, entryCount)
	return args.Error(0)
}

// RecordProviderOutcome implements the RunsStore interface.
func (m *MockRunsStore) RecordProviderOutcome(runID int64, platform schema.Platform, outcome schema.ProviderOutcomeRecord) error {
	args := m.Called(runID, platform, outcome)
	return args.Error(0)
}

// GetAllRefreshRuns implements the RunsStore interface.
func (m *MockRunsStore) GetAllRefreshRuns() ([]schema.RefreshRunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.RefreshRunRecord)
	return runs, args.Error(1)
}

// GetAllProviderOutcomes implements the RunsStore interface.
func (m *MockRunsStore) GetAllProviderOutcomes() ([]schema.ProviderOutcomeRecord, error) {
	args := m.Called()
	outcomes, _ := args.Get(0).([]schema.ProviderOutcomeRecord)
	return outcomes, args.Error(1)
}

// Close implements the RunsStore interface.
func (m *MockRunsStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// GetStatus implements the RunsStore interface.
func (m *MockRunsStore) GetStatus() (schema.RunsStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.RunsStatus), args.Error(1)
}
