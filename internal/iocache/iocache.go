// Package iocache is for caching I/O calls and tracking refresh runs.
package iocache

import (
	"sync"

	"github.com/codescout/codescout/internal/contract"
)

// StoreManagerImpl manages the cache and runs store instances.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointers during initialization
	cache        contract.CacheStore
	runs         contract.RunsStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetCacheStore returns the day-bounded cache CacheStore.
func (mgr *StoreManagerImpl) GetCacheStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.cache
}

// GetRunsStore returns the refresh-run RunsStore.
func (mgr *StoreManagerImpl) GetRunsStore() contract.RunsStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.runs
}
