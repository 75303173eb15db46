// Package dataset holds the currently loaded monitoring dataset in memory.
// There is no persistence: callers load a snapshot, readers recompute over
// it on demand, and a reload simply swaps the snapshot.
package dataset

import (
	"sync"
	"time"

	"github.com/evaldeck/evaldeck/internal/monitoring/model"
)

// Snapshot is one immutable view of the loaded data. Readers must not
// mutate the slices they receive.
type Snapshot struct {
	Records    []model.MonitoringRecord
	Cases      []model.SignalsCaseRecord
	KPIConfigs []model.SignalsKPIConfig
	LoadedAt   time.Time
}

// Store swaps whole snapshots under a lock. Reads are cheap; computation
// over a snapshot happens outside the lock.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
}

func NewStore() *Store { return &Store{} }

// Replace swaps in a new snapshot, stamping LoadedAt.
func (s *Store) Replace(snap Snapshot) {
	snap.LoadedAt = time.Now().UTC()
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
