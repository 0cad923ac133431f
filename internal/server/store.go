package server

import (
	"sync"
	"time"

	"github.com/aleister1102/rtfcompare/internal/comparer"
)

// resultEntry pairs a batch result with its storage time for TTL pruning
type resultEntry struct {
	batch    *comparer.BatchResult
	storedAt time.Time
}

// ResultStore keeps comparison results in memory for the lifetime of a
// user session. Nothing is persisted; stale entries are pruned on access.
type ResultStore struct {
	mu      sync.RWMutex
	entries map[string]resultEntry
	ttl     time.Duration
}

// NewResultStore creates a result store with the given entry TTL
func NewResultStore(ttl time.Duration) *ResultStore {
	return &ResultStore{
		entries: make(map[string]resultEntry),
		ttl:     ttl,
	}
}

// Put stores the batch result for a session, replacing any previous one
func (rs *ResultStore) Put(sessionID string, batch *comparer.BatchResult) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.entries[sessionID] = resultEntry{batch: batch, storedAt: time.Now()}
}

// Get returns the stored batch result for a session, if any
func (rs *ResultStore) Get(sessionID string) (*comparer.BatchResult, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	entry, ok := rs.entries[sessionID]
	if !ok || time.Since(entry.storedAt) > rs.ttl {
		return nil, false
	}
	return entry.batch, true
}

// Prune removes entries older than the TTL
func (rs *ResultStore) Prune() {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	cutoff := time.Now().Add(-rs.ttl)
	for sessionID, entry := range rs.entries {
		if entry.storedAt.Before(cutoff) {
			delete(rs.entries, sessionID)
		}
	}
}
