package flow

import (
	"context"
	"sync"
	"time"
)

// DedupWindow is how long an identical draft from the same user is rejected
// as a repeat. Fixed by channel policy ("не чаще 1 раза в 24 часа").
const DedupWindow = 24 * time.Hour

// DedupGuard remembers the last accepted submission per user and answers
// whether a new one is a repeat inside the window. Only the most recent
// record per user is kept — there is no history.
type DedupGuard interface {
	// IsDuplicate reports whether fingerprint matches the user's last
	// accepted submission and that submission is younger than DedupWindow.
	IsDuplicate(ctx context.Context, userID int64, fingerprint string) (bool, error)

	// Record overwrites the user's dedup record with fingerprint at now.
	Record(ctx context.Context, userID int64, fingerprint string) error
}

type dedupRecord struct {
	fingerprint string
	at          time.Time
}

// MemoryDedupGuard is the default in-process guard. Records are never
// explicitly deleted on the hot path; the janitor calls Sweep periodically
// to drop expired ones.
type MemoryDedupGuard struct {
	mu      sync.Mutex
	records map[int64]dedupRecord

	// now is the clock, overridable in tests.
	now func() time.Time
}

// NewMemoryDedupGuard returns an empty in-memory guard.
func NewMemoryDedupGuard() *MemoryDedupGuard {
	return &MemoryDedupGuard{
		records: make(map[int64]dedupRecord),
		now:     time.Now,
	}
}

// IsDuplicate implements DedupGuard. It never returns an error.
func (g *MemoryDedupGuard) IsDuplicate(_ context.Context, userID int64, fingerprint string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	rec, ok := g.records[userID]
	if !ok || rec.fingerprint != fingerprint {
		return false, nil
	}
	return g.now().Sub(rec.at) < DedupWindow, nil
}

// Record implements DedupGuard. It never returns an error.
func (g *MemoryDedupGuard) Record(_ context.Context, userID int64, fingerprint string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.records[userID] = dedupRecord{fingerprint: fingerprint, at: g.now()}
	return nil
}

// Sweep removes records older than DedupWindow and returns how many were
// dropped. Expired records are already inert — this only reclaims memory.
func (g *MemoryDedupGuard) Sweep() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	cutoff := g.now().Add(-DedupWindow)
	removed := 0
	for userID, rec := range g.records {
		if rec.at.Before(cutoff) {
			delete(g.records, userID)
			removed++
		}
	}
	return removed
}
