package monitor

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lumelab/focuswatch/internal/domain/analysis"
)

// HistoryLimit bounds per-session snapshot retention.
const HistoryLimit = 256

type session struct {
	startedAt time.Time
	counts    analysis.StatusCounts
	snapshots []analysis.Snapshot // oldest first, capped at HistoryLimit
}

// Tracker keeps per-session analysis history in memory only. Sessions
// live until the process exits; nothing is persisted.
type Tracker struct {
	mu       sync.RWMutex
	sessions map[analysis.SessionID]*session
}

func NewTracker() *Tracker {
	return &Tracker{sessions: make(map[analysis.SessionID]*session)}
}

// Start registers a new session and returns its ID.
func (t *Tracker) Start(now time.Time) analysis.SessionID {
	id := analysis.SessionID(uuid.New().String())
	t.mu.Lock()
	t.sessions[id] = &session{startedAt: now}
	t.mu.Unlock()
	return id
}

// Exists reports whether the session is known.
func (t *Tracker) Exists(id analysis.SessionID) bool {
	t.mu.RLock()
	_, ok := t.sessions[id]
	t.mu.RUnlock()
	return ok
}

// Record appends one verdict to the session's history and tallies it
// into the running counts.
func (t *Tracker) Record(id analysis.SessionID, at time.Time, res analysis.Result) (analysis.Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[id]
	if !ok {
		return analysis.Snapshot{}, analysis.ErrSessionNotFound
	}

	snap := analysis.Snapshot{
		ID:         analysis.SnapshotID(uuid.New().String()),
		SessionID:  id,
		CapturedAt: at,
		Result:     res,
	}
	s.snapshots = append(s.snapshots, snap)
	if len(s.snapshots) > HistoryLimit {
		s.snapshots = s.snapshots[len(s.snapshots)-HistoryLimit:]
	}
	s.counts.Add(res.Status)
	return snap, nil
}

// Snapshots returns up to limit snapshots, newest first.
func (t *Tracker) Snapshots(id analysis.SessionID, limit int) ([]analysis.Snapshot, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s, ok := t.sessions[id]
	if !ok {
		return nil, analysis.ErrSessionNotFound
	}

	n := len(s.snapshots)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]analysis.Snapshot, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.snapshots[i])
	}
	return out, nil
}

// Summary returns the running per-status counts for a session.
func (t *Tracker) Summary(id analysis.SessionID) (analysis.Summary, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s, ok := t.sessions[id]
	if !ok {
		return analysis.Summary{}, analysis.ErrSessionNotFound
	}
	return analysis.Summary{
		SessionID: id,
		StartedAt: s.startedAt,
		Counts:    s.counts,
	}, nil
}
