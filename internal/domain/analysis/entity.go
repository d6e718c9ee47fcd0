package analysis

import "time"

// SessionID identifies a monitoring session
type SessionID string

// SnapshotID identifier type
type SnapshotID string

// FocusStatus enum
type FocusStatus string

const (
	StatusFocused    FocusStatus = "FOCUSED"
	StatusDistracted FocusStatus = "DISTRACTED"
	StatusAbsent     FocusStatus = "ABSENT"
	StatusError      FocusStatus = "ERROR"
)

// Result is the verdict for one frame. Built fresh per call and never
// mutated afterwards.
type Result struct {
	Status     FocusStatus `json:"status"`
	Message    string      `json:"message"`
	Confidence float64     `json:"confidence"`
}

// Snapshot records one analyzed frame within a session.
type Snapshot struct {
	ID         SnapshotID `json:"id"`
	SessionID  SessionID  `json:"session_id"`
	CapturedAt time.Time  `json:"captured_at"`
	Result     Result     `json:"result"`
}

// StatusCounts value object
type StatusCounts struct {
	Focused    int `json:"focused"`
	Distracted int `json:"distracted"`
	Absent     int `json:"absent"`
	Errors     int `json:"errors"`
	Total      int `json:"total"`
}

// Add tallies one verdict into the counts.
func (c *StatusCounts) Add(s FocusStatus) {
	switch s {
	case StatusFocused:
		c.Focused++
	case StatusDistracted:
		c.Distracted++
	case StatusAbsent:
		c.Absent++
	case StatusError:
		c.Errors++
	}
	c.Total++
}

// Summary aggregates a session's verdicts.
type Summary struct {
	SessionID SessionID    `json:"session_id"`
	StartedAt time.Time    `json:"started_at"`
	Counts    StatusCounts `json:"counts"`
}
