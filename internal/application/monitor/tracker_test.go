package monitor

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lumelab/focuswatch/internal/domain/analysis"
)

func TestTrackerUnknownSession(t *testing.T) {
	tr := NewTracker()

	if tr.Exists("missing") {
		t.Error("Exists returned true for unknown session")
	}
	if _, err := tr.Record("missing", time.Now(), analysis.Result{}); !errors.Is(err, analysis.ErrSessionNotFound) {
		t.Errorf("Record error = %v, want ErrSessionNotFound", err)
	}
	if _, err := tr.Snapshots("missing", 10); !errors.Is(err, analysis.ErrSessionNotFound) {
		t.Errorf("Snapshots error = %v, want ErrSessionNotFound", err)
	}
	if _, err := tr.Summary("missing"); !errors.Is(err, analysis.ErrSessionNotFound) {
		t.Errorf("Summary error = %v, want ErrSessionNotFound", err)
	}
}

func TestTrackerCountsEveryStatus(t *testing.T) {
	tr := NewTracker()
	started := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	id := tr.Start(started)

	statuses := []analysis.FocusStatus{
		analysis.StatusFocused,
		analysis.StatusFocused,
		analysis.StatusDistracted,
		analysis.StatusAbsent,
		analysis.StatusError,
	}
	for _, s := range statuses {
		if _, err := tr.Record(id, started.Add(time.Second), analysis.Result{Status: s}); err != nil {
			t.Fatalf("Record(%s) failed: %v", s, err)
		}
	}

	summary, err := tr.Summary(id)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	want := analysis.StatusCounts{Focused: 2, Distracted: 1, Absent: 1, Errors: 1, Total: 5}
	if summary.Counts != want {
		t.Errorf("counts = %+v, want %+v", summary.Counts, want)
	}
	if !summary.StartedAt.Equal(started) {
		t.Errorf("started_at = %v, want %v", summary.StartedAt, started)
	}
}

func TestTrackerSnapshotsNewestFirst(t *testing.T) {
	tr := NewTracker()
	id := tr.Start(time.Now())

	for i := 0; i < 5; i++ {
		res := analysis.Result{Status: analysis.StatusFocused, Message: fmt.Sprintf("frame-%d", i)}
		if _, err := tr.Record(id, time.Now(), res); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	snaps, err := tr.Snapshots(id, 3)
	if err != nil {
		t.Fatalf("Snapshots failed: %v", err)
	}
	if len(snaps) != 3 {
		t.Fatalf("got %d snapshots, want 3", len(snaps))
	}
	for i, want := range []string{"frame-4", "frame-3", "frame-2"} {
		if snaps[i].Result.Message != want {
			t.Errorf("snapshot[%d] = %q, want %q", i, snaps[i].Result.Message, want)
		}
	}
}

func TestTrackerHistoryIsBounded(t *testing.T) {
	tr := NewTracker()
	id := tr.Start(time.Now())

	for i := 0; i < HistoryLimit+10; i++ {
		if _, err := tr.Record(id, time.Now(), analysis.Result{Status: analysis.StatusFocused}); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	snaps, err := tr.Snapshots(id, HistoryLimit*2)
	if err != nil {
		t.Fatalf("Snapshots failed: %v", err)
	}
	if len(snaps) != HistoryLimit {
		t.Errorf("retained %d snapshots, want %d", len(snaps), HistoryLimit)
	}

	// Counts keep tallying past the retention window.
	summary, _ := tr.Summary(id)
	if summary.Counts.Total != HistoryLimit+10 {
		t.Errorf("total = %d, want %d", summary.Counts.Total, HistoryLimit+10)
	}
}
