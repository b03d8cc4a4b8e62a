package inmemory

import (
	"testing"

	"homestead/internal/app/ports"
	"homestead/internal/domain/item"
)

var (
	_ ports.PlacementMetrics = (*Recorder)(nil)
	_ ports.ItemMetrics      = (*Recorder)(nil)
)

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordPlaced()
	r.RecordPlaced()
	r.RecordRejected("occupied")
	r.RecordRejected("out_of_bounds")
	r.RecordRejected("occupied")
	r.RecordRemoved()
	r.RecordCreated(item.TypeLog, 3)
	r.RecordCreated(item.TypeRock, 0)

	s := r.Snapshot()
	if s.PlacementAccepted != 2 || s.PlacementRejected != 3 || s.PlacementTotal != 5 {
		t.Fatalf("unexpected placement counters: %+v", s)
	}
	if s.RejectedByReason["occupied"] != 2 || s.RejectedByReason["out_of_bounds"] != 1 {
		t.Fatalf("unexpected reasons: %v", s.RejectedByReason)
	}
	if s.Removed != 1 {
		t.Fatalf("expected 1 removal, got %d", s.Removed)
	}
	if s.ItemsCreated["log"] != 3 {
		t.Fatalf("expected 3 logs, got %v", s.ItemsCreated)
	}
	if _, ok := s.ItemsCreated["rock"]; ok {
		t.Fatalf("zero-count creation should not be recorded")
	}

	s.RejectedByReason["occupied"] = 99
	if r.Snapshot().RejectedByReason["occupied"] != 2 {
		t.Fatalf("snapshot aliased recorder state")
	}
}
