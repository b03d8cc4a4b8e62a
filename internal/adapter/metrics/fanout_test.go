package metrics

import (
	"testing"

	"homestead/internal/adapter/metrics/inmemory"
	"homestead/internal/adapter/metrics/prom"
	"homestead/internal/domain/item"
)

func TestFanoutForwardsToAll(t *testing.T) {
	a, b := inmemory.NewRecorder(), inmemory.NewRecorder()
	f := Fanout{a, b, prom.NewRecorder(nil)}

	f.RecordPlaced()
	f.RecordRejected("occupied")
	f.RecordRemoved()
	f.RecordCreated(item.TypeLog, 2)

	for i, r := range []*inmemory.Recorder{a, b} {
		s := r.Snapshot()
		if s.PlacementAccepted != 1 || s.PlacementRejected != 1 || s.Removed != 1 || s.ItemsCreated["log"] != 2 {
			t.Fatalf("recorder %d missed calls: %+v", i, s)
		}
	}
}
