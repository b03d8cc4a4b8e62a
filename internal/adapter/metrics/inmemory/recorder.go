package inmemory

import (
	"sync"

	"homestead/internal/domain/item"
)

type Snapshot struct {
	PlacementTotal    uint64            `json:"placement_total"`
	PlacementAccepted uint64            `json:"placement_accepted"`
	PlacementRejected uint64            `json:"placement_rejected"`
	Removed           uint64            `json:"removed"`
	RejectedByReason  map[string]uint64 `json:"rejected_by_reason"`
	ItemsCreated      map[string]uint64 `json:"items_created"`
}

type Recorder struct {
	mu       sync.Mutex
	accepted uint64
	removed  uint64
	rejected map[string]uint64
	items    map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		rejected: map[string]uint64{},
		items:    map[string]uint64{},
	}
}

func (r *Recorder) RecordPlaced() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accepted++
}

func (r *Recorder) RecordRemoved() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removed++
}

func (r *Recorder) RecordRejected(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected[reason]++
}

func (r *Recorder) RecordCreated(t item.Type, count int) {
	if count <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[t.String()] += uint64(count)
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		PlacementAccepted: r.accepted,
		Removed:           r.removed,
		RejectedByReason:  make(map[string]uint64, len(r.rejected)),
		ItemsCreated:      make(map[string]uint64, len(r.items)),
	}
	for k, v := range r.rejected {
		out.RejectedByReason[k] = v
		out.PlacementRejected += v
	}
	for k, v := range r.items {
		out.ItemsCreated[k] = v
	}
	out.PlacementTotal = out.PlacementAccepted + out.PlacementRejected
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
