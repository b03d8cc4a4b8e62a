package metrics

import (
	"homestead/internal/app/ports"
	"homestead/internal/domain/item"
)

// Recorder is the full set of counters the use cases report to.
type Recorder interface {
	ports.PlacementMetrics
	ports.ItemMetrics
}

// Fanout forwards every record call to each recorder in order.
type Fanout []Recorder

func (f Fanout) RecordPlaced() {
	for _, r := range f {
		r.RecordPlaced()
	}
}

func (f Fanout) RecordRemoved() {
	for _, r := range f {
		r.RecordRemoved()
	}
}

func (f Fanout) RecordRejected(reason string) {
	for _, r := range f {
		r.RecordRejected(reason)
	}
}

func (f Fanout) RecordCreated(t item.Type, count int) {
	for _, r := range f {
		r.RecordCreated(t, count)
	}
}
