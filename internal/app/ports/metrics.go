package ports

import "homestead/internal/domain/item"

type PlacementMetrics interface {
	RecordPlaced()
	RecordRemoved()
	RecordRejected(reason string)
}

type ItemMetrics interface {
	RecordCreated(t item.Type, count int)
}
