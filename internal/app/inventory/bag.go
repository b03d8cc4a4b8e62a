package inventory

import (
	"sync"

	"homestead/internal/domain/item"
)

// Bag counts items by type. It is safe for concurrent use.
type Bag struct {
	mu     sync.Mutex
	counts map[item.Type]int
}

func NewBag() *Bag {
	return &Bag{counts: map[item.Type]int{}}
}

func (b *Bag) Add(it item.Item) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.counts[it.Type()]++
}

func (b *Bag) Count(t item.Type) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts[t]
}

// Snapshot returns a copy of the counts keyed by type.
func (b *Bag) Snapshot() map[item.Type]int {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[item.Type]int, len(b.counts))
	for k, v := range b.counts {
		out[k] = v
	}
	return out
}
