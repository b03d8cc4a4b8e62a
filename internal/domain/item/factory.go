package item

import "fmt"

// FromType builds the concrete item for t. Every Type has a branch here; a
// missing one is a programming error and panics.
func FromType(t Type) Item {
	switch t {
	case TypeLog:
		return Log{}
	case TypeRock:
		return Rock{}
	default:
		panic(fmt.Sprintf("item: no constructor for %s", t))
	}
}

// Create is FromType for untrusted input.
func Create(t Type) (Item, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return FromType(t), nil
}
