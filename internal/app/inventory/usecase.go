package inventory

import (
	"context"
	"errors"
	"fmt"

	"homestead/internal/app/ports"
	"homestead/internal/domain/item"
)

var ErrInvalidRequest = errors.New("invalid inventory request")

const maxCreatePerRequest = 64

type UseCase struct {
	Bag     *Bag
	Metrics ports.ItemMetrics
}

// Create builds Count items of the requested type through the item factory
// and stores them in the bag.
func (u UseCase) Create(_ context.Context, req Request) (Response, error) {
	if u.Bag == nil {
		return Response{}, ErrInvalidRequest
	}
	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 0 || count > maxCreatePerRequest {
		return Response{}, fmt.Errorf("%w: count %d", ErrInvalidRequest, req.Count)
	}
	t, err := item.ParseType(req.Type)
	if err != nil {
		return Response{}, err
	}

	types := make([]item.Type, 0, count)
	for i := 0; i < count; i++ {
		it, err := item.Create(t)
		if err != nil {
			return Response{}, err
		}
		u.Bag.Add(it)
		types = append(types, it.Type())
	}
	if u.Metrics != nil {
		u.Metrics.RecordCreated(t, count)
	}
	return Response{Type: t, Items: types, Bag: u.Bag.Snapshot()}, nil
}

func (u UseCase) Contents(_ context.Context) (map[item.Type]int, error) {
	if u.Bag == nil {
		return nil, ErrInvalidRequest
	}
	return u.Bag.Snapshot(), nil
}
