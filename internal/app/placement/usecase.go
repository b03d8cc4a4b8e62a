package placement

import (
	"context"
	"errors"

	"homestead/internal/app/frame"
	"homestead/internal/app/ports"
	"homestead/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid placement request")

type UseCase struct {
	Loop    *frame.Loop
	Policy  Policy
	Metrics ports.PlacementMetrics
}

func (u UseCase) Place(ctx context.Context, req Request) (Response, error) {
	if u.Loop == nil {
		return Response{}, ErrInvalidRequest
	}
	s := world.NewStructureAt(req.X, req.Y)

	var out Response
	err := u.Loop.Do(ctx, func(w *world.World) error {
		if u.Policy != nil {
			if err := u.Policy.Allow(w, s.Position()); err != nil {
				return err
			}
		}
		if err := w.Place(s); err != nil {
			return err
		}
		out = Response{Structure: s, Count: w.Len()}
		return nil
	})
	if err != nil {
		u.recordRejected(err)
		if errors.Is(err, world.ErrOccupied) || errors.Is(err, ErrNotBuildable) {
			return Response{}, errors.Join(ports.ErrConflict, err)
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordPlaced()
	}
	return out, nil
}

// PlaceAtTap converts a screen tap to a cell using the loop's tile size and
// places a structure there.
func (u UseCase) PlaceAtTap(ctx context.Context, req TapRequest) (Response, error) {
	if u.Loop == nil {
		return Response{}, ErrInvalidRequest
	}
	pos := frame.ScreenToWorld(req.PX, req.PY, u.Loop.TileSize())
	return u.Place(ctx, Request{X: pos.X(), Y: pos.Y()})
}

func (u UseCase) Remove(ctx context.Context, req Request) (Response, error) {
	if u.Loop == nil {
		return Response{}, ErrInvalidRequest
	}
	pos := world.NewPosition(req.X, req.Y)

	var out Response
	err := u.Loop.Do(ctx, func(w *world.World) error {
		s, err := w.Remove(pos)
		if err != nil {
			return err
		}
		out = Response{Structure: s, Count: w.Len()}
		return nil
	})
	if err != nil {
		if errors.Is(err, world.ErrNoStructure) {
			return Response{}, errors.Join(ports.ErrNotFound, err)
		}
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordRemoved()
	}
	return out, nil
}

func (u UseCase) recordRejected(err error) {
	if u.Metrics == nil {
		return
	}
	u.Metrics.RecordRejected(RejectReason(err))
}

// RejectReason is a stable label for a placement error.
func RejectReason(err error) string {
	switch {
	case errors.Is(err, world.ErrOutOfBounds):
		return "out_of_bounds"
	case errors.Is(err, world.ErrOccupied):
		return "occupied"
	case errors.Is(err, ErrNotBuildable):
		return "not_buildable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded), errors.Is(err, frame.ErrStopped):
		return "unavailable"
	default:
		return "other"
	}
}
