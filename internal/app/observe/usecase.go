package observe

import (
	"context"
	"errors"

	"homestead/internal/app/frame"
	"homestead/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid observe request")

type UseCase struct {
	Loop *frame.Loop
}

func (u UseCase) Execute(ctx context.Context, _ Request) (Response, error) {
	if u.Loop == nil {
		return Response{}, ErrInvalidRequest
	}
	var out Response
	err := u.Loop.Do(ctx, func(w *world.World) error {
		out = Response{
			Frame:      u.Loop.Frame(),
			Size:       w.Size(),
			TileSize:   u.Loop.TileSize(),
			Grid:       w.Grid(),
			Structures: w.Structures(),
		}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}
