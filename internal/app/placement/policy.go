package placement

import (
	"errors"
	"fmt"

	"homestead/internal/domain/world"
)

var ErrNotBuildable = errors.New("cell not buildable")

// Policy decides whether a structure may go on a cell, on top of the bounds
// and occupancy rules World enforces itself.
type Policy interface {
	Allow(w *world.World, pos world.Position) error
}

// TerrainPolicy refuses cells whose terrain blocks building.
type TerrainPolicy struct {
	Blocked map[world.Cell]bool
}

func DefaultTerrainPolicy() TerrainPolicy {
	return TerrainPolicy{Blocked: map[world.Cell]bool{
		world.CellWater: true,
		world.CellRock:  true,
		world.CellTree:  true,
	}}
}

func (p TerrainPolicy) Allow(w *world.World, pos world.Position) error {
	cell, err := w.CellAt(pos)
	if err != nil {
		return err
	}
	if p.Blocked[cell] {
		return fmt.Errorf("%w: %s is %s", ErrNotBuildable, pos, cell)
	}
	return nil
}
