package terrain

import (
	"homestead/internal/domain/world"
)

type Zone string

const (
	ZoneSafe   Zone = "safe"
	ZoneForest Zone = "forest"
	ZoneQuarry Zone = "quarry"
	ZoneWild   Zone = "wild"
)

// Generator paints deterministic terrain: open ground around the centre,
// then forest, quarry and wild rings by Manhattan distance.
type Generator struct {
	Seed int64
}

func (g Generator) Paint(w *world.World) error {
	size := w.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			pos := world.NewPosition(x, y)
			if _, occupied := w.StructureAt(pos); occupied {
				continue
			}
			if err := w.SetCell(pos, g.CellAt(x, y, size)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g Generator) CellAt(x, y, size int) world.Cell {
	seed := g.tileSeed(x, y)
	switch ZoneAt(x, y, size) {
	case ZoneForest:
		if seed%5 == 0 {
			return world.CellTree
		}
	case ZoneQuarry:
		if seed%4 == 0 {
			return world.CellRock
		}
	case ZoneWild:
		switch {
		case seed%7 == 0:
			return world.CellWater
		case seed%3 == 0:
			return world.CellTree
		}
	}
	return world.CellGround
}

// ZoneAt scales the ring thresholds to the world size.
func ZoneAt(x, y, size int) Zone {
	c := size / 2
	d := abs(x-c) + abs(y-c)
	switch {
	case d <= size/6:
		return ZoneSafe
	case d <= size/2:
		return ZoneForest
	case d <= size*3/4:
		return ZoneQuarry
	default:
		return ZoneWild
	}
}

func (g Generator) tileSeed(x, y int) int {
	v := int64(x)*73856093 ^ int64(y)*19349663 ^ g.Seed*83492791
	if v < 0 {
		v = -v
	}
	return int(v)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
