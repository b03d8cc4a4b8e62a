package world

import (
	"fmt"
	"sort"
)

// World is a fixed-size square grid and the registry of structures placed on
// it. It is not safe for concurrent use; a single owner mutates it.
type World struct {
	size       int
	cells      [][]Cell
	structures map[Position]Structure
}

func New(size int) (*World, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	cells := make([][]Cell, size)
	for y := range cells {
		cells[y] = make([]Cell, size)
	}
	return &World{
		size:       size,
		cells:      cells,
		structures: make(map[Position]Structure),
	}, nil
}

func (w *World) Size() int {
	return w.size
}

// Grid returns a copy of the cell matrix indexed [y][x].
func (w *World) Grid() [][]Cell {
	out := make([][]Cell, w.size)
	for y, row := range w.cells {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

func (w *World) Contains(pos Position) bool {
	return pos.x >= 0 && pos.x < w.size && pos.y >= 0 && pos.y < w.size
}

func (w *World) CellAt(pos Position) (Cell, error) {
	if err := w.checkBounds(pos); err != nil {
		return CellGround, err
	}
	return w.cells[pos.y][pos.x], nil
}

// SetCell paints terrain. Structures own their cells, so painting an
// occupied cell or painting CellStructure directly is refused.
func (w *World) SetCell(pos Position, c Cell) error {
	if err := w.checkBounds(pos); err != nil {
		return err
	}
	if c < CellGround || c > CellTree || c == CellStructure {
		return fmt.Errorf("%w: %d", ErrInvalidCell, c)
	}
	if _, ok := w.structures[pos]; ok {
		return ErrOccupied
	}
	w.cells[pos.y][pos.x] = c
	return nil
}

// Place registers s. Nothing changes when an error is returned.
func (w *World) Place(s Structure) error {
	if err := w.checkBounds(s.pos); err != nil {
		return err
	}
	if _, ok := w.structures[s.pos]; ok {
		return ErrOccupied
	}
	w.structures[s.pos] = s
	w.cells[s.pos.y][s.pos.x] = CellStructure
	return nil
}

func (w *World) Remove(pos Position) (Structure, error) {
	if err := w.checkBounds(pos); err != nil {
		return Structure{}, err
	}
	s, ok := w.structures[pos]
	if !ok {
		return Structure{}, ErrNoStructure
	}
	delete(w.structures, pos)
	w.cells[pos.y][pos.x] = CellGround
	return s, nil
}

func (w *World) StructureAt(pos Position) (Structure, bool) {
	s, ok := w.structures[pos]
	return s, ok
}

func (w *World) Len() int {
	return len(w.structures)
}

// Structures returns the placed structures in row-major order.
func (w *World) Structures() []Structure {
	out := make([]Structure, 0, len(w.structures))
	for _, s := range w.structures {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].pos.y != out[j].pos.y {
			return out[i].pos.y < out[j].pos.y
		}
		return out[i].pos.x < out[j].pos.x
	})
	return out
}

func (w *World) Tiles() []Tile {
	structures := w.Structures()
	out := make([]Tile, len(structures))
	for i, s := range structures {
		out[i] = s
	}
	return out
}

// Terrain returns every non-structure cell as a TerrainTile, row-major.
func (w *World) Terrain() []TerrainTile {
	out := make([]TerrainTile, 0, w.size*w.size-len(w.structures))
	for y, row := range w.cells {
		for x, c := range row {
			if c == CellStructure {
				continue
			}
			out = append(out, TerrainTile{Pos: NewPosition(x, y), Cell: c})
		}
	}
	return out
}

func (w *World) checkBounds(pos Position) error {
	if !w.Contains(pos) {
		return &OutOfBoundsError{Pos: pos, Size: w.size}
	}
	return nil
}
