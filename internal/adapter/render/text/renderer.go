package text

import (
	"bufio"
	"fmt"
	"io"

	"homestead/internal/domain/world"
)

var glyphs = map[world.Cell]byte{
	world.CellGround:    '.',
	world.CellStructure: '#',
	world.CellWater:     '~',
	world.CellRock:      '^',
	world.CellTree:      'T',
}

// Renderer draws frames as ASCII maps, one character per cell. Only every
// Every-th frame is written; zero writes every frame.
type Renderer struct {
	Out   io.Writer
	Every uint64

	frame uint64
	size  int
	rows  [][]byte
	skip  bool
}

func New(out io.Writer, every uint64) *Renderer {
	return &Renderer{Out: out, Every: every}
}

func (r *Renderer) BeginFrame(frame uint64, size int) {
	r.frame = frame
	r.skip = r.Every > 1 && frame%r.Every != 0
	if r.skip {
		return
	}
	if r.size != size {
		r.size = size
		r.rows = make([][]byte, size)
		for y := range r.rows {
			r.rows[y] = make([]byte, size)
		}
	}
	for _, row := range r.rows {
		for x := range row {
			row[x] = ' '
		}
	}
}

func (r *Renderer) DrawTerrain(tile world.TerrainTile, _ int) {
	g, ok := glyphs[tile.Cell]
	if !ok {
		g = '?'
	}
	r.set(tile.Position(), g)
}

func (r *Renderer) DrawStructure(tile world.Tile, _ int) {
	r.set(tile.Position(), glyphs[world.CellStructure])
}

func (r *Renderer) EndFrame() error {
	if r.skip || r.Out == nil {
		return nil
	}
	w := bufio.NewWriter(r.Out)
	fmt.Fprintf(w, "frame %d\n", r.frame)
	for _, row := range r.rows {
		w.Write(row)
		w.WriteByte('\n')
	}
	return w.Flush()
}

func (r *Renderer) set(pos world.Position, g byte) {
	if r.skip || pos.Y() < 0 || pos.Y() >= len(r.rows) || pos.X() < 0 || pos.X() >= len(r.rows[pos.Y()]) {
		return
	}
	r.rows[pos.Y()][pos.X()] = g
}
