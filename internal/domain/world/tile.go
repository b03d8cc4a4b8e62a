package world

// Tile is anything that occupies a grid cell.
type Tile interface {
	Position() Position
}

// Cell is the per-cell terrain/occupancy state stored in the grid.
type Cell int

const (
	CellGround Cell = iota
	CellStructure
	CellWater
	CellRock
	CellTree
)

func (c Cell) String() string {
	switch c {
	case CellGround:
		return "ground"
	case CellStructure:
		return "structure"
	case CellWater:
		return "water"
	case CellRock:
		return "rock"
	case CellTree:
		return "tree"
	default:
		return "unknown"
	}
}

// TerrainTile is a grid cell viewed as a Tile.
type TerrainTile struct {
	Pos  Position `json:"pos"`
	Cell Cell     `json:"cell"`
}

func (t TerrainTile) Position() Position {
	return t.Pos
}
