package world

// Structure is a built object occupying exactly one cell. Its identity is its
// position: two structures at the same coordinates are equal.
type Structure struct {
	pos Position
}

func NewStructure(pos Position) Structure {
	return Structure{pos: pos}
}

func NewStructureAt(x, y int) Structure {
	return Structure{pos: NewPosition(x, y)}
}

func (s Structure) Position() Position {
	return s.pos
}

func (s Structure) Equal(other Structure) bool {
	return s.pos == other.pos
}

func (s Structure) MarshalJSON() ([]byte, error) {
	return s.pos.MarshalJSON()
}

var _ Tile = Structure{}
var _ Tile = TerrainTile{}
