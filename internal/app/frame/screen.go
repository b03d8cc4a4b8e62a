package frame

import "homestead/internal/domain/world"

// ScreenToWorld maps a screen point to the grid cell under it. Points left
// of or above the origin map to negative cells.
func ScreenToWorld(px, py, tileSize int) world.Position {
	if tileSize <= 0 {
		tileSize = 1
	}
	return world.NewPosition(floorDiv(px, tileSize), floorDiv(py, tileSize))
}

// WorldToScreen returns the top-left screen point of a cell.
func WorldToScreen(pos world.Position, tileSize int) (int, int) {
	return pos.X() * tileSize, pos.Y() * tileSize
}

func floorDiv(a, b int) int {
	if a >= 0 {
		return a / b
	}
	return -(((-a) + b - 1) / b)
}
