package ports

import "homestead/internal/domain/world"

//go:generate go tool mockgen -destination=./mocks/renderer_mock.go -package=mocks . Renderer

// Renderer draws one frame. Positions are read-only to it; tileSize scales a
// grid coordinate to screen units.
type Renderer interface {
	BeginFrame(frame uint64, size int)
	DrawTerrain(tile world.TerrainTile, tileSize int)
	DrawStructure(tile world.Tile, tileSize int)
	EndFrame() error
}
