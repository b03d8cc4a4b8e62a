package observe

import "homestead/internal/domain/world"

type Request struct{}

type Response struct {
	Frame      uint64            `json:"frame"`
	Size       int               `json:"size"`
	TileSize   int               `json:"tile_size"`
	Grid       [][]world.Cell    `json:"grid"`
	Structures []world.Structure `json:"structures"`
}
