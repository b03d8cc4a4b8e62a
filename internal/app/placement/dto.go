package placement

import "homestead/internal/domain/world"

type Request struct {
	X int
	Y int
}

type TapRequest struct {
	PX int
	PY int
}

type Response struct {
	Structure world.Structure `json:"structure"`
	Count     int             `json:"structure_count"`
}
