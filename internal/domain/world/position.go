package world

import (
	"encoding/json"
	"strconv"
)

// Position is an immutable grid coordinate. It is a comparable value, so ==
// and map keys work component-wise.
type Position struct {
	x int
	y int
}

func NewPosition(x, y int) Position {
	return Position{x: x, y: y}
}

func (p Position) X() int { return p.x }

func (p Position) Y() int { return p.y }

// Add returns the position offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{x: p.x + dx, y: p.y + dy}
}

func (p Position) String() string {
	return "(" + strconv.Itoa(p.x) + "," + strconv.Itoa(p.y) + ")"
}

type positionJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(positionJSON{X: p.x, Y: p.y})
}

func (p *Position) UnmarshalJSON(data []byte) error {
	var raw positionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Position{x: raw.X, y: raw.Y}
	return nil
}
