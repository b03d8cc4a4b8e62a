package frame

import (
	"testing"

	"homestead/internal/domain/world"
)

func TestScreenToWorld(t *testing.T) {
	cases := []struct {
		px, py, size int
		want         world.Position
	}{
		{0, 0, 32, world.NewPosition(0, 0)},
		{31, 31, 32, world.NewPosition(0, 0)},
		{32, 64, 32, world.NewPosition(1, 2)},
		{-1, -33, 32, world.NewPosition(-1, -2)},
		{5, 7, 0, world.NewPosition(5, 7)},
	}
	for _, c := range cases {
		if got := ScreenToWorld(c.px, c.py, c.size); got != c.want {
			t.Fatalf("ScreenToWorld(%d,%d,%d) = %s, want %s", c.px, c.py, c.size, got, c.want)
		}
	}
}

func TestWorldToScreenInvertsScreenToWorld(t *testing.T) {
	pos := world.NewPosition(3, 4)
	x, y := WorldToScreen(pos, 16)
	if x != 48 || y != 64 {
		t.Fatalf("unexpected screen point (%d,%d)", x, y)
	}
	if got := ScreenToWorld(x+15, y+15, 16); got != pos {
		t.Fatalf("round trip mismatch: %s", got)
	}
}
