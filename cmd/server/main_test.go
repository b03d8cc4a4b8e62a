package main

import (
	"testing"

	textrender "homestead/internal/adapter/render/text"
	"homestead/internal/config"
	"homestead/internal/domain/world"
)

func TestBuildWorld_PaintsTerrainDeterministically(t *testing.T) {
	cfg := config.Default()
	cfg.World.Size = 8
	cfg.World.Seed = 42

	a, err := buildWorld(cfg)
	if err != nil {
		t.Fatalf("buildWorld: %v", err)
	}
	b, err := buildWorld(cfg)
	if err != nil {
		t.Fatalf("buildWorld: %v", err)
	}
	if a.Size() != 8 {
		t.Fatalf("size mismatch: got=%d want=8", a.Size())
	}
	ga, gb := a.Grid(), b.Grid()
	for y := range ga {
		for x := range ga[y] {
			if ga[y][x] != gb[y][x] {
				t.Fatalf("grid differs at (%d,%d): %v vs %v", x, y, ga[y][x], gb[y][x])
			}
			if ga[y][x] == world.CellStructure {
				t.Fatalf("fresh world has a structure at (%d,%d)", x, y)
			}
		}
	}
}

func TestBuildWorld_RejectsBadSize(t *testing.T) {
	cfg := config.Default()
	cfg.World.Size = 0
	if _, err := buildWorld(cfg); err == nil {
		t.Fatalf("expected error for zero size")
	}
}

func TestBuildRenderer(t *testing.T) {
	cfg := config.Default()
	if r := buildRenderer(cfg); r != nil {
		t.Fatalf("expected no renderer when disabled, got %T", r)
	}
	cfg.Render.Enabled = true
	if _, ok := buildRenderer(cfg).(*textrender.Renderer); !ok {
		t.Fatalf("expected text renderer when enabled")
	}
}
