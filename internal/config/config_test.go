package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvPath,
		"HOMESTEAD_WORLD_SIZE",
		"HOMESTEAD_SEED",
		"HOMESTEAD_TILE_SIZE",
		"HOMESTEAD_FRAME_MS",
		"HOMESTEAD_ALLOW_ORIGINS",
	} {
		t.Setenv(key, "")
	}
	// empty string addresses are meaningful, so these must be truly unset
	for _, key := range []string{"HOMESTEAD_HTTP_ADDR", "HOMESTEAD_METRICS_ADDR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "homestead.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if got, want := cfg.Interval(), 100*time.Millisecond; got != want {
		t.Fatalf("interval mismatch: got=%v want=%v", got, want)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
world:
  size: 12
  seed: 7
frame:
  tile_size: 16
render:
  enabled: true
  every: 5
metrics:
  addr: ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.Size != 12 || cfg.World.Seed != 7 || cfg.Frame.TileSize != 16 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Frame.IntervalMS != 100 || cfg.HTTP.Addr != ":8080" {
		t.Fatalf("defaults lost for unset keys: %+v", cfg)
	}
	if !cfg.Render.Enabled || cfg.Render.Every != 5 {
		t.Fatalf("render config mismatch: %+v", cfg.Render)
	}
	if cfg.Metrics.Addr != "" {
		t.Fatalf("expected metrics disabled, got %q", cfg.Metrics.Addr)
	}
}

func TestLoad_PathFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPath, writeFile(t, "world:\n  size: 3\n"))

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.Size != 3 {
		t.Fatalf("world size mismatch: got=%d want=3", cfg.World.Size)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "world:\n  size: 12\n")
	t.Setenv("HOMESTEAD_WORLD_SIZE", "20")
	t.Setenv("HOMESTEAD_FRAME_MS", "not-a-number")
	t.Setenv("HOMESTEAD_HTTP_ADDR", " :9999 ")
	t.Setenv("HOMESTEAD_ALLOW_ORIGINS", "http://a.local, ,http://b.local")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.Size != 20 {
		t.Fatalf("env size not applied: %d", cfg.World.Size)
	}
	if cfg.Frame.IntervalMS != 100 {
		t.Fatalf("bad env value should fall back, got %d", cfg.Frame.IntervalMS)
	}
	if cfg.HTTP.Addr != ":9999" {
		t.Fatalf("http addr mismatch: %q", cfg.HTTP.Addr)
	}
	if want := []string{"http://a.local", "http://b.local"}; !reflect.DeepEqual(cfg.HTTP.AllowOrigins, want) {
		t.Fatalf("allow origins mismatch: got=%v want=%v", cfg.HTTP.AllowOrigins, want)
	}
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := Load(writeFile(t, "world: [")); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
	_, err := Load(writeFile(t, "world:\n  size: -1\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	bad := []func(*Config){
		func(c *Config) { c.World.Size = 0 },
		func(c *Config) { c.Frame.TileSize = 0 },
		func(c *Config) { c.Frame.IntervalMS = -5 },
		func(c *Config) { c.Frame.QueueSize = -1 },
		func(c *Config) { c.HTTP.Addr = " " },
	}
	for i, mutate := range bad {
		c := Default()
		mutate(&c)
		if err := c.Validate(); !errors.Is(err, ErrInvalid) {
			t.Fatalf("case %d: expected ErrInvalid, got %v", i, err)
		}
	}
}
