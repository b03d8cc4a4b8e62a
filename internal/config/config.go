package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPath names the config file when no path is passed to Load.
const EnvPath = "HOMESTEAD_CONFIG"

var ErrInvalid = errors.New("invalid config")

type Config struct {
	World   WorldConfig   `yaml:"world"`
	Frame   FrameConfig   `yaml:"frame"`
	HTTP    HTTPConfig    `yaml:"http"`
	Metrics MetricsConfig `yaml:"metrics"`
	Render  RenderConfig  `yaml:"render"`
}

type WorldConfig struct {
	Size int   `yaml:"size"`
	Seed int64 `yaml:"seed"`
}

type FrameConfig struct {
	TileSize   int `yaml:"tile_size"`
	IntervalMS int `yaml:"interval_ms"`
	QueueSize  int `yaml:"queue_size"`
}

// HTTPConfig.AllowOrigins empty lets any origin call the API.
type HTTPConfig struct {
	Addr         string   `yaml:"addr"`
	AllowOrigins []string `yaml:"allow_origins"`
}

// MetricsConfig.Addr empty disables the prometheus listener.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// RenderConfig controls the ASCII renderer on stdout.
type RenderConfig struct {
	Enabled bool   `yaml:"enabled"`
	Every   uint64 `yaml:"every"`
}

func Default() Config {
	return Config{
		World:   WorldConfig{Size: 32, Seed: 1},
		Frame:   FrameConfig{TileSize: 32, IntervalMS: 100, QueueSize: 256},
		HTTP:    HTTPConfig{Addr: ":8080"},
		Metrics: MetricsConfig{Addr: ":9090"},
		Render:  RenderConfig{Every: 50},
	}
}

func (c Config) Interval() time.Duration {
	return time.Duration(c.Frame.IntervalMS) * time.Millisecond
}

// Load reads path (or $HOMESTEAD_CONFIG when path is empty) over the
// defaults, then applies HOMESTEAD_* env overrides. No file at all is fine.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvPath))
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.World.Size = intEnv("HOMESTEAD_WORLD_SIZE", cfg.World.Size)
	cfg.World.Seed = int64(intEnv("HOMESTEAD_SEED", int(cfg.World.Seed)))
	cfg.Frame.TileSize = intEnv("HOMESTEAD_TILE_SIZE", cfg.Frame.TileSize)
	cfg.Frame.IntervalMS = intEnv("HOMESTEAD_FRAME_MS", cfg.Frame.IntervalMS)
	cfg.HTTP.Addr = stringEnv("HOMESTEAD_HTTP_ADDR", cfg.HTTP.Addr)
	cfg.Metrics.Addr = stringEnv("HOMESTEAD_METRICS_ADDR", cfg.Metrics.Addr)
	cfg.HTTP.AllowOrigins = listEnv("HOMESTEAD_ALLOW_ORIGINS", cfg.HTTP.AllowOrigins)
}

func (c Config) Validate() error {
	switch {
	case c.World.Size <= 0:
		return fmt.Errorf("%w: world.size must be positive, got %d", ErrInvalid, c.World.Size)
	case c.Frame.TileSize <= 0:
		return fmt.Errorf("%w: frame.tile_size must be positive, got %d", ErrInvalid, c.Frame.TileSize)
	case c.Frame.IntervalMS <= 0:
		return fmt.Errorf("%w: frame.interval_ms must be positive, got %d", ErrInvalid, c.Frame.IntervalMS)
	case c.Frame.QueueSize < 0:
		return fmt.Errorf("%w: frame.queue_size must not be negative, got %d", ErrInvalid, c.Frame.QueueSize)
	case strings.TrimSpace(c.HTTP.Addr) == "":
		return fmt.Errorf("%w: http.addr is required", ErrInvalid)
	}
	return nil
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func stringEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return fallback
}

func listEnv(key string, fallback []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
