package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the static recognition configuration: engine rotation order,
// confidence floors, and team registry extensions. Loaded once at startup.
type Config struct {
	// Engines lists OCR backends in rotation order. Empty means the built-in
	// default set.
	Engines []string `yaml:"engines"`
	// AcceptFloor is the per-engine acceptance confidence. Zero picks the
	// default for the engine count.
	AcceptFloor float64 `yaml:"accept_floor"`
	// SanityFloor is the absolute floor an accepted result must still clear.
	SanityFloor float64 `yaml:"sanity_floor"`

	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`

	FetchTimeoutSeconds int   `yaml:"fetch_timeout_seconds"`
	MaxImageBytes       int64 `yaml:"max_image_bytes"`

	// ExtraAliases extends the team registry: league -> alias -> canonical.
	ExtraAliases map[string]map[string]string `yaml:"extra_aliases"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		DebugDir:            "debug",
		FetchTimeoutSeconds: 10,
		MaxImageBytes:       8 << 20,
	}
}

// Load reads a YAML config from path. A missing file is not an error: the
// defaults are returned with a log line.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("config %s not found, using defaults", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.FetchTimeoutSeconds <= 0 {
		cfg.FetchTimeoutSeconds = 10
	}
	if cfg.MaxImageBytes <= 0 {
		cfg.MaxImageBytes = 8 << 20
	}
	if cfg.DebugDir == "" {
		cfg.DebugDir = "debug"
	}
	return cfg, nil
}
