package project

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// OutputConfig is the [output] section of tokwalk.toml.
type OutputConfig struct {
	Format string `toml:"format"` // "pretty" or "json"
	Color  string `toml:"color"`  // "auto", "always", "never"
}

// CacheConfig is the [cache] section.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"` // empty means the platform cache directory
}

// WalkConfig is the [walk] section.
type WalkConfig struct {
	MaxSteps int `toml:"max_steps"` // cap for --back/--fwd, 0 means unlimited
}

// Config is the parsed tokwalk.toml.
type Config struct {
	Output OutputConfig `toml:"output"`
	Cache  CacheConfig  `toml:"cache"`
	Walk   WalkConfig   `toml:"walk"`
}

// DefaultConfig returns the configuration used when no manifest exists.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{Format: "pretty", Color: "auto"},
		Cache:  CacheConfig{Enabled: true},
	}
}

func validate(cfg *Config, path string) error {
	switch cfg.Output.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("%s: invalid [output].format %q", path, cfg.Output.Format)
	}
	switch cfg.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%s: invalid [output].color %q", path, cfg.Output.Color)
	}
	if cfg.Walk.MaxSteps < 0 {
		return fmt.Errorf("%s: [walk].max_steps must not be negative", path)
	}
	return nil
}

// LoadConfig parses a tokwalk.toml manifest. Sections absent from the file
// keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := validate(&cfg, path); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFrom discovers and parses the nearest manifest above startDir. When
// no manifest exists it returns DefaultConfig with found=false.
func LoadFrom(startDir string) (cfg Config, found bool, err error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil {
		return Config{}, false, err
	}
	if !ok {
		return DefaultConfig(), false, nil
	}
	cfg, err = LoadConfig(manifestPath)
	if err != nil {
		return Config{}, true, err
	}
	return cfg, true, nil
}
