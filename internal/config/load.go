package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidColor is returned for palette entries that are not #rrggbb.
var ErrInvalidColor = errors.New("config: invalid color")

// Overrides carries command-line values. Zero values leave the loaded
// configuration untouched.
type Overrides struct {
	Debug  bool
	Frames int
	FPS    int
	Record bool
	DBPath string
}

// Load loads configuration with priority: defaults < file < overrides.
// An empty path searches the standard locations.
func Load(path string, o Overrides) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyOverrides(cfg, o)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./cubeview.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "cubeview")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "cubeview")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "cubeview")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "cubeview")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func applyOverrides(cfg *Config, o Overrides) {
	if o.Debug {
		cfg.Logging.Level = "debug"
	}
	if o.Frames > 0 {
		cfg.Animation.Frames = o.Frames
	}
	if o.FPS > 0 {
		cfg.Animation.FPS = o.FPS
	}
	if o.Record {
		cfg.History.Enabled = true
	}
	if o.DBPath != "" {
		cfg.History.DBPath = o.DBPath
	}
}

// Validate checks values that would otherwise fail deep inside a front-end.
func (c *Config) Validate() error {
	if c.Animation.Frames <= 0 {
		return fmt.Errorf("config: animation.frames must be positive, got %d", c.Animation.Frames)
	}
	if c.Animation.FPS <= 0 {
		return fmt.Errorf("config: animation.fps must be positive, got %d", c.Animation.FPS)
	}
	if len(c.Palette.Faces) != 6 {
		return fmt.Errorf("config: palette.faces needs 6 colors, got %d", len(c.Palette.Faces))
	}
	for _, s := range append(append([]string{}, c.Palette.Faces...), c.Palette.Override) {
		if _, err := ParseHexColor(s); err != nil {
			return err
		}
	}
	return nil
}

// ParseHexColor parses a #rrggbb string.
func ParseHexColor(s string) ([3]uint8, error) {
	var rgb [3]uint8
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return rgb, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return rgb, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		rgb[i] = uint8(v)
	}
	return rgb, nil
}
