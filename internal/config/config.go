// Package config defines the slider demo settings and helpers for loading or
// saving them to disk.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppID is the stable application identifier used by the GUI framework.
	AppID = "com.ardakazanci.customslider"
	// AppConfigSubdir is the OS-specific directory that holds the config file.
	AppConfigSubdir = "CustomSlider"
	// AppConfigName is the YAML file stored on disk.
	AppConfigName = "config.yaml"

	// DefaultValue is the slider value shown on first launch.
	DefaultValue = 0.5
	// DefaultMin and DefaultMax bound the demo slider.
	DefaultMin = 0.0
	DefaultMax = 10.0
	// DefaultTickCount is the number of tick marks drawn on the demo slider.
	DefaultTickCount = 5
	// DefaultThumbSize is the resting thumb width and height.
	DefaultThumbSize float32 = 40
	// DefaultExpandedThumbHeight is the thumb height while dragging.
	DefaultExpandedThumbHeight float32 = 100
	// DefaultBorderWidth is the thumb outline width.
	DefaultBorderWidth float32 = 2

	// DefaultWidth and DefaultHeight size the demo window.
	DefaultWidth  = 480
	DefaultHeight = 320
	// MinWindowWidth keeps the slider usable.
	MinWindowWidth = 200
)

// Colors holds the slider palette as CSS color names or hex strings.
type Colors struct {
	ThumbBorder     string `yaml:"thumbBorder"`
	ThumbBackground string `yaml:"thumbBackground"`
	Track           string `yaml:"track"`
	ActiveTrack     string `yaml:"activeTrack"`
}

// Config aggregates the demo preferences persisted between sessions.
type Config struct {
	Value               float64 `yaml:"value"`
	Min                 float64 `yaml:"min"`
	Max                 float64 `yaml:"max"`
	SnapToTicks         bool    `yaml:"snapToTicks"`
	TickCount           int     `yaml:"tickCount"`
	ThumbSize           float32 `yaml:"thumbSize"`
	ExpandedThumbHeight float32 `yaml:"expandedThumbHeight"`
	BorderWidth         float32 `yaml:"borderWidth"`
	Colors              Colors  `yaml:"colors"`
	WindowW             int     `yaml:"windowW"`
	WindowH             int     `yaml:"windowH"`

	path string
}

// ConfigDir resolves the writable directory that should contain the config file.
func ConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppConfigSubdir), nil
}

// ConfigPath is a helper that returns the full path to config.yaml.
func ConfigPath() (string, error) {
	d, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, AppConfigName), nil
}

// Load reads the config from the default location.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the config at path, writing a default one when the file
// does not exist yet.
func LoadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			cfg.path = path
			// Try saving an initial config, but still return defaults even if it fails.
			_ = cfg.Save()
			return cfg, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config parse error: %w", err)
	}
	cfg.path = path
	cfg.applyRuntimeDefaults()
	return cfg, nil
}

// Save persists the configuration to the file it was loaded from, or to the
// default location, creating directories as needed.
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Path returns the file backing the config, empty for the default location.
func (c *Config) Path() string { return c.path }

// Default builds an in-memory config populated with the demo defaults.
func Default() *Config {
	cfg := &Config{
		Value:               DefaultValue,
		Min:                 DefaultMin,
		Max:                 DefaultMax,
		TickCount:           DefaultTickCount,
		ThumbSize:           DefaultThumbSize,
		ExpandedThumbHeight: DefaultExpandedThumbHeight,
		BorderWidth:         DefaultBorderWidth,
		Colors:              defaultColors(),
		WindowW:             DefaultWidth,
		WindowH:             DefaultHeight,
	}
	cfg.applyRuntimeDefaults()
	return cfg
}

func defaultColors() Colors {
	return Colors{
		ThumbBorder:     "black",
		ThumbBackground: "white",
		Track:           "lightgray",
		ActiveTrack:     "black",
	}
}

// applyRuntimeDefaults normalizes config values after a load, ensuring the UI
// always receives sane inputs.
func (c *Config) applyRuntimeDefaults() {
	if !(c.Max > c.Min) {
		c.Min, c.Max = DefaultMin, DefaultMax
	}
	if math.IsNaN(c.Value) {
		c.Value = DefaultValue
	}
	if c.Value < c.Min {
		c.Value = c.Min
	}
	if c.Value > c.Max {
		c.Value = c.Max
	}
	if c.TickCount < 0 {
		c.TickCount = 0
	}
	if c.ThumbSize <= 0 {
		c.ThumbSize = DefaultThumbSize
	}
	if c.ExpandedThumbHeight <= 0 {
		c.ExpandedThumbHeight = DefaultExpandedThumbHeight
	}
	if c.BorderWidth < 0 {
		c.BorderWidth = DefaultBorderWidth
	}
	def := defaultColors()
	fixColor(&c.Colors.ThumbBorder, def.ThumbBorder)
	fixColor(&c.Colors.ThumbBackground, def.ThumbBackground)
	fixColor(&c.Colors.Track, def.Track)
	fixColor(&c.Colors.ActiveTrack, def.ActiveTrack)
	if c.WindowW == 0 {
		c.WindowW = DefaultWidth
	}
	if c.WindowW < MinWindowWidth {
		c.WindowW = MinWindowWidth
	}
	if c.WindowH <= 0 {
		c.WindowH = DefaultHeight
	}
}

func fixColor(v *string, def string) {
	if _, err := ParseColor(*v); err != nil {
		*v = def
	}
}
