// Package config loads the viewer settings from defaults, an optional TOML
// file and command-line overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"moonlit-scene/scene"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Window Window `toml:"window"`
	Scene  Scene  `toml:"scene"`
	Log    Log    `toml:"log"`
}

type Window struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Title      string `toml:"title"`
	Resizable  bool   `toml:"resizable"`
	VSync      bool   `toml:"vsync"`
	Fullscreen bool   `toml:"fullscreen"`
}

type Scene struct {
	// Layout is "tree" or "house".
	Layout string `toml:"layout"`
	// Shading is the style active at startup: gouraud, phong or toon.
	Shading string `toml:"shading"`
	// RestyleHouse lets house, door, windows, chimney and roof follow the
	// active shading style instead of staying Gouraud.
	RestyleHouse bool `toml:"restyle_house"`
}

type Log struct {
	Dev   bool   `toml:"dev"`
	Level string `toml:"level"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:     1280,
			Height:    720,
			Title:     "Moonlit Scene",
			Resizable: true,
			VSync:     true,
		},
		Scene: Scene{
			Layout:  "house",
			Shading: scene.ShadingGouraud.String(),
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads path on top of Default. Keys missing from the file keep their
// default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML into cfg, rejecting unknown keys, and validates the result.
func Parse(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return cfg.Validate()
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var err error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height))
	}
	if _, lerr := scene.LayoutByName(c.Scene.Layout); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("%w: %v", ErrInvalid, lerr))
	}
	if _, serr := scene.ParseShadingStyle(c.Scene.Shading); serr != nil {
		err = multierr.Append(err, fmt.Errorf("%w: %v", ErrInvalid, serr))
	}
	if _, lerr := zapcore.ParseLevel(c.Log.Level); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("%w: %v", ErrInvalid, lerr))
	}
	return err
}

// ShadingStyle is the parsed Scene.Shading; call after Validate.
func (c Config) ShadingStyle() scene.ShadingStyle {
	s, err := scene.ParseShadingStyle(c.Scene.Shading)
	if err != nil {
		panic(err)
	}
	return s
}

// Layout is the parsed Scene.Layout; call after Validate.
func (c Config) Layout() scene.Layout {
	l, err := scene.LayoutByName(c.Scene.Layout)
	if err != nil {
		panic(err)
	}
	return l
}
